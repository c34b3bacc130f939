// Package recommended reconciles product IDs returned by the AI assistant
// against the real catalog. This is the only place unknown IDs are dropped;
// the generation client never validates them.
package recommended

import "github.com/cyralabs/cyra-shop-backend/internal/product"

// Resolve maps the given IDs to catalog entries, preserving input order and
// silently dropping IDs with no matching product. It never fails: empty input
// or no matches yields an empty slice.
func Resolve(ids []string, catalog []product.Product) []product.Product {
	if len(ids) == 0 {
		return []product.Product{}
	}

	byID := make(map[string]product.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	out := make([]product.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
