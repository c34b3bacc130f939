package recommended

import (
	"testing"

	"github.com/cyralabs/cyra-shop-backend/internal/product"
)

func TestResolvePreservesOrderAndDropsUnknown(t *testing.T) {
	catalog := []product.Product{
		{ID: "p1", Name: "Cleanser"},
		{ID: "p2", Name: "Toner"},
		{ID: "p3", Name: "Serum"},
	}

	got := Resolve([]string{"p1", "p3", "pX"}, catalog)
	if len(got) != 2 {
		t.Fatalf("expected 2 products, got %d", len(got))
	}
	if got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("order not preserved: %v, %v", got[0].ID, got[1].ID)
	}
}

func TestResolveNeverFails(t *testing.T) {
	catalog := []product.Product{{ID: "p1"}}

	if got := Resolve(nil, catalog); len(got) != 0 {
		t.Fatalf("expected empty result for nil ids, got %d", len(got))
	}
	if got := Resolve([]string{"nope"}, catalog); len(got) != 0 {
		t.Fatalf("expected empty result for unknown ids, got %d", len(got))
	}
	if got := Resolve([]string{"p1"}, nil); len(got) != 0 {
		t.Fatalf("expected empty result for empty catalog, got %d", len(got))
	}
}
