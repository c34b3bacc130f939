package category

// Category is a bilingual product category shown on the storefront.
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	NameKm *string `json:"nameKm,omitempty"`
	Image  string  `json:"image"`
}
