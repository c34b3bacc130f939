package product

// Product represents a catalog entry. IDs are opaque strings because the AI
// assistant echoes them back verbatim when recommending products.
// JSON tags follow the camelCase convention used across the project.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameKm        *string `json:"nameKm,omitempty"`
	Description   string  `json:"description"`
	DescriptionKm *string `json:"descriptionKm,omitempty"`
	Price         float64 `json:"price"`
	CostPrice     float64 `json:"costPrice"`
	Category      string  `json:"category"`
	CategoryKm    *string `json:"categoryKm,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	IsNewArrival  bool    `json:"isNewArrival,omitempty"`
}

// AllowedCategories contains the supported product categories used across the app.
var AllowedCategories = []string{
	"Cleanser",
	"Toner",
	"Serum",
	"Moisturizer",
	"Sunscreen",
	"Mask",
	"Body Care",
}
