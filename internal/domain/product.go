package domain

import "time"

// Product is a catalog record. Prices are integer minor currency units
// (paise). Sizes and colors are free-form option lists; nothing enforces
// that they are non-empty for purchasable products.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	InStock     bool      `json:"inStock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}
