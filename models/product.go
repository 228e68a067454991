package models

// Product is a vendor catalog entry. IDs come from a millisecond wall-clock
// source at creation time and are unique within the catalog.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
}
