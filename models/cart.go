package models

// CartItem is one line of the customer's cart, keyed by dish id.
// Quantity is always at least 1; re-adding an existing id merges instead of
// duplicating the entry.
type CartItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}
