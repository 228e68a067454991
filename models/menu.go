package models

// MenuDish is one entry on the customer-facing menu. Base dishes are static;
// vendor products are projected into the same shape when the menu is listed.
type MenuDish struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	SubName     string  `json:"subName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Rating      int     `json:"rating"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	VendorItem  bool    `json:"isVendorItem,omitempty"`
}

const dishBlurb = "Food provides essential nutrients for overall health and well-being."

// BaseDishes returns the static house menu.
func BaseDishes() []MenuDish {
	return []MenuDish{
		{ID: 1, Name: "Garlic", SubName: "Mushroom", Description: dishBlurb, Price: 14, Rating: 5, Category: "Pasta"},
		{ID: 2, Name: "Club", SubName: "Sandwich", Description: dishBlurb, Price: 12, Rating: 5, Category: "Sandwich"},
		{ID: 3, Name: "Creamy", SubName: "Pasta", Description: dishBlurb, Price: 18, Rating: 5, Category: "Pasta"},
		{ID: 4, Name: "Spicy", SubName: "Noodles", Description: dishBlurb, Price: 15, Rating: 5, Category: "Noodles"},
		{ID: 5, Name: "Fresh Garden", SubName: "Salad", Description: dishBlurb, Price: 10, Rating: 5, Category: "Salad"},
		{ID: 6, Name: "Veggie", SubName: "Rolls", Description: dishBlurb, Price: 13, Rating: 5, Category: "Rolls"},
	}
}
