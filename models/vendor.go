package models

// VendorStatus marks where a vendor sits in the approval pipeline
type VendorStatus string

const (
	VendorActive  VendorStatus = "active"
	VendorPending VendorStatus = "pending"
)

// Vendor is one storefront on the admin approval panel.
type Vendor struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Cuisines      string       `json:"cuisines"`
	EstimatedTime string       `json:"estimatedTime"`
	MinOrder      int          `json:"minOrder"`
	Type          string       `json:"type"` // "Veg" or "Non-veg"
	Status        VendorStatus `json:"status"`
}

// SeedVendors is the active vendor list the admin panel starts with.
func SeedVendors() []Vendor {
	return []Vendor{
		{ID: 1, Name: "Spice Garden Restaurant", Cuisines: "Pakistani, Indian, Continental", EstimatedTime: "20 min", MinOrder: 150, Type: "Veg", Status: VendorActive},
		{ID: 2, Name: "Hostel Canteen", Cuisines: "Fast Food, Desi", EstimatedTime: "15 min", MinOrder: 100, Type: "Non-veg", Status: VendorActive},
		{ID: 3, Name: "Campus Cafe", Cuisines: "Cafe, Snacks, Beverages", EstimatedTime: "10 min", MinOrder: 80, Type: "Veg", Status: VendorActive},
		{ID: 4, Name: "Tandoor House", Cuisines: "BBQ, Grilled, Pakistani", EstimatedTime: "25 min", MinOrder: 200, Type: "Non-veg", Status: VendorActive},
		{ID: 5, Name: "Green Leaf Kitchen", Cuisines: "Vegan, Healthy, Salads", EstimatedTime: "18 min", MinOrder: 120, Type: "Veg", Status: VendorActive},
		{ID: 6, Name: "Biryani Palace", Cuisines: "Biryani, Pulao, Rice Dishes", EstimatedTime: "30 min", MinOrder: 250, Type: "Non-veg", Status: VendorActive},
	}
}

// SeedPendingVendors is the pending application list the admin panel starts with.
func SeedPendingVendors() []Vendor {
	return []Vendor{
		{ID: 101, Name: "Pizza Corner", Cuisines: "Italian, Pizza, Pasta", EstimatedTime: "22 min", MinOrder: 180, Type: "Non-veg", Status: VendorPending},
		{ID: 102, Name: "Healthy Bites", Cuisines: "Salads, Smoothies, Wraps", EstimatedTime: "12 min", MinOrder: 90, Type: "Veg", Status: VendorPending},
	}
}
