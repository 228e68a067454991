package models

// OrderStatus represents the fulfilment state of a vendor order
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Food Processing"
	StatusOnTheWay   OrderStatus = "On the way"
	StatusDelivered  OrderStatus = "Delivered"
)

// CustomerInfo identifies who placed a vendor order and where it goes.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// VendorOrder is one incoming order on the vendor dashboard.
type VendorOrder struct {
	ID        int64        `json:"id"`
	Items     []string     `json:"items"`
	ItemCount int          `json:"itemCount"`
	Total     float64      `json:"total"`
	Status    OrderStatus  `json:"status"`
	Customer  CustomerInfo `json:"customer"`
}

// SeedVendorOrders is the built-in order list used when no orders have been
// persisted yet.
func SeedVendorOrders() []VendorOrder {
	return []VendorOrder{
		{
			ID:        1,
			Items:     []string{"Pulao", "Sandwich"},
			ItemCount: 2,
			Total:     350,
			Status:    StatusProcessing,
			Customer: CustomerInfo{
				Name:    "Shafiq Hussain",
				Address: "Hostel 1, GIKI",
				Phone:   "+92-305-90-13-378",
			},
		},
		{
			ID:        2,
			Items:     []string{"Biryani", "Pasta", "Salad"},
			ItemCount: 3,
			Total:     550,
			Status:    StatusProcessing,
			Customer: CustomerInfo{
				Name:    "Ahmed Khan",
				Address: "Hostel 3, GIKI",
				Phone:   "+92-300-12-34-567",
			},
		},
		{
			ID:        3,
			Items:     []string{"Noodles"},
			ItemCount: 1,
			Total:     150,
			Status:    StatusOnTheWay,
			Customer: CustomerInfo{
				Name:    "Sara Ali",
				Address: "Faculty Colony, GIKI",
				Phone:   "+92-321-98-76-543",
			},
		},
	}
}
