package models

// CartLine is one product in the cart. ProductID is unique within a cart;
// adding the same product again bumps Qty instead of appending a new line.
type CartLine struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	DeliveryDate string  `json:"delivery_date"`
	ShippingCost float64 `json:"shipping_cost"`
	Qty          int     `json:"qty"`
}

// LineTotal is price times quantity, before shipping.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}
