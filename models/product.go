package models

// Product is a catalog entry. The catalog itself is supplied externally;
// stores only ever see copies of these fields.
type Product struct {
	ID           string  `json:"id" toml:"id"`
	Name         string  `json:"name" toml:"name"`
	Description  string  `json:"description,omitempty" toml:"description"`
	Price        float64 `json:"price" toml:"price"`
	Image        string  `json:"image" toml:"image"`
	ShippingCost float64 `json:"shipping_cost" toml:"shipping_cost"`
	DeliveryDate string  `json:"delivery_date,omitempty" toml:"delivery_date"`
}
