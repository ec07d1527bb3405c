package models

import "time"

// Order is an immutable snapshot of the cart at placement time. Once written
// to history it is never mutated, only bulk-cleared.
type Order struct {
	ID         string     `json:"id"`
	DatePlaced time.Time  `json:"date_placed"`
	Total      float64    `json:"total"`
	Items      []CartLine `json:"items"`
}
