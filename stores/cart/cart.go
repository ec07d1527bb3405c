// Package cart owns the cart lines and the order history, including the
// order-placement transaction that snapshots one into the other.
//
// Promo/discount math deliberately does not live here: the checkout UI
// computes any discount for display, and the persisted order total is raw
// subtotal + shipping + tax. That mismatch is the storefront's observed
// behavior and is kept as-is.
package cart

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
)

// TaxRate is the flat tax applied on the pre-discount subtotal.
const TaxRate = 0.10

// Lines without an explicit delivery date get one this many days out.
const defaultDeliveryDays = 4

// Store reads and mutates the cart and the order history. One cart exists
// per storage scope; it is not keyed by session.
type Store struct {
	db storage.Adapter
}

// New wires a cart store over the given adapter.
func New(db storage.Adapter) *Store {
	return &Store{db: db}
}

// Items returns the current cart lines.
func (s *Store) Items() []models.CartLine {
	return storage.Read(s.db, storage.KeyCart, []models.CartLine(nil))
}

// AddItem puts qty of the product in the cart. A non-positive qty counts as
// one. If the product is already in the cart its line quantity grows; no
// second line is ever created for the same product id.
func (s *Store) AddItem(p models.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	lines := s.Items()
	if _, idx, found := lo.FindIndexOf(lines, func(l models.CartLine) bool {
		return l.ProductID == p.ID
	}); found {
		lines[idx].Qty += qty
		storage.Write(s.db, storage.KeyCart, lines)
		return
	}

	delivery := p.DeliveryDate
	if delivery == "" {
		delivery = time.Now().AddDate(0, 0, defaultDeliveryDays).Format("2006-01-02")
	}
	lines = append(lines, models.CartLine{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Image:        p.Image,
		DeliveryDate: delivery,
		ShippingCost: p.ShippingCost,
		Qty:          qty,
	})
	storage.Write(s.db, storage.KeyCart, lines)
}

// UpdateQty sets the quantity on an existing line. Unknown ids and
// non-positive quantities are ignored.
func (s *Store) UpdateQty(productID string, qty int) {
	if qty < 1 {
		return
	}
	lines := s.Items()
	_, idx, found := lo.FindIndexOf(lines, func(l models.CartLine) bool {
		return l.ProductID == productID
	})
	if !found {
		return
	}
	lines[idx].Qty = qty
	storage.Write(s.db, storage.KeyCart, lines)
}

// RemoveItem drops a line. No-op if the id is not in the cart.
func (s *Store) RemoveItem(productID string) {
	lines := s.Items()
	kept := lo.Filter(lines, func(l models.CartLine, _ int) bool {
		return l.ProductID != productID
	})
	if len(kept) == len(lines) {
		return
	}
	storage.Write(s.db, storage.KeyCart, kept)
}

// Clear empties the cart without touching order history.
func (s *Store) Clear() {
	storage.Write(s.db, storage.KeyCart, []models.CartLine{})
}

// Subtotal is Σ(price×qty) + Σ(shipping) over the current cart, with
// shippingOverrides taking precedence per product id. Exposed for the
// checkout UI; PlaceOrder runs the same math.
func (s *Store) Subtotal(shippingOverrides map[string]float64) float64 {
	return subtotal(s.Items(), shippingOverrides)
}

// PlaceOrder snapshots the cart into a new order at the front of the order
// history and clears the cart, as one composite write. An empty cart is a
// defined no-op: ok is false and history is untouched.
func (s *Store) PlaceOrder(shippingOverrides map[string]float64) (models.Order, bool) {
	lines := s.Items()
	if len(lines) == 0 {
		return models.Order{}, false
	}

	items := make([]models.CartLine, len(lines))
	copy(items, lines)
	for i, line := range items {
		if override, ok := shippingOverrides[line.ProductID]; ok {
			items[i].ShippingCost = override
		}
	}

	order := models.Order{
		ID:         newOrderID(),
		DatePlaced: time.Now(),
		Total:      roundCents(subtotal(lines, shippingOverrides) * (1 + TaxRate)),
		Items:      items,
	}

	history := append([]models.Order{order}, s.Orders()...)
	storage.WriteMulti(s.db, map[string]any{
		storage.KeyOrders: history,
		storage.KeyCart:   []models.CartLine{},
	})
	return order, true
}

// Orders returns the order history, newest first.
func (s *Store) Orders() []models.Order {
	return storage.Read(s.db, storage.KeyOrders, []models.Order(nil))
}

// ClearOrders wipes the order history. The cart is untouched.
func (s *Store) ClearOrders() {
	storage.Write(s.db, storage.KeyOrders, []models.Order{})
}

func subtotal(lines []models.CartLine, overrides map[string]float64) float64 {
	var sum float64
	for _, line := range lines {
		shipping := line.ShippingCost
		if override, ok := overrides[line.ProductID]; ok {
			shipping = override
		}
		sum += line.LineTotal() + shipping
	}
	return sum
}

// newOrderID returns 16 hex characters. Not cryptographically unique; the
// collision risk is accepted for a demo order reference.
func newOrderID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
