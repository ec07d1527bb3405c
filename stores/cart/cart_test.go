package cart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
)

func newStore() (*Store, *storage.Memory) {
	db := storage.NewMemory()
	return New(db), db
}

func hijab() models.Product {
	return models.Product{
		ID:           "p1",
		Name:         "Classic Chiffon Hijab",
		Price:        10,
		Image:        "/images/p1.jpg",
		ShippingCost: 5,
		DeliveryDate: "2026-09-01",
	}
}

// TestAddItem_MergesQuantities verifies adding the same product twice yields
// one line with the summed quantity.
func TestAddItem_MergesQuantities(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 2)
	s.AddItem(hijab(), 3)

	lines := s.Items()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Qty)
}

// TestAddItem_CoercesQuantity verifies invalid quantities default to one.
func TestAddItem_CoercesQuantity(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 0)
	s.AddItem(hijab(), -4)

	lines := s.Items()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)
}

// TestAddItem_DefaultsDeliveryAndShipping verifies unspecified delivery gets
// a default date and unspecified shipping stays zero.
func TestAddItem_DefaultsDeliveryAndShipping(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(models.Product{ID: "bare", Name: "Bare", Price: 3}, 1)

	lines := s.Items()
	require.Len(t, lines, 1)
	assert.NotEmpty(t, lines[0].DeliveryDate)
	assert.Zero(t, lines[0].ShippingCost)
}

// TestUpdateQty verifies direct quantity edits and the unknown-id no-op.
func TestUpdateQty(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 1)

	s.UpdateQty("p1", 7)
	assert.Equal(t, 7, s.Items()[0].Qty)

	s.UpdateQty("ghost", 3)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 7, s.Items()[0].Qty)
}

// TestRemoveItem verifies removal and the unknown-id no-op.
func TestRemoveItem(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 1)

	s.RemoveItem("ghost")
	assert.Len(t, s.Items(), 1)

	s.RemoveItem("p1")
	assert.Empty(t, s.Items())
}

// TestPlaceOrder_EmptyCart verifies the defined no-op: no order, history
// untouched, no error.
func TestPlaceOrder_EmptyCart(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	_, ok := s.PlaceOrder(nil)
	assert.False(t, ok)
	assert.Empty(t, s.Orders())
}

// TestPlaceOrder_TotalWithFlatTax verifies the recorded total:
// (10×2 + 5) × 1.10 = 27.5.
func TestPlaceOrder_TotalWithFlatTax(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 2)

	order, ok := s.PlaceOrder(nil)
	require.True(t, ok)
	assert.InDelta(t, 27.5, order.Total, 1e-9)
}

// TestPlaceOrder_SnapshotsCartAndClears verifies the transaction: cart
// empties, the new order lands at the front with overrides applied.
func TestPlaceOrder_SnapshotsCartAndClears(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 2)
	s.AddItem(models.Product{ID: "p2", Name: "Satin", Price: 20, ShippingCost: 3}, 1)

	order, ok := s.PlaceOrder(map[string]float64{"p2": 0})
	require.True(t, ok)
	require.Len(t, order.ID, 16)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, float64(5), order.Items[0].ShippingCost)
	assert.Equal(t, float64(0), order.Items[1].ShippingCost)
	// (10×2 + 5 + 20 + 0) × 1.10
	assert.InDelta(t, 49.5, order.Total, 1e-9)

	assert.Empty(t, s.Items())
	history := s.Orders()
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

// TestPlaceOrder_HistoryIsNewestFirst verifies later orders prepend.
func TestPlaceOrder_HistoryIsNewestFirst(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 1)
	first, ok := s.PlaceOrder(nil)
	require.True(t, ok)

	s.AddItem(hijab(), 1)
	second, ok := s.PlaceOrder(nil)
	require.True(t, ok)

	history := s.Orders()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

// TestClearOrders_LeavesCartAlone verifies the bulk clear is independent.
func TestClearOrders_LeavesCartAlone(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 1)
	_, ok := s.PlaceOrder(nil)
	require.True(t, ok)

	s.AddItem(hijab(), 1)
	s.ClearOrders()

	assert.Empty(t, s.Orders())
	assert.Len(t, s.Items(), 1)
}

// TestItems_CorruptPayload verifies a corrupt cart reads as empty.
func TestItems_CorruptPayload(t *testing.T) {
	t.Parallel()

	s, db := newStore()
	s.AddItem(hijab(), 1)
	db.Corrupt(storage.KeyCart)

	assert.Empty(t, s.Items())
}

// TestExportOrders verifies the xlsx export produces a workbook.
func TestExportOrders(t *testing.T) {
	t.Parallel()

	s, _ := newStore()
	s.AddItem(hijab(), 2)
	_, ok := s.PlaceOrder(nil)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, s.ExportOrders(&buf))
	assert.Greater(t, buf.Len(), 0)
}
