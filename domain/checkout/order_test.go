package checkout_test

import (
	"testing"

	"github.com/dddshop/backend/domain/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id string, price float64, quantity int) *checkout.OrderItem {
	t.Helper()

	item, err := checkout.NewOrderItem(id, "Item "+id, price, "p"+id, quantity)
	require.NoError(t, err)

	return item
}

func TestNewOrderItem(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		productID string
		price     float64
		quantity  int
		wantErr   error
	}{
		{"valid", "i1", "p1", 100, 2, nil},
		{"empty id", "", "p1", 100, 2, checkout.ErrItemIDRequired},
		{"empty product id", "i1", "", 100, 2, checkout.ErrProductIDRequired},
		{"negative price", "i1", "p1", -1, 2, checkout.ErrInvalidPrice},
		{"zero quantity", "i1", "p1", 100, 0, checkout.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := checkout.NewOrderItem(tt.id, "Item", tt.price, tt.productID, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 200.0, item.Subtotal())
		})
	}
}

func TestNewOrder(t *testing.T) {
	item := mustItem(t, "1", 100, 1)

	_, err := checkout.NewOrder("", "c1", []*checkout.OrderItem{item})
	assert.ErrorIs(t, err, checkout.ErrIDRequired)

	_, err = checkout.NewOrder("o1", "", []*checkout.OrderItem{item})
	assert.ErrorIs(t, err, checkout.ErrCustomerIDRequired)

	_, err = checkout.NewOrder("o1", "c1", nil)
	assert.ErrorIs(t, err, checkout.ErrItemsRequired)
}

func TestOrder_Total(t *testing.T) {
	item1 := mustItem(t, "1", 100, 2)
	item2 := mustItem(t, "2", 200, 2)

	order, err := checkout.NewOrder("o1", "c1", []*checkout.OrderItem{item1})
	require.NoError(t, err)
	assert.Equal(t, 200.0, order.Total())

	order, err = checkout.NewOrder("o2", "c1", []*checkout.OrderItem{item1, item2})
	require.NoError(t, err)
	assert.Equal(t, 600.0, order.Total())
}

func TestOrder_Change(t *testing.T) {
	item1 := mustItem(t, "1", 100, 2)
	item2 := mustItem(t, "2", 10, 1)

	order, err := checkout.NewOrder("o1", "c1", []*checkout.OrderItem{item1})
	require.NoError(t, err)

	require.NoError(t, order.ChangeCustomer("c2"))
	assert.Equal(t, "c2", order.CustomerID())
	assert.ErrorIs(t, order.ChangeCustomer(""), checkout.ErrCustomerIDRequired)

	require.NoError(t, order.ChangeItems([]*checkout.OrderItem{item2}))
	assert.Equal(t, 10.0, order.Total())

	assert.ErrorIs(t, order.ChangeItems(nil), checkout.ErrItemsRequired)
	assert.Len(t, order.Items(), 1)
}
