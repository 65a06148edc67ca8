package postgrestore_test

import (
	"context"
	"testing"

	"github.com/dddshop/backend/adapters/inmemstore"
	"github.com/dddshop/backend/adapters/postgrestore"
	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T) *postgrestore.Conn {
	t.Helper()

	conn, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func newCustomer(t *testing.T, id, name string) *customer.Customer {
	t.Helper()

	c, err := customer.NewCustomer(id, name)
	require.NoError(t, err)

	address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	require.NoError(t, err)
	c.ChangeAddress(address)

	return c
}

func newProduct(t *testing.T, id, name string, price float64) *product.Product {
	t.Helper()

	p, err := product.NewProduct(id, name, price)
	require.NoError(t, err)

	return p
}

func newOrderItem(t *testing.T, id string, p *product.Product, quantity int) *checkout.OrderItem {
	t.Helper()

	item, err := checkout.NewOrderItem(id, p.Name(), p.Price(), p.ID(), quantity)
	require.NoError(t, err)

	return item
}

// seedOrder stores customer "123", product "123" and order "123" with one item.
func seedOrder(t *testing.T, ctx context.Context, conn *postgrestore.Conn) *checkout.Order {
	t.Helper()

	require.NoError(t, postgrestore.NewCustomerStore(conn.ORM).Create(ctx, newCustomer(t, "123", "Customer 1")))

	p := newProduct(t, "123", "Product 1", 10)
	require.NoError(t, postgrestore.NewProductStore(conn.SQL).Create(ctx, p))

	order, err := checkout.NewOrder("123", "123", []*checkout.OrderItem{newOrderItem(t, "1", p, 2)})
	require.NoError(t, err)
	require.NoError(t, postgrestore.NewOrderStore(conn.ORM).Create(ctx, order))

	return order
}
