package checkout

import (
	"github.com/dddshop/backend/domain/customer"
	"github.com/google/uuid"
)

func Total(orders []*Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total()
	}

	return total
}

// PlaceOrder creates a new order for the customer and awards half of the
// order total as reward points.
func PlaceOrder(c *customer.Customer, items []*OrderItem) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrItemsRequired
	}

	order, err := NewOrder(uuid.NewString(), c.ID(), items)
	if err != nil {
		return nil, err
	}

	if err := c.AddRewardPoints(int(order.Total() / 2)); err != nil {
		return nil, err
	}

	return order, nil
}
