package services

import (
	"context"
	"fmt"

	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
	"github.com/google/uuid"
)

type OrderService struct {
	orderStore    checkout.Store
	customerStore customer.Store
	productStore  product.Store
}

func NewOrderService(orderStore checkout.Store, customerStore customer.Store, productStore product.Store) *OrderService {
	return &OrderService{
		orderStore:    orderStore,
		customerStore: customerStore,
		productStore:  productStore,
	}
}

// PlaceOrder prices the requested items from the catalog, stores the order and
// saves the reward points earned by the customer.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID string, requests []checkout.ItemRequest) (*checkout.Order, error) {
	c, err := s.customerStore.Find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]*checkout.OrderItem, 0, len(requests))
	for _, req := range requests {
		p, err := s.productStore.Find(ctx, req.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, err)
		}

		item, err := checkout.NewOrderItem(uuid.NewString(), p.Name(), p.Price(), p.ID(), req.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	order, err := checkout.PlaceOrder(c, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderStore.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.customerStore.Update(ctx, c); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*checkout.Order, error) {
	return s.orderStore.Find(ctx, id)
}

func (s *OrderService) List(ctx context.Context) ([]checkout.Order, error) {
	return s.orderStore.FindAll(ctx)
}
