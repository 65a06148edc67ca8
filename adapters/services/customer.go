package services

import (
	"context"
	"fmt"

	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/customer"
	"github.com/google/uuid"
)

type CustomerService struct {
	store      customer.Store
	dispatcher domain.EventDispatcher
}

func NewCustomerService(store customer.Store, dispatcher domain.EventDispatcher) *CustomerService {
	return &CustomerService{store: store, dispatcher: dispatcher}
}

func (s *CustomerService) Create(ctx context.Context, id string, name string) (*customer.Customer, error) {
	if id == "" {
		id = uuid.NewString()
	}

	c, err := customer.NewCustomer(id, name)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(customer.NewCustomerCreatedEvent(c)); err != nil {
		return c, fmt.Errorf("%w: %w", domain.ErrEventHandling, err)
	}

	return c, nil
}

func (s *CustomerService) ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error) {
	c, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	c.ChangeAddress(address)

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(customer.NewAddressChangedEvent(c)); err != nil {
		return c, fmt.Errorf("%w: %w", domain.ErrEventHandling, err)
	}

	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.store.Find(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]customer.Customer, error) {
	return s.store.FindAll(ctx)
}
