package checkout

import (
	"context"
	"errors"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrCustomerIDRequired = errors.New("customer id is required")
	ErrItemsRequired      = errors.New("items are required")
	ErrItemIDRequired     = errors.New("item id is required")
	ErrProductIDRequired  = errors.New("product id is required")
	ErrInvalidPrice       = errors.New("price must be greater than or equal to zero")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderExists        = errors.New("order already exists")
)

type ItemRequest struct {
	ProductID string
	Quantity  int
}

type Service interface {
	PlaceOrder(ctx context.Context, customerID string, items []ItemRequest) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
}

type Order struct {
	id         string
	customerID string
	items      []*OrderItem
}

func NewOrder(id string, customerID string, items []*OrderItem) (*Order, error) {
	o := &Order{
		id:         id,
		customerID: customerID,
		items:      items,
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) validate() error {
	if o.id == "" {
		return ErrIDRequired
	}

	if o.customerID == "" {
		return ErrCustomerIDRequired
	}

	if len(o.items) == 0 {
		return ErrItemsRequired
	}

	for _, item := range o.items {
		if err := item.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (o *Order) ID() string          { return o.id }
func (o *Order) CustomerID() string  { return o.customerID }
func (o *Order) Items() []*OrderItem { return o.items }

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}

	return total
}

func (o *Order) ChangeCustomer(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDRequired
	}

	o.customerID = customerID

	return nil
}

func (o *Order) ChangeItems(items []*OrderItem) error {
	prev := o.items
	o.items = items

	if err := o.validate(); err != nil {
		o.items = prev
		return err
	}

	return nil
}
