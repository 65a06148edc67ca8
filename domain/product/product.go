package product

import (
	"context"
	"errors"
)

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidPrice    = errors.New("price must be greater than or equal to zero")
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

type Service interface {
	Create(ctx context.Context, id string, name string, price float64) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Import(ctx context.Context, drafts []Draft) ([]*Product, error)
	IncreasePrices(ctx context.Context, percentage float64) ([]Product, error)
}

// Draft is an unvalidated product row, as read from an import file.
type Draft struct {
	ID    string
	Name  string
	Price float64
}

type Product struct {
	id    string
	name  string
	price float64
}

func NewProduct(id string, name string, price float64) (*Product, error) {
	p := &Product{
		id:    id,
		name:  name,
		price: price,
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) validate() error {
	if p.id == "" {
		return ErrIDRequired
	}

	if p.name == "" {
		return ErrNameRequired
	}

	if p.price < 0 {
		return ErrInvalidPrice
	}

	return nil
}

func (p *Product) ID() string     { return p.id }
func (p *Product) Name() string   { return p.name }
func (p *Product) Price() float64 { return p.price }

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	p.name = name

	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}

	p.price = price

	return nil
}

// IncreasePrice raises the price of every product by the given percentage.
func IncreasePrice(products []*Product, percentage float64) error {
	for _, p := range products {
		if err := p.ChangePrice(p.price*percentage/100 + p.price); err != nil {
			return err
		}
	}

	return nil
}
