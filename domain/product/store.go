package product

import "context"

type Store interface {
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	// CreateAll and UpdateAll write every product or none of them.
	CreateAll(ctx context.Context, products []*Product) error
	UpdateAll(ctx context.Context, products []*Product) error
	Find(ctx context.Context, id string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
}
