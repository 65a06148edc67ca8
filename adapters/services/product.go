package services

import (
	"context"
	"fmt"

	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/product"
	"github.com/google/uuid"
)

type ProductService struct {
	store      product.Store
	dispatcher domain.EventDispatcher
}

func NewProductService(store product.Store, dispatcher domain.EventDispatcher) *ProductService {
	return &ProductService{store: store, dispatcher: dispatcher}
}

func (s *ProductService) Create(ctx context.Context, id string, name string, price float64) (*product.Product, error) {
	if id == "" {
		id = uuid.NewString()
	}

	p, err := product.NewProduct(id, name, price)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Notify(product.NewProductCreatedEvent(p)); err != nil {
		return p, fmt.Errorf("%w: %w", domain.ErrEventHandling, err)
	}

	return p, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	return s.store.Find(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]product.Product, error) {
	return s.store.FindAll(ctx)
}

func (s *ProductService) IncreasePrices(ctx context.Context, percentage float64) ([]product.Product, error) {
	products, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*product.Product, len(products))
	for i := range products {
		ptrs[i] = &products[i]
	}

	if err := product.IncreasePrice(ptrs, percentage); err != nil {
		return nil, err
	}

	if err := s.store.UpdateAll(ctx, ptrs); err != nil {
		return nil, err
	}

	return products, nil
}

// Import validates every draft before storing them in one batch, so a bad row
// leaves the catalog untouched. ProductCreated is raised only after the batch
// is stored.
func (s *ProductService) Import(ctx context.Context, drafts []product.Draft) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(drafts))
	seen := make(map[string]struct{}, len(drafts))

	for i, draft := range drafts {
		id := draft.ID
		if id == "" {
			id = uuid.NewString()
		}

		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("row %d: %w: %s", i+1, product.ErrProductExists, id)
		}
		seen[id] = struct{}{}

		p, err := product.NewProduct(id, draft.Name, draft.Price)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		products = append(products, p)
	}

	if err := s.store.CreateAll(ctx, products); err != nil {
		return nil, err
	}

	for _, p := range products {
		if err := s.dispatcher.Notify(product.NewProductCreatedEvent(p)); err != nil {
			return products, fmt.Errorf("%w: %w", domain.ErrEventHandling, err)
		}
	}

	return products, nil
}
