package product

import "github.com/dddshop/backend/domain"

const ProductCreatedEventName = "ProductCreated"

type Created struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ProductCreatedEvent = domain.Event[Created]

func NewProductCreatedEvent(p *Product) ProductCreatedEvent {
	return domain.NewEvent(ProductCreatedEventName, Created{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	})
}
