package services

import (
	"strconv"
	"sync"

	"github.com/dddshop/backend/adapters/httpserver/model"
	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
)

var (
	mapperInstance *mapper
	onceMapper     sync.Once
)

type mapper struct{}

func NewMapperService() *mapper {
	onceMapper.Do(func() {
		mapperInstance = &mapper{}
	})
	return mapperInstance
}

func (s *mapper) ToCustomerResponse(c *customer.Customer) model.CustomerResponse {
	resp := model.CustomerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}

	if a := c.Address(); a != nil {
		resp.Address = &model.AddressResponse{
			Street: a.Street(),
			Number: a.Number(),
			Zip:    a.Zip(),
			City:   a.City(),
		}
	}

	return resp
}

func (s *mapper) ToCustomerResponses(customers []customer.Customer) []model.CustomerResponse {
	resp := make([]model.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = s.ToCustomerResponse(&customers[i])
	}

	return resp
}

func (s *mapper) ToProductResponse(p *product.Product) model.ProductResponse {
	return model.ProductResponse{
		ID:    p.ID(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func (s *mapper) ToProductResponses(products []product.Product) []model.ProductResponse {
	resp := make([]model.ProductResponse, len(products))
	for i := range products {
		resp[i] = s.ToProductResponse(&products[i])
	}

	return resp
}

func (s *mapper) ToProductRecords(products []product.Product) [][]string {
	records := make([][]string, len(products))
	for i, p := range products {
		records[i] = []string{p.ID(), p.Name(), strconv.FormatFloat(p.Price(), 'f', -1, 64)}
	}

	return records
}

func (s *mapper) ToItemRequests(items []model.OrderItemRequest) []checkout.ItemRequest {
	reqs := make([]checkout.ItemRequest, len(items))
	for i, item := range items {
		reqs[i] = checkout.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return reqs
}

func (s *mapper) ToOrderResponse(o *checkout.Order) model.OrderResponse {
	items := make([]model.OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = model.OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		}
	}

	return model.OrderResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Total:      o.Total(),
		Items:      items,
	}
}

func (s *mapper) ToOrderResponses(orders []checkout.Order) []model.OrderResponse {
	resp := make([]model.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = s.ToOrderResponse(&orders[i])
	}

	return resp
}
