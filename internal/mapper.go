package internal

import (
	"github.com/dddshop/backend/adapters/httpserver/model"
	"github.com/dddshop/backend/domain/checkout"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/domain/product"
)

type Mapper interface {
	ToCustomerResponse(c *customer.Customer) model.CustomerResponse
	ToCustomerResponses(customers []customer.Customer) []model.CustomerResponse

	ToProductResponse(p *product.Product) model.ProductResponse
	ToProductResponses(products []product.Product) []model.ProductResponse
	ToProductRecords(products []product.Product) [][]string

	ToItemRequests(items []model.OrderItemRequest) []checkout.ItemRequest
	ToOrderResponse(o *checkout.Order) model.OrderResponse
	ToOrderResponses(orders []checkout.Order) []model.OrderResponse
}
