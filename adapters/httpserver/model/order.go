package model

import (
	"context"

	"github.com/dddshop/backend/pkg/validation"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id" mod:"trim" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
} // @name model.OrderItemRequest

type PlaceOrderRequest struct {
	CustomerID string             `json:"customer_id" mod:"trim" validate:"required"`
	Items      []OrderItemRequest `json:"items" mod:"dive" validate:"required,min=1,dive"`
} // @name model.PlaceOrderRequest

func (r *PlaceOrderRequest) Validate(ctx context.Context) error {
	return validation.ConformAndValidate(ctx, r)
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
} // @name model.OrderItemResponse

type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Total      float64             `json:"total"`
	Items      []OrderItemResponse `json:"items"`
} // @name model.OrderResponse
