package model

import (
	"context"

	"github.com/dddshop/backend/pkg/validation"
)

type CreateProductRequest struct {
	ID    string  `json:"id" mod:"trim"`
	Name  string  `json:"name" mod:"trim" validate:"required,max=255"`
	Price float64 `json:"price" validate:"gte=0"`
} // @name model.CreateProductRequest

func (r *CreateProductRequest) Validate(ctx context.Context) error {
	return validation.ConformAndValidate(ctx, r)
}

type IncreasePriceRequest struct {
	Percentage float64 `json:"percentage" validate:"gt=0"`
} // @name model.IncreasePriceRequest

func (r *IncreasePriceRequest) Validate(ctx context.Context) error {
	return validation.ConformAndValidate(ctx, r)
}

type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
} // @name model.ProductResponse
