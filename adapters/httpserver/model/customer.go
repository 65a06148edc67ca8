package model

import (
	"context"

	"github.com/dddshop/backend/pkg/validation"
)

type CreateCustomerRequest struct {
	ID   string `json:"id" mod:"trim"`
	Name string `json:"name" mod:"trim" validate:"required,max=255"`
} // @name model.CreateCustomerRequest

func (r *CreateCustomerRequest) Validate(ctx context.Context) error {
	return validation.ConformAndValidate(ctx, r)
}

type ChangeAddressRequest struct {
	Street string `json:"street" mod:"trim" validate:"required"`
	Number int    `json:"number" validate:"required,gt=0"`
	Zip    string `json:"zip" mod:"trim" validate:"required"`
	City   string `json:"city" mod:"trim" validate:"required"`
} // @name model.ChangeAddressRequest

func (r *ChangeAddressRequest) Validate(ctx context.Context) error {
	return validation.ConformAndValidate(ctx, r)
}

type AddressResponse struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
} // @name model.AddressResponse

type CustomerResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Address      *AddressResponse `json:"address"`
	Active       bool             `json:"active"`
	RewardPoints int              `json:"reward_points"`
} // @name model.CustomerResponse
