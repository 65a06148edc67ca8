package httpserver

import (
	"github.com/dddshop/backend/adapters/httpserver/model"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/pkg/apperror"
	"github.com/labstack/echo/v4"
)

// CreateCustomer godoc
// @Summary Create customer
// @Description Create a customer and publish CustomerCreated
// @Tags customer
// @Accept json
// @Produce json
// @Param payload body model.CreateCustomerRequest true "Create customer request"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateCustomerRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	created, err := s.CustomerService.Create(ctx, req.ID, req.Name)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToCustomerResponse(created))
}

// ListCustomers godoc
// @Summary List customers
// @Tags customer
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]model.CustomerResponse}
// @Failure 500 {object} model.ErrorResponse
// @Router /customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	customers, err := s.CustomerService.List(c.Request().Context())
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToCustomerResponses(customers))
}

// GetCustomer godoc
// @Summary Get customer
// @Tags customer
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	found, err := s.CustomerService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToCustomerResponse(found))
}

// ChangeCustomerAddress godoc
// @Summary Change customer address
// @Description Change the address and publish CustomerAddressChanged
// @Tags customer
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param payload body model.ChangeAddressRequest true "Change address request"
// @Success 200 {object} model.SuccessResponse{data=model.CustomerResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /customers/{id}/address [put]
func (s *Server) ChangeCustomerAddress(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.ChangeAddressRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	address, err := customer.NewAddress(req.Street, req.Number, req.Zip, req.City)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	updated, err := s.CustomerService.ChangeAddress(ctx, c.Param("id"), address)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToCustomerResponse(updated))
}

func (s *Server) RegisterCustomerRoutes(router *echo.Group) {
	router.POST("", s.CreateCustomer)
	router.GET("", s.ListCustomers)
	router.GET("/:id", s.GetCustomer)
	router.PUT("/:id/address", s.ChangeCustomerAddress)
}
