package httpserver

import (
	"github.com/dddshop/backend/adapters/httpserver/model"
	"github.com/dddshop/backend/pkg/apperror"
	"github.com/labstack/echo/v4"
)

// PlaceOrder godoc
// @Summary Place order
// @Description Place an order for a customer; half of the total is added as reward points
// @Tags order
// @Accept json
// @Produce json
// @Param payload body model.PlaceOrderRequest true "Place order request"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /orders [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.PlaceOrderRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	order, err := s.OrderService.PlaceOrder(ctx, req.CustomerID, s.MapperService.ToItemRequests(req.Items))
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToOrderResponse(order))
}

// ListOrders godoc
// @Summary List orders
// @Tags order
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]model.OrderResponse}
// @Router /orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.OrderService.List(c.Request().Context())
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToOrderResponses(orders))
}

// GetOrder godoc
// @Summary Get order
// @Tags order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.SuccessResponse{data=model.OrderResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	order, err := s.OrderService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToOrderResponse(order))
}

func (s *Server) RegisterOrderRoutes(router *echo.Group) {
	router.POST("", s.PlaceOrder)
	router.GET("", s.ListOrders)
	router.GET("/:id", s.GetOrder)
}
