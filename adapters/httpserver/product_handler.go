package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dddshop/backend/adapters/httpserver/model"
	"github.com/dddshop/backend/domain/product"
	"github.com/dddshop/backend/pkg/app"
	"github.com/dddshop/backend/pkg/apperror"
	"github.com/labstack/echo/v4"
)

var productCSVHeader = []string{"id", "name", "price"}

// CreateProduct godoc
// @Summary Create product
// @Description Create a product and publish ProductCreated
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.CreateProductRequest true "Create product request"
// @Success 200 {object} model.SuccessResponse{data=model.ProductResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /products [post]
func (s *Server) CreateProduct(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.CreateProductRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	created, err := s.ProductService.Create(ctx, req.ID, req.Name, req.Price)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToProductResponse(created))
}

// ListProducts godoc
// @Summary List products
// @Tags product
// @Produce json
// @Success 200 {object} model.SuccessResponse{data=[]model.ProductResponse}
// @Router /products [get]
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.ProductService.List(c.Request().Context())
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToProductResponses(products))
}

// GetProduct godoc
// @Summary Get product
// @Tags product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.SuccessResponse{data=model.ProductResponse}
// @Failure 404 {object} model.ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
	found, err := s.ProductService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToProductResponse(found))
}

// IncreaseProductPrices godoc
// @Summary Increase the price of every product
// @Tags product
// @Accept json
// @Produce json
// @Param payload body model.IncreasePriceRequest true "Increase price request"
// @Success 200 {object} model.SuccessResponse{data=[]model.ProductResponse}
// @Failure 400 {object} model.ErrorResponse
// @Router /products/increase-price [post]
func (s *Server) IncreaseProductPrices(c echo.Context) error {
	var (
		ctx = c.Request().Context()
		req model.IncreasePriceRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	products, err := s.ProductService.IncreasePrices(ctx, req.Percentage)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	return s.success(c, s.MapperService.ToProductResponses(products))
}

// ImportProducts godoc
// @Summary Import products from a CSV file
// @Description The file must have the header id,name,price
// @Tags product
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} model.SuccessResponse{data=[]model.ProductResponse}
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /products/import [post]
func (s *Server) ImportProducts(c echo.Context) error {
	ctx := c.Request().Context()

	file, contentType, err := app.BindMultipartFile(c, "file")
	if err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if !app.IsText(contentType) {
		return s.error(c, apperror.ErrInvalidParam(fmt.Errorf("unsupported content type %s", contentType)))
	}

	entities, err := s.CSVService.CsvToEntities(file, productRecordMapper(ctx))
	if err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	drafts := make([]product.Draft, 0, len(entities))
	for _, entity := range entities {
		req := entity.(model.CreateProductRequest)
		drafts = append(drafts, product.Draft{ID: req.ID, Name: req.Name, Price: req.Price})
	}

	created, err := s.ProductService.Import(ctx, drafts)
	if err != nil {
		return s.error(c, toAppError(err))
	}

	resp := make([]model.ProductResponse, 0, len(created))
	for _, p := range created {
		resp = append(resp, s.MapperService.ToProductResponse(p))
	}

	return s.success(c, resp)
}

// ExportProducts godoc
// @Summary Export products as CSV
// @Tags product
// @Produce text/csv
// @Success 200 {file} file
// @Router /products/export [get]
func (s *Server) ExportProducts(c echo.Context) error {
	products, err := s.ProductService.List(c.Request().Context())
	if err != nil {
		return s.error(c, toAppError(err))
	}

	buf, err := s.CSVService.EntitiesToCsv(productCSVHeader, s.MapperService.ToProductRecords(products))
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=products.csv")

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func productRecordMapper(ctx context.Context) func(record []string) (interface{}, error) {
	return func(record []string) (interface{}, error) {
		if len(record) != len(productCSVHeader) {
			return nil, errors.New("expected columns id,name,price")
		}

		price, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", record[2])
		}

		req := model.CreateProductRequest{ID: record[0], Name: record[1], Price: price}
		if err := req.Validate(ctx); err != nil {
			return nil, err
		}

		return req, nil
	}
}

func (s *Server) RegisterProductRoutes(router *echo.Group) {
	router.POST("", s.CreateProduct)
	router.GET("", s.ListProducts)
	router.POST("/increase-price", s.IncreaseProductPrices)
	router.POST("/import", s.ImportProducts)
	router.GET("/export", s.ExportProducts)
	router.GET("/:id", s.GetProduct)
}
