package httpserver_test

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dddshop/backend/adapters/event"
	"github.com/dddshop/backend/adapters/httpserver"
	"github.com/dddshop/backend/adapters/httpserver/model"
	"github.com/dddshop/backend/adapters/inmemstore"
	"github.com/dddshop/backend/adapters/postgrestore"
	"github.com/dddshop/backend/adapters/services"
	"github.com/dddshop/backend/domain"
	"github.com/dddshop/backend/domain/customer"
	"github.com/dddshop/backend/pkg/apperror"
	"github.com/dddshop/backend/pkg/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type recordingHandler struct {
	names []string
	err   error
}

func (h *recordingHandler) Handle(e domain.DomainEvent) error {
	h.names = append(h.names, e.EventName())
	return h.err
}

func newServer(t *testing.T) *httpserver.Server {
	t.Helper()

	conn, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	dispatcher := event.NewEventDispatcher()
	customerStore := postgrestore.NewCustomerStore(conn.ORM)
	productStore := postgrestore.NewProductStore(conn.SQL)

	server, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar(), func(s *httpserver.Server) error {
		s.EventDispatcher = dispatcher
		s.MapperService = services.NewMapperService()
		s.CSVService = services.NewCSVService()
		s.CustomerService = services.NewCustomerService(customerStore, dispatcher)
		s.ProductService = services.NewProductService(productStore, dispatcher)
		s.OrderService = services.NewOrderService(postgrestore.NewOrderStore(conn.ORM), customerStore, productStore)
		return nil
	})
	require.NoError(t, err)

	return server
}

func do(t *testing.T, server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	response := httptest.NewRecorder()

	server.ServeHTTP(response, request)

	return response
}

func decode[T any](t *testing.T, response *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &envelope))

	return envelope.Data
}

func decodeError(t *testing.T, response *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))

	return resp
}

func TestHealthCheck(t *testing.T) {
	server := newServer(t)

	response := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	server.ServeHTTP(response, request)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK!!!", response.Body.String())
}

func TestOptionError(t *testing.T) {
	errOption := errors.New("bad option")

	_, err := httpserver.New(&config.Config{}, zap.NewNop().Sugar(), func(s *httpserver.Server) error {
		return errOption
	})
	assert.ErrorIs(t, err, errOption)
}

func TestCustomerRoutes(t *testing.T) {
	server := newServer(t)
	h := &recordingHandler{}
	server.EventDispatcher.Register(customer.CustomerCreatedEventName, h)
	server.EventDispatcher.Register(customer.AddressChangedEventName, h)

	t.Run("it should create a customer", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/customers", `{"id":"1","name":"  Customer 1  "}`)

		require.Equal(t, http.StatusOK, response.Code)
		got := decode[model.CustomerResponse](t, response)
		assert.Equal(t, model.CustomerResponse{ID: "1", Name: "Customer 1"}, got)
		assert.Equal(t, []string{customer.CustomerCreatedEventName}, h.names)
	})

	t.Run("it should reject an invalid request", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/customers", `{"id":"2","name":"   "}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Equal(t, apperror.ValidationCode, decodeError(t, response).Code)
	})

	t.Run("it should reject a duplicate", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/customers", `{"id":"1","name":"Customer 1"}`)

		assert.Equal(t, http.StatusConflict, response.Code)
	})

	t.Run("it should change the address", func(t *testing.T) {
		response := do(t, server, http.MethodPut, "/api/customers/1/address",
			`{"street":"Street 1","number":1,"zip":"Zipcode 1","city":"City 1"}`)

		require.Equal(t, http.StatusOK, response.Code)
		got := decode[model.CustomerResponse](t, response)
		assert.Equal(t, &model.AddressResponse{Street: "Street 1", Number: 1, Zip: "Zipcode 1", City: "City 1"}, got.Address)
		assert.Equal(t, customer.AddressChangedEventName, h.names[len(h.names)-1])
	})

	t.Run("it should get and list customers", func(t *testing.T) {
		response := do(t, server, http.MethodGet, "/api/customers/1", "")
		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "Customer 1", decode[model.CustomerResponse](t, response).Name)

		response = do(t, server, http.MethodGet, "/api/customers", "")
		require.Equal(t, http.StatusOK, response.Code)
		assert.Len(t, decode[[]model.CustomerResponse](t, response), 1)
	})

	t.Run("it should return not found", func(t *testing.T) {
		response := do(t, server, http.MethodGet, "/api/customers/404", "")

		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Equal(t, apperror.EntityNotFoundCode, decodeError(t, response).Code)
	})
}

func TestCustomerRoutes_HandlerFailure(t *testing.T) {
	server := newServer(t)
	server.EventDispatcher.Register(customer.CustomerCreatedEventName, &recordingHandler{err: errors.New("boom")})

	response := do(t, server, http.MethodPost, "/api/customers", `{"id":"1","name":"Customer 1"}`)

	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.Equal(t, apperror.EventDispatchCode, decodeError(t, response).Code)
}

func TestProductRoutes(t *testing.T) {
	server := newServer(t)

	t.Run("it should create products", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/products", `{"id":"1","name":"Product 1","price":10}`)
		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, model.ProductResponse{ID: "1", Name: "Product 1", Price: 10},
			decode[model.ProductResponse](t, response))

		response = do(t, server, http.MethodPost, "/api/products", `{"id":"2","name":"Product 2","price":-1}`)
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("it should import products from csv", func(t *testing.T) {
		body := new(bytes.Buffer)
		w := multipart.NewWriter(body)
		part, err := w.CreateFormFile("file", "products.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("id,name,price\n2,Product 2,20\n3,Product 3,30\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		request := httptest.NewRequest(http.MethodPost, "/api/products/import", body)
		request.Header.Set("Content-Type", w.FormDataContentType())
		response := httptest.NewRecorder()
		server.ServeHTTP(response, request)

		require.Equal(t, http.StatusOK, response.Code)
		assert.Len(t, decode[[]model.ProductResponse](t, response), 2)
	})

	t.Run("it should import nothing when a row conflicts", func(t *testing.T) {
		body := new(bytes.Buffer)
		w := multipart.NewWriter(body)
		part, err := w.CreateFormFile("file", "products.csv")
		require.NoError(t, err)
		_, err = part.Write([]byte("id,name,price\n4,Product 4,40\n1,Product 1,10\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		request := httptest.NewRequest(http.MethodPost, "/api/products/import", body)
		request.Header.Set("Content-Type", w.FormDataContentType())
		response := httptest.NewRecorder()
		server.ServeHTTP(response, request)

		require.Equal(t, http.StatusConflict, response.Code)
		assert.Equal(t, apperror.ConflictCode, decodeError(t, response).Code)

		response = do(t, server, http.MethodGet, "/api/products/4", "")
		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("it should increase prices", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/products/increase-price", `{"percentage":10}`)
		require.Equal(t, http.StatusOK, response.Code)

		response = do(t, server, http.MethodGet, "/api/products/1", "")
		require.Equal(t, http.StatusOK, response.Code)
		assert.InDelta(t, 11.0, decode[model.ProductResponse](t, response).Price, 0.0001)
	})

	t.Run("it should export products as csv", func(t *testing.T) {
		response := do(t, server, http.MethodGet, "/api/products/export", "")

		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "text/csv", response.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(response.Body.String(), "id,name,price\n1,Product 1,"))
	})

	t.Run("it should list products", func(t *testing.T) {
		response := do(t, server, http.MethodGet, "/api/products", "")

		require.Equal(t, http.StatusOK, response.Code)
		assert.Len(t, decode[[]model.ProductResponse](t, response), 3)
	})
}

func TestOrderRoutes(t *testing.T) {
	server := newServer(t)

	require.Equal(t, http.StatusOK, do(t, server, http.MethodPost, "/api/customers", `{"id":"c1","name":"Customer 1"}`).Code)
	require.Equal(t, http.StatusOK, do(t, server, http.MethodPost, "/api/products", `{"id":"p1","name":"Product 1","price":10}`).Code)

	var orderID string

	t.Run("it should place an order", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/orders",
			`{"customer_id":"c1","items":[{"product_id":"p1","quantity":2}]}`)

		require.Equal(t, http.StatusOK, response.Code)
		got := decode[model.OrderResponse](t, response)
		assert.Equal(t, 20.0, got.Total)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "p1", got.Items[0].ProductID)
		orderID = got.ID

		response = do(t, server, http.MethodGet, "/api/customers/c1", "")
		assert.Equal(t, 10, decode[model.CustomerResponse](t, response).RewardPoints)
	})

	t.Run("it should reject empty orders", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/orders", `{"customer_id":"c1","items":[]}`)

		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("it should reject unknown products", func(t *testing.T) {
		response := do(t, server, http.MethodPost, "/api/orders",
			`{"customer_id":"c1","items":[{"product_id":"nope","quantity":1}]}`)

		assert.Equal(t, http.StatusNotFound, response.Code)
	})

	t.Run("it should get and list orders", func(t *testing.T) {
		response := do(t, server, http.MethodGet, "/api/orders/"+orderID, "")
		require.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, orderID, decode[model.OrderResponse](t, response).ID)

		response = do(t, server, http.MethodGet, "/api/orders", "")
		require.Equal(t, http.StatusOK, response.Code)
		assert.Len(t, decode[[]model.OrderResponse](t, response), 1)
	})
}
