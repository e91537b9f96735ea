package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orders/cmd"
	"orders/internal/adapters/out/storage"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// apiSuite serves the full stack from a fresh in-memory SQLite database per test.
type apiSuite struct {
	suite.Suite
	policy string
	e      *echo.Echo
	close  func()
}

func (suite *apiSuite) SetupTest() {
	config := cmd.Config{
		DBDriver:          storage.DriverSQLite,
		SQLiteDSN:         "file::memory:?_pragma=foreign_keys(1)",
		OrderStatusPolicy: suite.policy,
	}

	db, err := cmd.OpenDatabase(config)
	suite.Require().NoError(err)
	suite.close = func() { _ = storage.Close(db) }

	root, err := cmd.NewCompositionRoot(config, db, zap.NewNop())
	suite.Require().NoError(err)
	root.SeedCatalog(context.Background())

	suite.e, err = root.CreateHTTPServer()
	suite.Require().NoError(err)
}

func (suite *apiSuite) TearDownTest() {
	suite.close()
}

func (suite *apiSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *apiSuite) decode(rec *httptest.ResponseRecorder, dest any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func (suite *ServerTestSuite) TestOrderLifecycle() {
	// create
	rec := suite.do(http.MethodPost, "/orders", `[{"product_id": 2, "quantity": 3}]`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created []servers.Order
	suite.decode(rec, &created)
	suite.Require().Len(created, 1)
	suite.Equal(int64(1), created[0].Id)
	suite.Equal(int64(2), created[0].ProductId)
	suite.Equal("Cafe", created[0].Product.Name)
	suite.Equal(3, created[0].Quantity)
	suite.Equal("pendiente", created[0].Status)
	suite.Nil(created[0].Customer)
	suite.False(created[0].Timestamp.IsZero())

	// transition
	rec = suite.do(http.MethodPut, "/orders/1/status", `{"status": "en proceso"}`)
	suite.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())

	var updated servers.Order
	suite.decode(rec, &updated)
	suite.Equal("en proceso", updated.Status)
	suite.Equal(3, updated.Quantity)
	suite.True(created[0].Timestamp.Equal(updated.Timestamp))

	// unknown status is rejected and nothing changes
	rec = suite.do(http.MethodPut, "/orders/1/status", `{"status": "en-route"}`)
	suite.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	var apiErr servers.Error
	suite.decode(rec, &apiErr)
	suite.Equal(http.StatusBadRequest, apiErr.Code)
	suite.Contains(apiErr.Message, `"en proceso"`)

	rec = suite.do(http.MethodGet, "/orders/1", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var fetched servers.Order
	suite.decode(rec, &fetched)
	suite.Equal("en proceso", fetched.Status)
}

func (suite *ServerTestSuite) TestCreateOrders_UnknownProduct_PersistsNothing() {
	rec := suite.do(http.MethodPost, "/orders", `[{"product_id": 1, "quantity": 1}, {"product_id": 99, "quantity": 1}]`)
	suite.Require().Equal(http.StatusBadRequest, rec.Code, rec.Body.String())

	var apiErr servers.Error
	suite.decode(rec, &apiErr)
	suite.Contains(apiErr.Message, "99")

	rec = suite.do(http.MethodGet, "/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var all []servers.Order
	suite.decode(rec, &all)
	suite.Empty(all)
}

func (suite *ServerTestSuite) TestCreateOrders_InvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"empty batch", `[]`},
		{"zero quantity", `[{"product_id": 1, "quantity": 0}]`},
		{"missing product", `[{"quantity": 2}]`},
		{"unknown status", `[{"product_id": 1, "quantity": 2, "status": "shipped"}]`},
		{"not json", `[{`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rec := suite.do(http.MethodPost, "/orders", tt.body)
			suite.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func (suite *ServerTestSuite) TestCreateOrders_WithCustomerName() {
	rec := suite.do(http.MethodPost, "/orders?customer_name=Ana",
		`[{"product_id": 1, "quantity": 2}, {"product_id": 4, "quantity": 1, "status": "completado"}]`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created []servers.Order
	suite.decode(rec, &created)
	suite.Require().Len(created, 2)
	suite.Require().NotNil(created[0].Customer)
	suite.Equal("Ana", created[0].Customer.Name)
	suite.Equal(created[0].Customer.Id, created[1].Customer.Id)
	suite.Equal("Leche", created[0].Product.Name)
	suite.Equal("completado", created[1].Status)

	rec = suite.do(http.MethodGet, "/customers/Ana/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var history []servers.Order
	suite.decode(rec, &history)
	suite.Len(history, 2)

	rec = suite.do(http.MethodGet, "/products/4/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var forProduct []servers.Order
	suite.decode(rec, &forProduct)
	suite.Require().Len(forProduct, 1)
	suite.Equal(created[1].Id, forProduct[0].Id)
}

func (suite *ServerTestSuite) TestCreateCustomer_IsIdempotent() {
	rec := suite.do(http.MethodPost, "/customers", `{"name": "Ana"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var first servers.Customer
	suite.decode(rec, &first)

	rec = suite.do(http.MethodPost, "/customers", `{"name": "Ana"}`)
	suite.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var second servers.Customer
	suite.decode(rec, &second)

	suite.Equal(first, second)

	rec = suite.do(http.MethodGet, "/customers/Ana/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestCreateCustomer_BlankName() {
	rec := suite.do(http.MethodPost, "/customers", `{"name": ""}`)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestNotFound() {
	for _, target := range []string{"/orders/999", "/orders/999/status", "/customers/Nadie/orders", "/products/42/orders"} {
		rec := suite.do(http.MethodGet, target, "")
		suite.Equal(http.StatusNotFound, rec.Code, target)

		var apiErr servers.Error
		suite.decode(rec, &apiErr)
		suite.Equal(http.StatusNotFound, apiErr.Code)
	}

	rec := suite.do(http.MethodPut, "/orders/999/status", `{"status": "completado"}`)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestInvalidPathParameter() {
	rec := suite.do(http.MethodGet, "/orders/abc", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestGetOrderStatus_ListsReachableStatuses() {
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/orders", `[{"product_id": 3, "quantity": 1}]`).Code)

	rec := suite.do(http.MethodGet, "/orders/1/status", "")
	suite.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.JSONEq(`{"id": 1, "status": "pendiente", "next": ["en proceso", "completado"]}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestCatalogAndWelcome() {
	rec := suite.do(http.MethodGet, "/products", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var products []servers.Product
	suite.decode(rec, &products)
	suite.Require().Len(products, 5)
	suite.Equal(servers.Product{Id: 1, Name: "Leche"}, products[0])
	suite.Equal(servers.Product{Id: 5, Name: "Gaseosa"}, products[4])

	rec = suite.do(http.MethodGet, "/", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Bienvenido")

	rec = suite.do(http.MethodGet, "/health", "")
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *ServerTestSuite) TestTrailingSlashIsAccepted() {
	rec := suite.do(http.MethodGet, "/orders/", "")
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodPost, "/customers/", `{"name": "Luis"}`)
	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *ServerTestSuite) TestResponsesCarryRequestID() {
	rec := suite.do(http.MethodGet, "/health", "")
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

type ServerTestSuite struct {
	apiSuite
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

type ForwardOnlyServerTestSuite struct {
	apiSuite
}

func (suite *ForwardOnlyServerTestSuite) TestSkippingAStageIsAConflict() {
	suite.Require().Equal(http.StatusCreated, suite.do(http.MethodPost, "/orders", `[{"product_id": 1, "quantity": 1}]`).Code)

	rec := suite.do(http.MethodPut, "/orders/1/status", `{"status": "completado"}`)
	suite.Require().Equal(http.StatusConflict, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodGet, "/orders/1/status", "")
	suite.JSONEq(`{"id": 1, "status": "pendiente", "next": ["en proceso"]}`, rec.Body.String())

	rec = suite.do(http.MethodPut, "/orders/1/status", `{"status": "en proceso"}`)
	suite.Equal(http.StatusAccepted, rec.Code)
}

func (suite *ForwardOnlyServerTestSuite) TestCreateOrders_NonInitialStatusIsAConflict() {
	rec := suite.do(http.MethodPost, "/orders", `[{"product_id": 1, "quantity": 1, "status": "completado"}]`)
	suite.Equal(http.StatusConflict, rec.Code, rec.Body.String())
}

func TestForwardOnlyServerTestSuite(t *testing.T) {
	s := new(ForwardOnlyServerTestSuite)
	s.policy = "forward-only"
	suite.Run(t, s)
}
