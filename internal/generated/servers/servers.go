// Package servers holds the HTTP contract of the service: the OpenAPI document,
// the wire types it describes and the echo glue that binds parameters before
// calling a ServerInterface.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var spec []byte

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Product defines model for Product.
type Product struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Customer defines model for Customer.
type Customer struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Name string `json:"name"`
}

// Order defines model for Order.
type Order struct {
	Id        int64     `json:"id"`
	ProductId int64     `json:"product_id"`
	Product   Product   `json:"product"`
	Customer  *Customer `json:"customer,omitempty"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ProductId int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Status    *string `json:"status,omitempty"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status string `json:"status"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus struct {
	Id     int64    `json:"id"`
	Status string   `json:"status"`
	Next   []string `json:"next"`
}

// CreateOrdersParams defines parameters for CreateOrders.
type CreateOrdersParams struct {
	CustomerName *string `form:"customer_name,omitempty" json:"customer_name,omitempty"`
}

// CreateOrdersJSONRequestBody defines body for CreateOrders for application/json ContentType.
type CreateOrdersJSONRequestBody = []NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChange

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = NewCustomer

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /)
	GetWelcome(ctx echo.Context) error
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (GET /products)
	ListProducts(ctx echo.Context) error
	// (GET /products/{productId}/orders)
	ListProductOrders(ctx echo.Context, productId int64) error
	// (GET /orders)
	ListOrders(ctx echo.Context) error
	// (POST /orders)
	CreateOrders(ctx echo.Context, params CreateOrdersParams) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId int64) error
	// (GET /orders/{orderId}/status)
	GetOrderStatus(ctx echo.Context, orderId int64) error
	// (PUT /orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId int64) error
	// (POST /customers)
	CreateCustomer(ctx echo.Context) error
	// (GET /customers/{customerName}/orders)
	ListCustomerOrders(ctx echo.Context, customerName string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetWelcome(ctx echo.Context) error {
	return w.Handler.GetWelcome(ctx)
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

func (w *ServerInterfaceWrapper) ListProductOrders(ctx echo.Context) error {
	productId, err := bindInt64PathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.ListProductOrders(ctx, productId)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	return w.Handler.ListOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrders(ctx echo.Context) error {
	var params CreateOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "customer_name", ctx.QueryParams(), &params.CustomerName)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customer_name: %s", err))
	}

	return w.Handler.CreateOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindInt64PathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	orderId, err := bindInt64PathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindInt64PathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	var customerName string

	err := runtime.BindStyledParameterWithOptions("simple", "customerName", ctx.Param("customerName"), &customerName,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerName: %s", err))
	}

	return w.Handler.ListCustomerOrders(ctx, customerName)
}

func bindInt64PathParam(ctx echo.Context, name string) (int64, error) {
	var value int64

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return value, nil
}

// EchoRouter is implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/", wrapper.GetWelcome)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/products", wrapper.ListProducts)
	router.GET(baseURL+"/products/:productId/orders", wrapper.ListProductOrders)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrders)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/orders/:orderId/status", wrapper.GetOrderStatus)
	router.PUT(baseURL+"/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.POST(baseURL+"/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/customers/:customerName/orders", wrapper.ListCustomerOrders)
}

// GetSwagger returns the parsed OpenAPI document. Each call returns a fresh copy
// that callers may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}

	return doc, nil
}
