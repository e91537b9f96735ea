package http

import (
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const welcomeText = "Bienvenido... '/orders' para ver todas las ordenes, " +
	"'/orders/{num}' para ver orden en especifico"

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Handler errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	// Command handlers
	createOrdersHandler      commands.CreateOrdersCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createCustomerHandler    commands.CreateCustomerCommandHandler

	// Query handlers
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrderStatusHandler    queries.GetOrderStatusQueryHandler
	getAllProductsHandler    queries.GetAllProductsQueryHandler
	getProductOrdersHandler  queries.GetProductOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrders      commands.CreateOrdersCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	CreateCustomer    commands.CreateCustomerCommandHandler

	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetOrderStatus    queries.GetOrderStatusQueryHandler
	GetAllProducts    queries.GetAllProductsQueryHandler
	GetProductOrders  queries.GetProductOrdersQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrdersHandler:      h.CreateOrders,
		changeOrderStatusHandler: h.ChangeOrderStatus,
		createCustomerHandler:    h.CreateCustomer,
		getAllOrdersHandler:      h.GetAllOrders,
		getOrderHandler:          h.GetOrder,
		getOrderStatusHandler:    h.GetOrderStatus,
		getAllProductsHandler:    h.GetAllProducts,
		getProductOrdersHandler:  h.GetProductOrders,
		getCustomerOrdersHandler: h.GetCustomerOrders,
	}
}

// GetWelcome handles GET /.
func (s *Server) GetWelcome(ctx echo.Context) error {
	return ctx.String(http.StatusOK, welcomeText)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

// ListProducts handles GET /products.
func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListProductOrders handles GET /products/{productId}/orders.
func (s *Server) ListProductOrders(ctx echo.Context, productId int64) error {
	orders, err := s.getProductOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetProductOrdersQuery(productId))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrders handles POST /orders - creates a batch of orders, all or nothing.
func (s *Server) CreateOrders(ctx echo.Context, params servers.CreateOrdersParams) error {
	var body servers.CreateOrdersJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	items := make([]commands.OrderItem, len(body))
	for i, newOrder := range body {
		status := ""
		if newOrder.Status != nil {
			status = *newOrder.Status
		}

		item, err := commands.NewOrderItem(newOrder.ProductId, newOrder.Quantity, status)
		if err != nil {
			return err
		}
		items[i] = item
	}

	customerName := ""
	if params.CustomerName != nil {
		customerName = *params.CustomerName
	}

	cmd, err := commands.NewCreateOrdersCommand(items, customerName)
	if err != nil {
		return err
	}

	orders, err := s.createOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toOrders(orders))
}

// GetOrder handles GET /orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId int64) error {
	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(orderId))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetOrderStatus handles GET /orders/{orderId}/status. It never changes the order.
func (s *Server) GetOrderStatus(ctx echo.Context, orderId int64) error {
	res, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatusQuery(orderId))
	if err != nil {
		return err
	}

	next := make([]string, len(res.Next))
	for i, status := range res.Next {
		next[i] = status.String()
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatus{
		Id:     res.OrderID,
		Status: res.Status.String(),
		Next:   next,
	})
}

// ChangeOrderStatus handles PUT /orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId int64) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd := commands.NewChangeOrderStatusCommand(orderId, body.Status)

	o, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusAccepted, toOrder(o))
}

// CreateCustomer handles POST /customers. An existing customer with the same name
// is returned instead of creating a second one.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name)
	if err != nil {
		return err
	}

	c, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toCustomer(c))
}

// ListCustomerOrders handles GET /customers/{customerName}/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context, customerName string) error {
	query, err := queries.NewGetCustomerOrdersQuery(customerName)
	if err != nil {
		return err
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}
