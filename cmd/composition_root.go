package cmd

import (
	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/storage"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *storage.GormUnitOfWorkFactory
	policy     order.TransitionPolicy
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (CompositionRoot, error) {
	policy, err := config.TransitionPolicy()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: storage.NewGormUnitOfWorkFactory(gormDB),
		policy:     policy,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrdersCommandHandler() commands.CreateOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrdersCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateSeedProductsCommandHandler() commands.SeedProductsCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedProductsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductOrdersQueryHandler() queries.GetProductOrdersQueryHandler {
	return queries.NewGetProductOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusSummaryQueryHandler() queries.GetOrderStatusSummaryQueryHandler {
	return queries.NewGetOrderStatusSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the echo router.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrders:      c.CreateCreateOrdersCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CreateCustomer:    c.CreateCreateCustomerCommandHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrderStatus:    c.CreateGetOrderStatusQueryHandler(),
		GetAllProducts:    c.CreateGetAllProductsQueryHandler(),
		GetProductOrders:  c.CreateGetProductOrdersQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
	})

	return httpin.NewRouter(server, c.logger.Named("http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderStatusSummaryQueryHandler(),
		c.config.StatusReportSchedule,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
