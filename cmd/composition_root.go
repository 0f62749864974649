package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "github.com/Didier2101/plato-facil-sub001/internal/adapters/in/http"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/geo"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres/catalogrepo"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/receipt"
	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/commands"
	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/services"
	"github.com/Didier2101/plato-facil-sub001/internal/jobs"
)

// CompositionRoot wires adapters, domain services and use case handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory

	pricing  services.PricingEngine
	catalog  *catalogrepo.GormCatalogRepository
	routing  *geo.Client
	receipts *receipt.TextRenderer

	courierTerminalID kernel.UUID
	pollInterval      time.Duration
}

// NewCompositionRoot builds the application graph from configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tariff, err := services.NewTariff(
		kernel.MoneyFromUnits(config.TariffBaseFee),
		config.TariffBaseDistanceKm,
		kernel.MoneyFromUnits(config.TariffExcessPerKm),
		config.TariffCoverageRadiusKm,
	)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build tariff: %w", err)
	}

	pricing, err := services.NewPricingEngine(tariff)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build pricing engine: %w", err)
	}

	routing, err := geo.NewClient(config.RoutingServiceURL)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build routing client: %w", err)
	}

	receipts, err := receipt.NewTextRenderer(config.ReceiptSpoolDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("build receipt renderer: %w", err)
	}

	courierTerminalID, err := kernel.UUIDFromString(config.CourierTerminalID)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse courier terminal id: %w", err)
	}

	return CompositionRoot{
		gormDB:            gormDB,
		logger:            logger,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		pricing:           pricing,
		catalog:           catalogrepo.NewGormCatalogRepository(gormDB),
		routing:           routing,
		receipts:          receipts,
		courierTerminalID: courierTerminalID,
		pollInterval:      time.Duration(config.PollIntervalSeconds) * time.Second,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.routing, c.pricing)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateMarkArrivedCommandHandler() commands.MarkArrivedCommandHandler {
	return commands.NewMarkArrivedCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	return commands.NewSettleOrderCommandHandler(c.orderUoWFactory(), c.pricing, c.receipts, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetKitchenOrdersQueryHandler() queries.GetKitchenOrdersQueryHandler {
	return queries.NewGetKitchenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCashierOrdersQueryHandler() queries.GetCashierOrdersQueryHandler {
	return queries.NewGetCashierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

// CreateJobManager wires the three board pollers to their query handlers.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetKitchenOrdersQueryHandler(),
		c.CreateGetCashierOrdersQueryHandler(),
		c.CreateGetCourierOrdersQueryHandler(),
		jobs.NewLogBoardSink(c.logger),
		c.courierTerminalID,
		c.pollInterval,
		c.logger,
	)
}

// CreateHTTPServer wires the HTTP adapter to the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateMarkArrivedCommandHandler(),
		c.CreateSettleOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetKitchenOrdersQueryHandler(),
		c.CreateGetCashierOrdersQueryHandler(),
		c.CreateGetCourierOrdersQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
