package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres"
	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database: transaction boundaries, isolation
// between instances, and the no-transaction mode the cancellation flow uses.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.CustomizationDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.HistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(
		db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE customizations, order_history, payments, line_items, orders").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newCounterOrder() *order.Order {
	customer, err := order.NewCustomer("Carlos", "", "", "")
	suite.Require().NoError(err)

	item, err := order.NewLineItem(
		kernel.NewUUID(), "Bandeja Paisa", kernel.MoneyFromUnits(20000), 1, nil, "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), order.DineIn, customer, []order.LineItem{item}, nil)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotNil(uow1)
	suite.NotNil(uow2)
	suite.NotSame(uow1, uow2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_Fails() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	aggregate := suite.newCounterOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	aggregate := suite.newCounterOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUncommittedChanges_AreInvisibleToOthers() {
	ctx := context.Background()
	aggregate := suite.newCounterOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	// A second unit of work must not see the uncommitted row.
	_, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)

	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_WithoutBegin_WritesDirectly() {
	ctx := context.Background()
	aggregate := suite.newCounterOrder()

	// Repository obtained before Begin operates on the main connection.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettlementWorkflow_PaymentAndTransitionCommitTogether() {
	ctx := context.Background()
	aggregate := suite.newCounterOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, aggregate))

	kitchen, err := order.NewActor(kernel.NewUUID(), order.RoleKitchen)
	suite.Require().NoError(err)
	changed, err := aggregate.Advance(order.Ready, kitchen, "")
	suite.Require().NoError(err)
	suite.Require().True(changed)
	suite.Require().NoError(setup.OrderRepository().UpdateTransition(ctx, aggregate, order.Placed))

	payment, err := order.NewPayment(
		order.Cash,
		kernel.MoneyFromUnits(3000),
		kernel.MoneyFromUnits(23000),
		kernel.MoneyFromUnits(2000),
		false)
	suite.Require().NoError(err)

	cashier, err := order.NewActor(kernel.NewUUID(), order.RoleCashier)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Settle(payment, cashier))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().SavePayment(ctx, aggregate.ID(), payment))
	suite.Require().NoError(uow.OrderRepository().UpdateTransition(ctx, aggregate, order.Ready))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, loaded.Status())
	suite.Require().NotNil(loaded.Payment())
	suite.Equal(kernel.MoneyFromUnits(23000), loaded.Payment().Total())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettlementWorkflow_RollbackLeavesOrderUnsettled() {
	ctx := context.Background()
	aggregate := suite.newCounterOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.OrderRepository().Add(ctx, aggregate))

	kitchen, err := order.NewActor(kernel.NewUUID(), order.RoleKitchen)
	suite.Require().NoError(err)
	_, err = aggregate.Advance(order.Ready, kitchen, "")
	suite.Require().NoError(err)
	suite.Require().NoError(setup.OrderRepository().UpdateTransition(ctx, aggregate, order.Placed))

	payment, err := order.NewPayment(
		order.Card, 0, kernel.MoneyFromUnits(20000), 0, false)
	suite.Require().NoError(err)

	cashier, err := order.NewActor(kernel.NewUUID(), order.RoleCashier)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Settle(payment, cashier))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().SavePayment(ctx, aggregate.ID(), payment))
	suite.Require().NoError(uow.OrderRepository().UpdateTransition(ctx, aggregate, order.Ready))
	suite.Require().NoError(uow.Rollback(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, loaded.Status())
	suite.Nil(loaded.Payment())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
