package queries_test

import (
	"context"
	"testing"

	"github.com/Didier2101/plato-facil-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetCashierOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCashierOrdersQueryHandler
	repo      *orderrepo.GormOrderRepository
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startOrderDatabase(suite.Require())
	suite.handler = queries.NewGetCashierOrdersQueryHandler(suite.db)
	suite.repo = newTestRepository(suite.db)
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) SetupTest() {
	truncateOrderTables(suite.Require(), suite.db)
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetCashierOrdersQuery("", false)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) TestHandle_ReturnsReadyCounterOrders() {
	ctx := context.Background()
	r := suite.Require()

	ready := newCounterOrderNamed(r, "Carlos")
	r.NoError(suite.repo.Add(ctx, ready))
	markOrderReady(r, suite.repo, ready)

	// Still cooking: not settleable yet.
	placed := newCounterOrderNamed(r, "Luis")
	r.NoError(suite.repo.Add(ctx, placed))

	query := queries.NewGetCashierOrdersQuery("", false)
	result, err := suite.handler.Handle(ctx, query)

	r.NoError(err)
	r.Len(result, 1)
	suite.True(result[0].ID.IsEqual(ready.ID()))
	suite.Equal(order.Ready, result[0].Status)
	suite.Equal(kernel.MoneyFromUnits(20000), result[0].Subtotal)
	suite.Equal(kernel.MoneyFromUnits(20000), result[0].TotalDue)
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) TestHandle_ArrivedDeliveriesOnlyWhenRequested() {
	ctx := context.Background()
	r := suite.Require()
	courierID := kernel.NewUUID()

	arrived := newDeliveryOrderNamed(r, "Ana")
	r.NoError(suite.repo.Add(ctx, arrived))
	markOrderReady(r, suite.repo, arrived)
	claimOrder(r, suite.repo, arrived.ID(), courierID)
	markOrderArrived(r, suite.repo, arrived.ID(), courierID)

	result, err := suite.handler.Handle(ctx, queries.NewGetCashierOrdersQuery("", false))
	r.NoError(err)
	suite.Empty(result)

	result, err = suite.handler.Handle(ctx, queries.NewGetCashierOrdersQuery("", true))
	r.NoError(err)
	r.Len(result, 1)
	suite.True(result[0].ID.IsEqual(arrived.ID()))
	suite.Equal(order.Arrived, result[0].Status)
	// Total due on deliveries includes the fee priced at placement.
	suite.Equal(kernel.MoneyFromUnits(24000), result[0].Subtotal)
	suite.Equal(kernel.MoneyFromUnits(6400), result[0].DeliveryFee)
	suite.Equal(kernel.MoneyFromUnits(30400), result[0].TotalDue)
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) TestHandle_NameFilterMatchesCaseInsensitively() {
	ctx := context.Background()
	r := suite.Require()

	carlos := newCounterOrderNamed(r, "Carlos Pérez")
	r.NoError(suite.repo.Add(ctx, carlos))
	markOrderReady(r, suite.repo, carlos)

	marta := newCounterOrderNamed(r, "Marta")
	r.NoError(suite.repo.Add(ctx, marta))
	markOrderReady(r, suite.repo, marta)

	result, err := suite.handler.Handle(ctx, queries.NewGetCashierOrdersQuery("carlos", false))
	r.NoError(err)
	r.Len(result, 1)
	suite.Equal("Carlos Pérez", result[0].CustomerName)

	result, err = suite.handler.Handle(ctx, queries.NewGetCashierOrdersQuery("nadie", false))
	r.NoError(err)
	suite.Empty(result)
}

func (suite *GetCashierOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCashierOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCashierOrdersQuery constructor")
}

func TestGetCashierOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCashierOrdersQueryHandlerTestSuite))
}
