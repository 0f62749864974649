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

type GetCourierOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCourierOrdersQueryHandler
	repo      *orderrepo.GormOrderRepository
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startOrderDatabase(suite.Require())
	suite.handler = queries.NewGetCourierOrdersQueryHandler(suite.db)
	suite.repo = newTestRepository(suite.db)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) SetupTest() {
	truncateOrderTables(suite.Require(), suite.db)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyLists() {
	query, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Available)
	suite.Empty(result.Mine)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_AvailableHoldsReadyUnclaimedDeliveries() {
	ctx := context.Background()
	r := suite.Require()

	ready := newDeliveryOrderNamed(r, "Ana")
	r.NoError(suite.repo.Add(ctx, ready))
	markOrderReady(r, suite.repo, ready)

	// Still cooking: not claimable yet.
	placed := newDeliveryOrderNamed(r, "Luis")
	r.NoError(suite.repo.Add(ctx, placed))

	// Ready counter orders never reach the courier screen.
	counter := newCounterOrderNamed(r, "Carlos")
	r.NoError(suite.repo.Add(ctx, counter))
	markOrderReady(r, suite.repo, counter)

	query, err := queries.NewGetCourierOrdersQuery(kernel.NewUUID())
	r.NoError(err)
	result, err := suite.handler.Handle(ctx, query)

	r.NoError(err)
	r.Len(result.Available, 1)
	suite.True(result.Available[0].ID.IsEqual(ready.ID()))
	suite.Equal(order.Ready, result.Available[0].Status)
	suite.Equal("Calle 45 #12-34", result.Available[0].CustomerAddress)
	suite.Equal(kernel.MoneyFromUnits(6400), result.Available[0].DeliveryFee)
	suite.InDelta(6, result.Available[0].DistanceKm, 0.000001)
	suite.Empty(result.Mine)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_MineHoldsOwnClaimedDeliveries() {
	ctx := context.Background()
	r := suite.Require()
	me := kernel.NewUUID()

	enRoute := newDeliveryOrderNamed(r, "Ana")
	r.NoError(suite.repo.Add(ctx, enRoute))
	markOrderReady(r, suite.repo, enRoute)
	claimOrder(r, suite.repo, enRoute.ID(), me)

	arrived := newDeliveryOrderNamed(r, "Luis")
	r.NoError(suite.repo.Add(ctx, arrived))
	markOrderReady(r, suite.repo, arrived)
	claimOrder(r, suite.repo, arrived.ID(), me)
	markOrderArrived(r, suite.repo, arrived.ID(), me)

	// Another courier's delivery is invisible to me.
	other := newDeliveryOrderNamed(r, "Marta")
	r.NoError(suite.repo.Add(ctx, other))
	markOrderReady(r, suite.repo, other)
	claimOrder(r, suite.repo, other.ID(), kernel.NewUUID())

	query, err := queries.NewGetCourierOrdersQuery(me)
	r.NoError(err)
	result, err := suite.handler.Handle(ctx, query)

	r.NoError(err)
	suite.Empty(result.Available)
	r.Len(result.Mine, 2)

	suite.True(result.Mine[0].ID.IsEqual(enRoute.ID()))
	suite.Equal(order.EnRoute, result.Mine[0].Status)
	suite.True(result.Mine[1].ID.IsEqual(arrived.ID()))
	suite.Equal(order.Arrived, result.Mine[1].Status)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_ClaimedOrderLeavesAvailableOnNextPoll() {
	ctx := context.Background()
	r := suite.Require()

	aggregate := newDeliveryOrderNamed(r, "Ana")
	r.NoError(suite.repo.Add(ctx, aggregate))
	markOrderReady(r, suite.repo, aggregate)

	me := kernel.NewUUID()
	query, err := queries.NewGetCourierOrdersQuery(me)
	r.NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	r.NoError(err)
	r.Len(result.Available, 1)

	claimOrder(r, suite.repo, aggregate.ID(), kernel.NewUUID())

	result, err = suite.handler.Handle(ctx, query)
	r.NoError(err)
	suite.Empty(result.Available)
	suite.Empty(result.Mine)
}

func (suite *GetCourierOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCourierOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCourierOrdersQuery constructor")
}

func TestGetCourierOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCourierOrdersQueryHandlerTestSuite))
}
