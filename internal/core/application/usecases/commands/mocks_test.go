package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/commands"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateTransition(
	ctx context.Context, aggregate *order.Order, from order.Status,
) error {
	args := m.Called(ctx, aggregate, from)
	return args.Error(0)
}

func (m *MockOrderRepository) Claim(ctx context.Context, orderID, courierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, courierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) AppendHistory(
	ctx context.Context, orderID kernel.UUID, records []order.TransitionRecord,
) error {
	args := m.Called(ctx, orderID, records)
	return args.Error(0)
}

func (m *MockOrderRepository) SavePayment(
	ctx context.Context, orderID kernel.UUID, payment order.Payment,
) error {
	args := m.Called(ctx, orderID, payment)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID, from order.Status) error {
	args := m.Called(ctx, id, from)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCatalogClient struct{ mock.Mock }

func (m *MockCatalogClient) Product(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Product), args.Error(1)
}

type MockRoutingClient struct{ mock.Mock }

func (m *MockRoutingClient) Estimate(ctx context.Context, address string) (ports.RouteEstimate, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(ports.RouteEstimate), args.Error(1)
}

func timeNow() time.Time {
	return time.Now().UTC()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCustomer(t *testing.T, forDelivery bool) order.Customer {
	t.Helper()
	phone, address := "", ""
	if forDelivery {
		phone, address = "3001234567", "Calle 45 #12-34"
	}
	customer, err := order.NewCustomer("Ana", phone, address, "")
	require.NoError(t, err)
	return customer
}

func testItems(t *testing.T, unitPrice int64) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), "Bandeja Paisa", kernel.MoneyFromUnits(unitPrice), 1, nil, "")
	require.NoError(t, err)
	return []order.LineItem{item}
}

// restoreCounterOrder builds a DineIn aggregate in the given status, the way
// the repository would reconstruct it.
func restoreCounterOrder(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	items := testItems(t, 20000)
	aggregate, err := order.RestoreOrder(
		id, order.DineIn, status,
		testCustomer(t, false), items, kernel.MoneyFromUnits(20000),
		nil, nil, nil, timeNow(), timeNow())
	require.NoError(t, err)
	return aggregate
}

// restoreDeliveryOrder builds a Delivery aggregate in the given status with an
// optional claiming courier.
func restoreDeliveryOrder(
	t *testing.T, id kernel.UUID, status order.Status, courierID *kernel.UUID,
) *order.Order {
	t.Helper()
	destination, err := kernel.NewGeoPoint(4.60971, -74.08175)
	require.NoError(t, err)
	delivery, err := order.NewDeliveryInfo(6, 25, kernel.MoneyFromUnits(6400), destination)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		id, order.Delivery, status,
		testCustomer(t, true), testItems(t, 20000), kernel.MoneyFromUnits(20000),
		&delivery, courierID, nil, timeNow(), timeNow())
	require.NoError(t, err)
	return aggregate
}
