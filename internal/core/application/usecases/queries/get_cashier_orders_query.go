package queries

import (
	"errors"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var ErrGetCashierOrdersQueryIsNotConstructed = errors.New(
	"GetCashierOrdersQuery must be created via NewGetCashierOrdersQuery constructor",
)

// GetCashierOrdersQuery retrieves orders awaiting settlement: counter orders
// that are Ready and, when includeArrivedDeliveries is set, deliveries whose
// courier has arrived.
//
// nameFilter narrows the result to customers whose name contains the given
// substring, case-insensitively. The filter is applied in memory after the
// fetch; the awaiting-settlement set is small and this keeps matching
// semantics independent of the database collation.
type GetCashierOrdersQuery struct {
	nameFilter               string
	includeArrivedDeliveries bool

	guard guard.ConstructorGuard
}

// NewGetCashierOrdersQuery creates a query for the cashier view.
func NewGetCashierOrdersQuery(nameFilter string, includeArrivedDeliveries bool) GetCashierOrdersQuery {
	return GetCashierOrdersQuery{
		nameFilter:               nameFilter,
		includeArrivedDeliveries: includeArrivedDeliveries,
		guard:                    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCashierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCashierOrdersQueryIsNotConstructed)
}

// NameFilter returns the customer name substring filter. Empty means no filter.
func (q GetCashierOrdersQuery) NameFilter() string {
	return q.nameFilter
}

// IncludeArrivedDeliveries reports whether arrived deliveries are included.
func (q GetCashierOrdersQuery) IncludeArrivedDeliveries() bool {
	return q.includeArrivedDeliveries
}

// GetCashierOrdersQueryResponse represents one order on the cashier screen,
// with the amounts needed to settle it.
type GetCashierOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderType    order.Type
	Status       order.Status
	CustomerName string
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	TotalDue     kernel.Money
	CreatedAt    time.Time
}
