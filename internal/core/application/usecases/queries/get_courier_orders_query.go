package queries

import (
	"errors"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves a courier's screen: deliveries that are
// Ready and unclaimed (available to everyone) plus the deliveries this
// courier has claimed and not yet handed to settlement.
type GetCourierOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for the courier view.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}
	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the polling courier.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// CourierOrderView represents one delivery on the courier screen.
type CourierOrderView struct {
	ID              kernel.UUID
	Status          order.Status
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	DistanceKm      float64
	DeliveryFee     kernel.Money
	CreatedAt       time.Time
}

// GetCourierOrdersQueryResponse splits the courier screen into the shared
// claimable pool and the courier's own active deliveries. An order another
// courier claims between polls simply disappears from Available on the next
// poll.
type GetCourierOrdersQueryResponse struct {
	Available []CourierOrderView
	Mine      []CourierOrderView
}
