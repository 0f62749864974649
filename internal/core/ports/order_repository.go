package ports

import (
	"context"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Transitions are persisted conditionally on the state they were computed
// from, so concurrent writers lose cleanly instead of overwriting each other.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// line items, delivery info and payment.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateTransition persists the aggregate's status, courier and payment,
	// but only if the stored status still equals from. When another writer
	// moved the order first the update matches no row and the call fails
	// with order.ErrStaleTransition.
	UpdateTransition(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Claim atomically assigns the order to the courier, moving it from
	// Ready to EnRoute, using a single conditional update. Returns false
	// without error when the order was not claimable (already claimed,
	// moved on, or never existed); the caller disambiguates.
	Claim(ctx context.Context, orderID, courierID kernel.UUID) (bool, error)

	// AppendHistory appends transition records to the order's audit trail.
	// History is best-effort: callers invoke this after the transition
	// commits and log failures instead of propagating them.
	AppendHistory(ctx context.Context, orderID kernel.UUID, records []order.TransitionRecord) error

	// SavePayment persists the settlement payment of the order. Called in
	// the same transaction as the Delivered transition so the two commit
	// atomically.
	SavePayment(ctx context.Context, orderID kernel.UUID, payment order.Payment) error

	// Delete removes the order and everything hanging off it: payments,
	// history, customizations, line items and finally the order row. The
	// row is first retired with a conditional write on from, so a delete
	// racing a transition loses with order.ErrAlreadyProcessing instead of
	// tearing down an order that already moved on. Auxiliary rows are
	// removed best-effort; a failure to remove line items or the order row
	// aborts with order.ErrDeletionFailed.
	Delete(ctx context.Context, id kernel.UUID, from order.Status) error
}
