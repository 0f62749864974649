package order

import "errors"

// Business failure kinds returned by fulfillment operations. These represent
// races and user errors that occur routinely (two couriers claiming the same
// order, a retry arriving after the state moved on) and are meant to be
// classified with errors.Is and handled gracefully by the caller, never
// treated as unexpected faults.
var (
	// ErrInvalidTransition is returned when the requested target is not the
	// single legal successor of the order's current state for its type.
	ErrInvalidTransition = errors.New("invalid order state transition")

	// ErrStaleTransition is returned when a retried transition targets a state
	// the order has already moved past.
	ErrStaleTransition = errors.New("transition target is behind the current state")

	// ErrForbidden is returned when the acting role is not allowed to request
	// the transition, regardless of state legality.
	ErrForbidden = errors.New("actor role may not perform this operation")

	// ErrAlreadyClaimed is returned when a courier tries to claim an order that
	// is no longer available. Expected under racing; clients drop the order
	// from their available list without alarming the courier.
	ErrAlreadyClaimed = errors.New("order is already claimed or no longer ready")

	// ErrNotOwner is returned when a courier operates on a delivery assigned to
	// another courier.
	ErrNotOwner = errors.New("order is assigned to another courier")

	// ErrNotSettleable is returned when settlement is attempted outside the
	// pre-terminal settleable state for the order's type.
	ErrNotSettleable = errors.New("order is not in a settleable state")

	// ErrInsufficientPayment is returned when the cash tendered does not cover
	// the total due. Settlement is blocked; no partial settlement exists.
	ErrInsufficientPayment = errors.New("amount tendered is less than the total due")

	// ErrAlreadyProcessing is returned when cancellation is requested after the
	// order has left the cancellable window (state is no longer Placed).
	ErrAlreadyProcessing = errors.New("order has already been accepted for processing")

	// ErrDeletionFailed is returned when removing the order row or its line
	// items fails during cancellation.
	ErrDeletionFailed = errors.New("order deletion failed")
)
