package order

import (
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose legal transitions depend on the order type:
//
//	DineIn / Takeaway:  Placed ──> Ready ──> Delivered
//	Delivery:           Placed ──> Ready ──> EnRoute ──> Arrived ──> Delivered
//	Any (pre-acceptance only): Placed ──> Cancelled
//
// Transitions never skip states. Delivered and Cancelled are terminal.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status: the order is waiting for the kitchen.
	Placed

	// Ready means the kitchen has finished preparation. Counter orders are
	// settled here; delivery orders become claimable by couriers.
	Ready

	// EnRoute means a courier has claimed the delivery and is carrying it.
	EnRoute

	// Arrived means the courier reached the destination; the delivery is
	// awaiting settlement.
	Arrived

	// Delivered is the terminal success state, reached through settlement.
	Delivered

	// Cancelled is the terminal state of a pre-acceptance cancellation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "Placed",
		Ready:     "Ready",
		EnRoute:   "EnRoute",
		Arrived:   "Arrived",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// routeFor returns the happy-path state sequence for the given order type.
// Cancelled is intentionally absent: it is reached only through cancellation,
// never through advancement.
func routeFor(t Type) []Status {
	if t == Delivery {
		return []Status{Placed, Ready, EnRoute, Arrived, Delivered}
	}
	return []Status{Placed, Ready, Delivered}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// rankOn returns the position of the status on the route for the given order
// type, or false when the status is not reachable for that type.
func (s Status) rankOn(t Type) (int, bool) {
	for i, step := range routeFor(t) {
		if step == s {
			return i, true
		}
	}
	return 0, false
}

// Advance validates a single-step transition from s to target for the given
// order type and returns the target on success.
//
// The distinction between failure kinds matters to retrying clients:
//   - a target behind the current state fails with ErrStaleTransition
//     (the retry arrived after the order moved on);
//   - a target that skips ahead, is off the route for the type, or leaves a
//     terminal state fails with ErrInvalidTransition.
//
// A target equal to the current state is handled by the caller as an
// idempotent no-op and never reaches this method.
func (s Status) Advance(target Status, t Type) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}

	current, ok := s.rankOn(t)
	if !ok {
		return 0, fmt.Errorf("%w: %s orders cannot be in state %s", ErrInvalidTransition, t, s)
	}

	next, ok := target.rankOn(t)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not reachable for %s orders", ErrInvalidTransition, target, t)
	}

	if next < current {
		return 0, fmt.Errorf("%w: order is already %s, requested %s", ErrStaleTransition, s, target)
	}
	if next != current+1 {
		return 0, fmt.Errorf("%w: %s does not follow %s for %s orders", ErrInvalidTransition, target, s, t)
	}

	return target, nil
}

// Cancel validates the transition to Cancelled. Cancellation is legal only
// while the order is still Placed; afterwards the order must reach a terminal
// state through the normal pipeline.
func (s Status) Cancel() (Status, error) {
	if s != Placed {
		return 0, fmt.Errorf("%w: order is %s", ErrAlreadyProcessing, s)
	}
	return Cancelled, nil
}

// ValidateCourierAssignment validates the consistency between order status and
// courier assignment. Counter orders never carry a courier. On delivery orders
// every state from EnRoute onwards requires an assigned courier, and no
// earlier state may have one.
func (s Status) ValidateCourierAssignment(t Type, assigned bool) error {
	if !t.RequiresCourier() {
		if assigned {
			return errs.NewValueIsInvalidErrorWithCause("courier",
				fmt.Errorf("%s orders cannot have a courier", t))
		}
		return nil
	}

	required := s == EnRoute || s == Arrived || s == Delivered
	if assigned && !required {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}
	if !assigned && required {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}
	return nil
}
