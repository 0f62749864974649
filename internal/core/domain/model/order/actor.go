package order

import (
	"errors"
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

// Role identifies which of the three independent actors is operating on an
// order. The identity/role resolver collaborator authenticates the caller and
// supplies the role before any fulfillment operation runs.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleKitchen prepares orders: it may mark Placed orders Ready and cancel
	// orders that have not been accepted yet.
	RoleKitchen

	// RoleCashier settles orders financially through settlement, producing the
	// terminal Delivered transition.
	RoleCashier

	// RoleCourier claims ready deliveries and reports arrival.
	RoleCourier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		RoleKitchen: "Kitchen",
		RoleCashier: "Cashier",
		RoleCourier: "Courier",
	}
}

// Validate checks if the Role value is one of Kitchen, Cashier, Courier.
func (r Role) Validate() error {
	switch r {
	case RoleKitchen, RoleCashier, RoleCourier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated identity performing an operation, as supplied by
// the external identity/role resolver. Actor is an immutable value object.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor with a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setID(id), actor.setRole(role)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CanRequest checks the role precondition for a transition to target. It is
// evaluated before state legality, so a disallowed role always fails with
// ErrForbidden regardless of the order's current state:
//
//	Kitchen: Ready, Cancelled
//	Courier: EnRoute, Arrived
//	Cashier: Delivered
func (a Actor) CanRequest(target Status) error {
	allowed := map[Role][]Status{
		RoleKitchen: {Ready, Cancelled},
		RoleCourier: {EnRoute, Arrived},
		RoleCashier: {Delivered},
	}

	for _, s := range allowed[a.role] {
		if s == target {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not request %s", ErrForbidden, a.role, target)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
