package commands

import (
	"errors"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to move an order to a target
// state on behalf of an authenticated actor. Claiming and settlement have
// dedicated commands; their target states are rejected here.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    order.Role
	target  order.Status
	note    string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order. Validates the
// identifiers, the actor role and the target status; role and state legality
// are enforced by the domain.
func NewAdvanceOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	role order.Role,
	target order.Status,
	note string,
) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setRole(role),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting user.
func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the acting user's role.
func (c AdvanceOrderCommand) Role() order.Role {
	return c.role
}

// Target returns the requested target status.
func (c AdvanceOrderCommand) Target() order.Status {
	return c.target
}

// Note returns the free-text note to record with the transition.
func (c AdvanceOrderCommand) Note() string {
	return c.note
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *AdvanceOrderCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *AdvanceOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
