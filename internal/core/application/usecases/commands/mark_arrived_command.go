package commands

import (
	"errors"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var ErrMarkArrivedCommandIsNotConstructed = errors.New(
	"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
)

// MarkArrivedCommand represents a courier reporting arrival at the delivery
// destination. Only the courier who claimed the delivery may report it.
type MarkArrivedCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates a command to mark a delivery as arrived.
func NewMarkArrivedCommand(orderID, courierID kernel.UUID, note string) (MarkArrivedCommand, error) {
	cmd := MarkArrivedCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return MarkArrivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// OrderID returns the identifier of the delivery.
func (c MarkArrivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the reporting courier.
func (c MarkArrivedCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Note returns the free-text note to record with the transition.
func (c MarkArrivedCommand) Note() string {
	return c.note
}

func (c *MarkArrivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkArrivedCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
