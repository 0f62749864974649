package commands

import (
	"errors"
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrItemsAreRequired       = errors.New("at least one item is required")
)

// ItemSpec describes one requested line item by catalog reference. The
// product's name and price are looked up and snapshotted by the handler.
type ItemSpec struct {
	ProductID      kernel.UUID
	Quantity       int
	Note           string
	Customizations []CustomizationSpec
}

// CustomizationSpec describes a modifier applied to a requested item.
type CustomizationSpec struct {
	Modifier string
	Excluded bool
}

// CreateOrderCommand represents a request to place a new order. Encapsulates
// the fulfillment channel, customer contact details and the requested items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type

	customerName    string
	customerPhone   string
	customerAddress string
	customerNote    string

	items []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates the
// order ID and type, that a customer name is present and that at least one
// item was requested. Per-item and per-type rules (delivery contact details,
// quantities) are enforced by the domain when the handler builds the
// aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	customerName string,
	customerPhone string,
	customerAddress string,
	customerNote string,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderType(orderType),
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customerPhone = customerPhone
	cmd.customerAddress = customerAddress
	cmd.customerNote = customerNote

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderType returns the fulfillment channel of the order.
func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// CustomerNote returns the free-text note left by the customer.
func (c CreateOrderCommand) CustomerNote() string {
	return c.customerNote
}

// Items returns a copy of the requested item specs.
func (c CreateOrderCommand) Items() []ItemSpec {
	out := make([]ItemSpec, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("item product id: %w", err)
		}
	}
	c.items = make([]ItemSpec, len(items))
	copy(c.items, items)
	return nil
}
