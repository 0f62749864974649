package order

import (
	"errors"

	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer carries the contact details captured at checkout. Name is always
// required; phone and address are additionally required for delivery orders
// (enforced by the Order aggregate, which knows the order type).
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string
	note    string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a Customer. Name is required; phone, address and note
// are optional at this level.
func NewCustomer(name, phone, address, note string) (Customer, error) {
	c := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setName(name); err != nil {
		return Customer{}, err
	}
	c.phone = phone
	c.address = address
	c.note = note

	return c, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ValidateForDelivery checks the extra requirements of delivery orders:
// a reachable phone number and a destination address.
func (c Customer) ValidateForDelivery() error {
	return errors.Join(
		c.Validate(),
		requireNonEmpty("customer phone", c.phone),
		requireNonEmpty("customer address", c.address),
	)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number. May be empty on counter orders.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address. Empty on counter orders.
func (c Customer) Address() string {
	return c.address
}

// Note returns the free-text note left by the customer.
func (c Customer) Note() string {
	return c.note
}

func (c *Customer) setName(name string) error {
	if err := requireNonEmpty("customer name", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func requireNonEmpty(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
