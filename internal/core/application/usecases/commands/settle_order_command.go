package commands

import (
	"errors"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/services"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand represents a cashier's request to settle an order:
// charge the customer, record the payment and close the order as Delivered.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	cashierID kernel.UUID

	method           order.PaymentMethod
	tipMode          services.TipMode
	tipPercent       int
	tipAmount        kernel.Money
	amountTendered   kernel.Money
	receiptRequested bool

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle an order. Validates the
// identifiers and the payment method; tip bounds and cash sufficiency are
// checked by the pricing engine when the handler computes the amounts.
func NewSettleOrderCommand(
	orderID kernel.UUID,
	cashierID kernel.UUID,
	method order.PaymentMethod,
	tipMode services.TipMode,
	tipPercent int,
	tipAmount kernel.Money,
	amountTendered kernel.Money,
	receiptRequested bool,
) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		tipMode:          tipMode,
		tipPercent:       tipPercent,
		tipAmount:        tipAmount,
		amountTendered:   amountTendered,
		receiptRequested: receiptRequested,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCashierID(cashierID),
		cmd.setMethod(method),
		amountTendered.MustBeNonNegative("amount tendered"),
	); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to settle.
func (c SettleOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CashierID returns the identifier of the settling cashier.
func (c SettleOrderCommand) CashierID() kernel.UUID {
	return c.cashierID
}

// Method returns the payment method.
func (c SettleOrderCommand) Method() order.PaymentMethod {
	return c.method
}

// TipMode returns how the tip amount is derived.
func (c SettleOrderCommand) TipMode() services.TipMode {
	return c.tipMode
}

// TipPercent returns the tip percentage for TipPercent mode.
func (c SettleOrderCommand) TipPercent() int {
	return c.tipPercent
}

// TipAmount returns the explicit tip for TipManual mode.
func (c SettleOrderCommand) TipAmount() kernel.Money {
	return c.tipAmount
}

// AmountTendered returns the cash handed over. Ignored for non-cash methods.
func (c SettleOrderCommand) AmountTendered() kernel.Money {
	return c.amountTendered
}

// ReceiptRequested reports whether the customer asked for a receipt.
func (c SettleOrderCommand) ReceiptRequested() bool {
	return c.receiptRequested
}

func (c *SettleOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SettleOrderCommand) setCashierID(cashierID kernel.UUID) error {
	if err := cashierID.Validate(); err != nil {
		return err
	}
	c.cashierID = cashierID
	return nil
}

func (c *SettleOrderCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
