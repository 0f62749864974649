package order

import (
	"errors"
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

// PaymentMethod identifies how an order was paid.
type PaymentMethod int

const (
	// UnknownMethod represents an invalid or undefined payment method.
	UnknownMethod PaymentMethod = iota

	// Cash payments require an amount tendered and produce change due.
	Cash

	// Card payments are charged exactly; no change is involved.
	Card

	// Transfer payments are bank transfers confirmed by the cashier.
	Transfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownMethod: "Unknown",
		Cash:          "Cash",
		Card:          "Card",
		Transfer:      "Transfer",
	}
}

// Validate checks if the PaymentMethod is one of Cash, Card, Transfer.
func (m PaymentMethod) Validate() error {
	switch m {
	case Cash, Card, Transfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through the NewPayment constructor.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records the financial closing of an order: method, tip, the total
// charged, change due (cash only) and whether the customer asked for a
// printed receipt. A Payment exists on an order only once it is settled.
type Payment struct { //nolint:recvcheck //using for validation
	method           PaymentMethod
	tip              kernel.Money
	total            kernel.Money
	change           kernel.Money
	receiptRequested bool
	guard            guard.ConstructorGuard
}

// NewPayment creates a validated Payment. Tip, total and change must be
// non-negative; change must be zero for non-cash methods.
func NewPayment(
	method PaymentMethod,
	tip kernel.Money,
	total kernel.Money,
	change kernel.Money,
	receiptRequested bool,
) (Payment, error) {
	p := Payment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setMethod(method),
		tip.MustBeNonNegative("tip"),
		total.MustBeNonNegative("total"),
		change.MustBeNonNegative("change"),
	); err != nil {
		return Payment{}, err
	}

	if method != Cash && change != 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("change",
			fmt.Errorf("change is only produced by cash payments, got %s", method))
	}

	p.tip = tip
	p.total = total
	p.change = change
	p.receiptRequested = receiptRequested

	return p, nil
}

// Validate ensures the Payment was created through NewPayment.
func (p Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// Method returns the payment method.
func (p Payment) Method() PaymentMethod {
	return p.method
}

// Tip returns the tip amount.
func (p Payment) Tip() kernel.Money {
	return p.tip
}

// Total returns the total charged, including delivery fee and tip.
func (p Payment) Total() kernel.Money {
	return p.total
}

// Change returns the change due. Always zero for non-cash payments.
func (p Payment) Change() kernel.Money {
	return p.change
}

// ReceiptRequested reports whether the customer asked for a receipt.
func (p Payment) ReceiptRequested() bool {
	return p.receiptRequested
}

func (p *Payment) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
