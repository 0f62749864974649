package order

import (
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// Type represents the fulfillment channel of an order. It is fixed at creation
// and never mutated; it determines which states the order can reach and which
// customer fields are required.
type Type int

const (
	// UnknownType represents an invalid or undefined order type.
	UnknownType Type = iota

	// DineIn orders are consumed on premises. They are settled at the counter
	// once the kitchen marks them Ready; no courier is involved.
	DineIn

	// Takeaway orders are picked up by the customer. Same lifecycle as DineIn.
	Takeaway

	// Delivery orders are carried to the customer by a courier and pass
	// through the EnRoute and Arrived states before settlement.
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		DineIn:      "DineIn",
		Takeaway:    "Takeaway",
		Delivery:    "Delivery",
	}
}

// Validate checks if the Type value is one of DineIn, Takeaway, Delivery.
func (t Type) Validate() error {
	switch t {
	case DineIn, Takeaway, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// RequiresCourier reports whether orders of this type are carried by a courier.
func (t Type) RequiresCourier() bool {
	return t == Delivery
}

// SettleableStatus returns the pre-terminal state in which orders of this type
// are settled: Ready for counter orders, Arrived for deliveries.
func (t Type) SettleableStatus() Status {
	if t == Delivery {
		return Arrived
	}
	return Ready
}
