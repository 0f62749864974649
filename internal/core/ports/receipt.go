package ports

import (
	"context"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// ReceiptRenderer produces a customer receipt for a settled order.
//
// Rendering is fire-and-forget: settlement triggers it after the payment
// commits and never waits for or fails on the result. A rendering failure is
// logged and the receipt can be reprinted on demand.
type ReceiptRenderer interface {
	Render(ctx context.Context, aggregate *order.Order) error
}
