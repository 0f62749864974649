package commands

import (
	"context"
	"log/slog"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// MarkArrivedCommandHandler handles a courier's arrival report. Arrival is an
// ordinary advancement to Arrived performed by the claiming courier; the
// ownership check in the domain rejects any other courier with
// order.ErrNotOwner. Delegates to the advancement handler for the
// load-advance-persist sequence.
type MarkArrivedCommandHandler struct {
	advance AdvanceOrderCommandHandler
}

// NewMarkArrivedCommandHandler creates a handler for courier arrival reports.
func NewMarkArrivedCommandHandler(uowFactory OrderUoWFactory, log *slog.Logger) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{
		advance: NewAdvanceOrderCommandHandler(uowFactory, log),
	}
}

// Handle processes the arrival report and returns the aggregate in its
// post-transition state. Repeated reports from the claiming courier are
// idempotent no-ops.
func (h *MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	advanceCmd, err := NewAdvanceOrderCommand(
		cmd.OrderID(), cmd.CourierID(), order.RoleCourier, order.Arrived, cmd.Note())
	if err != nil {
		return nil, err
	}

	return h.advance.Handle(ctx, advanceCmd)
}
