package commands

import (
	"context"
	"log/slog"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles pre-acceptance order cancellation.
//
// Cancellation removes the order entirely instead of keeping a Cancelled row:
// the repository deletes payments, history and customizations best-effort,
// then the line items and the order row. Only an order still in Placed can be
// cancelled; anything later fails with order.ErrAlreadyProcessing. The check
// here runs on a read, so the repository re-checks it with a conditional
// write before tearing anything down.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	log        *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, log *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the cancellation command. Runs without a transaction on
// purpose: the deletes are stepwise and a failed auxiliary step must not
// abort the remaining ones.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := order.NewActor(cmd.ActorID(), order.RoleKitchen)
	if err != nil {
		return err
	}

	repo := h.uowFactory.Create().OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := aggregate.Status()
	if err = aggregate.Cancel(actor); err != nil {
		return err
	}

	if err = repo.Delete(ctx, aggregate.ID(), from); err != nil {
		return err
	}

	h.log.Info("order cancelled",
		slog.String("order_id", aggregate.ID().String()),
		slog.String("actor_id", actor.ID().String()))
	return nil
}
