package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler handles explicit state advancement requests:
// the kitchen marking an order Ready and a courier reporting Arrived.
//
// EnRoute is reachable only through claiming and Delivered only through
// settlement; requesting either here fails with order.ErrForbidden before the
// order is even loaded.
//
// A target equal to the order's current state is an idempotent no-op: the
// command succeeds without writing anything, so retried requests are
// harmless. The transition itself is persisted conditionally on the state it
// was computed from; losing that race surfaces as order.ErrStaleTransition.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	log        *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, log *slog.Logger) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the advancement command and returns the aggregate in its
// post-transition state. On success the transition record is appended to the
// audit trail after the commit, best-effort: a failed append is logged and
// the operation still succeeds.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	switch cmd.Target() {
	case order.EnRoute:
		return nil, fmt.Errorf("%w: EnRoute is reached by claiming", order.ErrForbidden)
	case order.Delivered:
		return nil, fmt.Errorf("%w: Delivered is reached by settlement", order.ErrForbidden)
	}

	actor, err := order.NewActor(cmd.ActorID(), cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	changed, err := aggregate.Advance(cmd.Target(), actor, cmd.Note())
	if err != nil {
		return nil, err
	}
	if !changed {
		return aggregate, nil
	}

	if err = uow.OrderRepository().UpdateTransition(ctx, aggregate, from); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.appendHistory(ctx, uow, aggregate)
	return aggregate, nil
}

// appendHistory writes the pending transition records after the commit.
// Runs on the main connection since the transaction is already closed.
func (h *AdvanceOrderCommandHandler) appendHistory(ctx context.Context, uow OrderUoW, aggregate *order.Order) {
	records := aggregate.PendingHistory()
	if err := uow.OrderRepository().AppendHistory(ctx, aggregate.ID(), records); err != nil {
		h.log.Warn("failed to append order history",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}
}
