package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// ClaimOrderCommandHandler handles courier claims on ready deliveries.
//
// The aggregate is loaded and claimed in the domain first, then the claim is
// persisted as a single conditional update that matches only a Ready,
// unclaimed order. When several couriers race for the same order the database
// serializes the updates and exactly one matches; the losers receive
// order.ErrAlreadyClaimed and drop the order from their list. There is no
// lost update and no window where two couriers both believe they won.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	log        *slog.Logger
}

// NewClaimOrderCommandHandler creates a handler for courier claims.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory, log *slog.Logger) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Handle processes the claim command and returns the claimed aggregate. A
// claim that passes the domain check on a stale read but matches no row lost
// the race and reports order.ErrAlreadyClaimed. The history record is
// appended after the claim, best-effort.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Claim(cmd.CourierID()); err != nil {
		return nil, err
	}

	claimed, err := repo.Claim(ctx, cmd.OrderID(), cmd.CourierID())
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("%w: order %s", order.ErrAlreadyClaimed, cmd.OrderID())
	}

	if err = repo.AppendHistory(ctx, aggregate.ID(), aggregate.PendingHistory()); err != nil {
		h.log.Warn("failed to append order history",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}

	return aggregate, nil
}
