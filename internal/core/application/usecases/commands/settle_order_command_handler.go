package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/services"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"
)

// SettleOrderCommandHandler handles order settlement: computing tip, total
// and change, recording the payment and closing the order as Delivered.
//
// The payment row and the Delivered transition commit in one transaction;
// there is no state where the order is Delivered without its payment or the
// payment exists on an open order. Receipt rendering happens after the
// commit, fire-and-forget: settlement never waits for the printer.
type SettleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
	receipts   ports.ReceiptRenderer
	log        *slog.Logger
}

// NewSettleOrderCommandHandler creates a handler for order settlement.
func NewSettleOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingEngine,
	receipts ports.ReceiptRenderer,
	log *slog.Logger,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		receipts:   receipts,
		log:        log,
	}
}

// Handle processes the settlement command and returns the settled aggregate.
//
// The total charged is the subtotal plus the delivery fee on deliveries plus
// the tip. Insufficient cash fails with order.ErrInsufficientPayment before
// anything is written; there is no partial settlement.
func (h *SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor, err := order.NewActor(cmd.CashierID(), order.RoleCashier)
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

	payment, err := h.buildPayment(aggregate, cmd)
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	if err = aggregate.Settle(payment, actor); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().SavePayment(ctx, aggregate.ID(), payment); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().UpdateTransition(ctx, aggregate, from); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.appendHistory(ctx, uow, aggregate)

	if payment.ReceiptRequested() {
		go h.renderReceipt(aggregate)
	}

	return aggregate, nil
}

func (h *SettleOrderCommandHandler) buildPayment(
	aggregate *order.Order,
	cmd SettleOrderCommand,
) (order.Payment, error) {
	tip, err := h.pricing.Tip(aggregate.Subtotal(), cmd.TipMode(), cmd.TipPercent(), cmd.TipAmount())
	if err != nil {
		return order.Payment{}, err
	}

	total := aggregate.TotalDue().Add(tip)

	change, err := h.pricing.Change(cmd.Method(), total, cmd.AmountTendered())
	if err != nil {
		return order.Payment{}, err
	}

	return order.NewPayment(cmd.Method(), tip, total, change, cmd.ReceiptRequested())
}

func (h *SettleOrderCommandHandler) appendHistory(ctx context.Context, uow OrderUoW, aggregate *order.Order) {
	records := aggregate.PendingHistory()
	if err := uow.OrderRepository().AppendHistory(ctx, aggregate.ID(), records); err != nil {
		h.log.Warn("failed to append order history",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}
}

// renderReceipt runs detached from the request with its own timeout so a slow
// renderer cannot stall or fail the settlement that triggered it.
func (h *SettleOrderCommandHandler) renderReceipt(aggregate *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.receipts.Render(ctx, aggregate); err != nil {
		h.log.Warn("failed to render receipt",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}
}
