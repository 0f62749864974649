package jobs

import (
	"context"
	"log/slog"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
)

// OrderBoardSink receives the role views produced by the polling jobs.
// Implementations push them to whatever displays the boards: a websocket
// bridge, a terminal dashboard, or just the log.
type OrderBoardSink interface {
	PublishKitchen(ctx context.Context, orders []queries.GetKitchenOrdersQueryResponse)
	PublishCashier(ctx context.Context, orders []queries.GetCashierOrdersQueryResponse)
	PublishCourier(ctx context.Context, view queries.GetCourierOrdersQueryResponse)
}

// LogBoardSink publishes board snapshots to the structured log. Serves as the
// default sink for deployments where clients poll the HTTP views directly and
// the boards are only observed operationally.
type LogBoardSink struct {
	logger *slog.Logger
}

// NewLogBoardSink creates a sink that logs board snapshot summaries.
func NewLogBoardSink(logger *slog.Logger) *LogBoardSink {
	return &LogBoardSink{logger: logger.With("component", "order_board")}
}

// PublishKitchen logs the kitchen queue size.
func (s *LogBoardSink) PublishKitchen(ctx context.Context, orders []queries.GetKitchenOrdersQueryResponse) {
	s.logger.InfoContext(ctx, "kitchen board refreshed", slog.Int("orders", len(orders)))
}

// PublishCashier logs the settlement queue size.
func (s *LogBoardSink) PublishCashier(ctx context.Context, orders []queries.GetCashierOrdersQueryResponse) {
	s.logger.InfoContext(ctx, "cashier board refreshed", slog.Int("orders", len(orders)))
}

// PublishCourier logs the courier pool sizes.
func (s *LogBoardSink) PublishCourier(ctx context.Context, view queries.GetCourierOrdersQueryResponse) {
	s.logger.InfoContext(ctx, "courier board refreshed",
		slog.Int("available", len(view.Available)),
		slog.Int("mine", len(view.Mine)))
}
