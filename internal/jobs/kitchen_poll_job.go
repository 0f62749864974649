package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
)

// KitchenPollJob refreshes the kitchen board on a fixed interval. Polling is
// the delivery mechanism for all role views; clients tolerate up to one
// interval of staleness and correctness never depends on freshness.
type KitchenPollJob struct {
	handler  queries.GetKitchenOrdersQueryHandler
	sink     OrderBoardSink
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenPollJob creates a job that refreshes the kitchen board every
// interval.
func NewKitchenPollJob(
	handler queries.GetKitchenOrdersQueryHandler,
	sink OrderBoardSink,
	interval time.Duration,
	logger *slog.Logger,
) *KitchenPollJob {
	return &KitchenPollJob{
		handler:  handler,
		sink:     sink,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "kitchen_poll_job"),
	}
}

// Start begins the kitchen board refresh schedule.
func (j *KitchenPollJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetKitchenOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "kitchen poll failed", "error", err)
			return
		}

		j.sink.PublishKitchen(ctx, orders)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "kitchen poll job started",
		slog.Duration("interval", j.interval))
	return nil
}

// Stop stops the kitchen board refresh schedule.
func (j *KitchenPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "kitchen poll job stopped")
}
