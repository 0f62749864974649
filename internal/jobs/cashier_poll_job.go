package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
)

// CashierPollJob refreshes the cashier settlement board on a fixed interval.
// The board always carries the full unfiltered queue; name filtering is a
// per-request concern of the HTTP view.
type CashierPollJob struct {
	handler  queries.GetCashierOrdersQueryHandler
	sink     OrderBoardSink
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCashierPollJob creates a job that refreshes the cashier board every
// interval.
func NewCashierPollJob(
	handler queries.GetCashierOrdersQueryHandler,
	sink OrderBoardSink,
	interval time.Duration,
	logger *slog.Logger,
) *CashierPollJob {
	return &CashierPollJob{
		handler:  handler,
		sink:     sink,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "cashier_poll_job"),
	}
}

// Start begins the cashier board refresh schedule.
func (j *CashierPollJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetCashierOrdersQuery("", true))
		if err != nil {
			j.logger.ErrorContext(ctx, "cashier poll failed", "error", err)
			return
		}

		j.sink.PublishCashier(ctx, orders)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "cashier poll job started",
		slog.Duration("interval", j.interval))
	return nil
}

// Stop stops the cashier board refresh schedule.
func (j *CashierPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "cashier poll job stopped")
}
