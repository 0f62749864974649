package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
)

// CourierPollJob refreshes the courier board of a station terminal on a fixed
// interval: the claimable pool plus the terminal courier's own deliveries.
// An order claimed by someone else between two refreshes simply disappears
// from the pool on the next one.
type CourierPollJob struct {
	handler   queries.GetCourierOrdersQueryHandler
	sink      OrderBoardSink
	courierID kernel.UUID
	interval  time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCourierPollJob creates a job that refreshes the courier board of the
// given courier every interval.
func NewCourierPollJob(
	handler queries.GetCourierOrdersQueryHandler,
	sink OrderBoardSink,
	courierID kernel.UUID,
	interval time.Duration,
	logger *slog.Logger,
) *CourierPollJob {
	return &CourierPollJob{
		handler:   handler,
		sink:      sink,
		courierID: courierID,
		interval:  interval,
		cron:      cron.New(),
		logger:    logger.With("component", "courier_poll_job"),
	}
}

// Start begins the courier board refresh schedule.
func (j *CourierPollJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()

		query, err := queries.NewGetCourierOrdersQuery(j.courierID)
		if err != nil {
			j.logger.ErrorContext(ctx, "courier poll failed", "error", err)
			return
		}

		view, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "courier poll failed", "error", err)
			return
		}

		j.sink.PublishCourier(ctx, view)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "courier poll job started",
		slog.String("courier_id", j.courierID.String()),
		slog.Duration("interval", j.interval))
	return nil
}

// Stop stops the courier board refresh schedule.
func (j *CourierPollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "courier poll job stopped")
}
