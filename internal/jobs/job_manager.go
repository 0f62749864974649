package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenPollJob *KitchenPollJob
	cashierPollJob *CashierPollJob
	courierPollJob *CourierPollJob
}

// NewJobManager creates a job manager wiring the three role board pollers to
// their query handlers. courierID identifies the courier terminal this
// instance serves.
func NewJobManager(
	kitchenHandler queries.GetKitchenOrdersQueryHandler,
	cashierHandler queries.GetCashierOrdersQueryHandler,
	courierHandler queries.GetCourierOrdersQueryHandler,
	sink OrderBoardSink,
	courierID kernel.UUID,
	interval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenPollJob: NewKitchenPollJob(kitchenHandler, sink, interval, logger),
		cashierPollJob: NewCashierPollJob(cashierHandler, sink, interval, logger),
		courierPollJob: NewCourierPollJob(courierHandler, sink, courierID, interval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenPollJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen poll job: %w", err)
	}

	if err := jm.cashierPollJob.Start(); err != nil {
		jm.kitchenPollJob.Stop()
		return fmt.Errorf("failed to start cashier poll job: %w", err)
	}

	if err := jm.courierPollJob.Start(); err != nil {
		jm.kitchenPollJob.Stop()
		jm.cashierPollJob.Stop()
		return fmt.Errorf("failed to start courier poll job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.courierPollJob.Stop()
	jm.cashierPollJob.Stop()
	jm.kitchenPollJob.Stop()
}
