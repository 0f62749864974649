package orderrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Every state transition is written conditionally on the status it was
// computed from, so concurrent writers resolve at the database instead of
// overwriting each other.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	log     *slog.Logger
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, log *slog.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
		log:     log,
	}
}

// Add saves a new order with its line items and customizations.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including line items, customizations and the
// settlement payment if present.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("line_items.position ASC")
		}).
		Preload("Items.Customizations").
		Preload("Payment").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateTransition persists the aggregate's status and courier assignment,
// conditionally on the status the transition was computed from. When the
// stored status no longer matches, another writer moved the order first and
// the call fails with order.ErrStaleTransition.
func (r *GormOrderRepository) UpdateTransition(
	ctx context.Context,
	aggregate *order.Order,
	from order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var courierID any
	if id := aggregate.Courier(); id != nil {
		courierID = id.Bytes()
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), int(from)).
		Updates(map[string]any{
			"status":     int(aggregate.Status()),
			"courier_id": courierID,
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return order.ErrStaleTransition
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Claim atomically assigns the order to the courier with a single conditional
// update: only a Ready, unclaimed order matches. Concurrent claims race on
// the same row and exactly one update finds it; the rest report false.
func (r *GormOrderRepository) Claim(ctx context.Context, orderID, courierID kernel.UUID) (bool, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND courier_id IS NULL", orderID.Bytes(), int(order.Ready)).
		Updates(map[string]any{
			"status":     int(order.EnRoute),
			"courier_id": courierID.Bytes(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// AppendHistory appends transition records to the order's audit trail.
func (r *GormOrderRepository) AppendHistory(
	ctx context.Context,
	orderID kernel.UUID,
	records []order.TransitionRecord,
) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	dtos := historyFromDomain(orderID, records)
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// SavePayment persists the settlement payment of the order.
func (r *GormOrderRepository) SavePayment(
	ctx context.Context,
	orderID kernel.UUID,
	payment order.Payment,
) error {
	if err := errors.Join(orderID.Validate(), payment.Validate()); err != nil {
		return err
	}

	dto := paymentFromDomain(orderID, payment)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Delete removes the order and its dependent rows, auxiliary tables first.
//
// The row is retired up front with a single conditional update on from: it
// moves the order to Cancelled only while the stored status still matches, so
// a delete racing a transition matches no row and fails with
// order.ErrAlreadyProcessing before anything is torn down. A Cancelled row is
// unreachable for every other writer, which makes the teardown safe.
//
// Customizations, history and payments are removed best-effort: a failure is
// logged and deletion continues, leaving at worst orphaned auxiliary rows.
// Failing to remove the line items or the order row aborts with
// order.ErrDeletionFailed. Runs outside a transaction on purpose: a failed
// auxiliary delete must not poison the remaining steps.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID, from order.Status) error {
	if err := errors.Join(id.Validate(), from.Validate()); err != nil {
		return err
	}

	raw := id.Bytes()

	retired := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", raw, int(from)).
		Updates(map[string]any{
			"status":     int(order.Cancelled),
			"updated_at": time.Now().UTC(),
		})
	if retired.Error != nil {
		return retired.Error
	}
	if retired.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", raw).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return order.ErrAlreadyProcessing
	}

	if err := r.db.WithContext(ctx).
		Where("line_item_id IN (?)",
			r.db.Model(&LineItemDTO{}).Select("id").Where("order_id = ?", raw)).
		Delete(&CustomizationDTO{}).Error; err != nil {
		r.log.Warn("failed to delete order customizations",
			slog.String("order_id", id.String()), slog.Any("error", err))
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", raw).Delete(&HistoryDTO{}).Error; err != nil {
		r.log.Warn("failed to delete order history",
			slog.String("order_id", id.String()), slog.Any("error", err))
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", raw).Delete(&PaymentDTO{}).Error; err != nil {
		r.log.Warn("failed to delete order payments",
			slog.String("order_id", id.String()), slog.Any("error", err))
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", raw).Delete(&LineItemDTO{}).Error; err != nil {
		return errors.Join(order.ErrDeletionFailed, err)
	}

	if err := r.db.WithContext(ctx).Where("id = ?", raw).Delete(&OrderDTO{}).Error; err != nil {
		return errors.Join(order.ErrDeletionFailed, err)
	}

	return nil
}
