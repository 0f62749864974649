package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// GetCourierOrdersQueryHandler reads the courier screen from the database:
// unclaimed Ready deliveries and the polling courier's claimed ones.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier view queries.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the courier view query. Both lists come back oldest first.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) (GetCourierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierOrdersQueryResponse{}, err
	}

	available, err := h.loadDeliveries(ctx, `
		SELECT
			id, status, customer_name, customer_phone, customer_address,
			delivery_distance_km, delivery_fee, created_at
		FROM orders
		WHERE order_type = ? AND status = ? AND courier_id IS NULL
		ORDER BY created_at, id
	`, int(order.Delivery), int(order.Ready))
	if err != nil {
		return GetCourierOrdersQueryResponse{}, err
	}

	mine, err := h.loadDeliveries(ctx, `
		SELECT
			id, status, customer_name, customer_phone, customer_address,
			delivery_distance_km, delivery_fee, created_at
		FROM orders
		WHERE order_type = ? AND courier_id = ? AND status IN ?
		ORDER BY created_at, id
	`, int(order.Delivery), query.CourierID().Bytes(),
		[]int{int(order.EnRoute), int(order.Arrived)})
	if err != nil {
		return GetCourierOrdersQueryResponse{}, err
	}

	return GetCourierOrdersQueryResponse{
		Available: available,
		Mine:      mine,
	}, nil
}

func (h GetCourierOrdersQueryHandler) loadDeliveries(
	ctx context.Context,
	sql string,
	args ...any,
) ([]CourierOrderView, error) {
	views := make([]CourierOrderView, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			status     int
			name       string
			phone      string
			address    string
			distanceKm *float64
			fee        *int64
			createdAt  time.Time
		)
		if err = rows.Scan(&id, &status, &name, &phone, &address, &distanceKm, &fee, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		view := CourierOrderView{
			ID:              orderID,
			Status:          order.Status(status),
			CustomerName:    name,
			CustomerPhone:   phone,
			CustomerAddress: address,
			CreatedAt:       createdAt,
		}
		if distanceKm != nil {
			view.DistanceKm = *distanceKm
		}
		if fee != nil {
			view.DeliveryFee = kernel.MoneyFromUnits(*fee)
		}

		views = append(views, view)
	}

	return views, rows.Err()
}
