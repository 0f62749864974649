package queries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// GetCashierOrdersQueryHandler reads the settlement queue from the database:
// counter orders in Ready status and optionally deliveries in Arrived status,
// oldest first.
type GetCashierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCashierOrdersQueryHandler creates a handler for cashier view queries.
func NewGetCashierOrdersQueryHandler(db *gorm.DB) GetCashierOrdersQueryHandler {
	return GetCashierOrdersQueryHandler{db: db}
}

// Handle executes the cashier view query. The name filter matches
// case-insensitive substrings of the customer name.
func (h GetCashierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCashierOrdersQuery,
) ([]GetCashierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCashierOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			customer_name,
			subtotal,
			delivery_fee,
			created_at
		FROM orders
		WHERE (order_type != ? AND status = ?)
		   OR (? AND order_type = ? AND status = ?)
		ORDER BY created_at, id
	`,
		int(order.Delivery), int(order.Ready),
		query.IncludeArrivedDeliveries(), int(order.Delivery), int(order.Arrived),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	filter := strings.ToLower(query.NameFilter())

	for rows.Next() {
		var (
			id          uuid.UUID
			orderType   int
			status      int
			name        string
			subtotal    int64
			deliveryFee *int64
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &orderType, &status, &name, &subtotal, &deliveryFee, &createdAt); err != nil {
			return nil, err
		}

		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetCashierOrdersQueryResponse{
			ID:           orderID,
			OrderType:    order.Type(orderType),
			Status:       order.Status(status),
			CustomerName: name,
			Subtotal:     kernel.MoneyFromUnits(subtotal),
			CreatedAt:    createdAt,
		}
		if deliveryFee != nil {
			resp.DeliveryFee = kernel.MoneyFromUnits(*deliveryFee)
		}
		resp.TotalDue = resp.Subtotal.Add(resp.DeliveryFee)

		orders = append(orders, resp)
	}

	return orders, rows.Err()
}
