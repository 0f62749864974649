package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// GetKitchenOrdersQueryHandler reads the kitchen work queue from the
// database: orders in Placed or Ready status with their items and
// customizations, oldest first.
type GetKitchenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenOrdersQueryHandler creates a handler for kitchen view queries.
func NewGetKitchenOrdersQueryHandler(db *gorm.DB) GetKitchenOrdersQueryHandler {
	return GetKitchenOrdersQueryHandler{db: db}
}

// Handle executes the kitchen view query. Results are sorted by placement
// time, ties broken by ID, so polling clients see a stable queue.
func (h GetKitchenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenOrdersQuery,
) ([]GetKitchenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, orderIDs, err := h.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.loadItems(ctx, orders, orderIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetKitchenOrdersQueryHandler) loadOrders(
	ctx context.Context,
) ([]GetKitchenOrdersQueryResponse, []uuid.UUID, error) {
	orders := make([]GetKitchenOrdersQueryResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_type,
			status,
			customer_name,
			customer_note,
			created_at
		FROM orders
		WHERE status IN ?
		ORDER BY created_at, id
	`, []int{int(order.Placed), int(order.Ready)}).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			orderType int
			status    int
			name      string
			note      string
			createdAt time.Time
		)
		if err = rows.Scan(&id, &orderType, &status, &name, &note, &createdAt); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		orders = append(orders, GetKitchenOrdersQueryResponse{
			ID:           orderID,
			OrderType:    order.Type(orderType),
			Status:       order.Status(status),
			CustomerName: name,
			CustomerNote: note,
			CreatedAt:    createdAt,
			Items:        make([]KitchenItemView, 0),
		})
		orderIDs = append(orderIDs, id)
	}

	return orders, orderIDs, rows.Err()
}

func (h GetKitchenOrdersQueryHandler) loadItems(
	ctx context.Context,
	orders []GetKitchenOrdersQueryResponse,
	orderIDs []uuid.UUID,
) error {
	orderIndex := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		orderIndex[o.ID.Bytes()] = i
	}

	customizations, err := h.loadCustomizations(ctx, orderIDs)
	if err != nil {
		return err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_name,
			quantity,
			note
		FROM line_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID   uuid.UUID
			orderID  uuid.UUID
			name     string
			quantity int
			note     string
		)
		if err = rows.Scan(&itemID, &orderID, &name, &quantity, &note); err != nil {
			return err
		}

		i, ok := orderIndex[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, KitchenItemView{
			ProductName:    name,
			Quantity:       quantity,
			Note:           note,
			Customizations: customizations[itemID],
		})
	}

	return rows.Err()
}

func (h GetKitchenOrdersQueryHandler) loadCustomizations(
	ctx context.Context,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]KitchenCustomizationView, error) {
	out := make(map[uuid.UUID][]KitchenCustomizationView)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.line_item_id,
			c.modifier,
			c.excluded
		FROM customizations c
		JOIN line_items li ON li.id = c.line_item_id
		WHERE li.order_id IN ?
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			lineItemID uuid.UUID
			modifier   string
			excluded   bool
		)
		if err = rows.Scan(&lineItemID, &modifier, &excluded); err != nil {
			return nil, err
		}
		out[lineItemID] = append(out[lineItemID], KitchenCustomizationView{
			Modifier: modifier,
			Excluded: excluded,
		})
	}

	return out, rows.Err()
}
