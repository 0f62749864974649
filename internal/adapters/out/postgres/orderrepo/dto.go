// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and the
// relational schema: orders, line items, customizations, payments and the
// transition history.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Delivery routing columns are nullable and populated only on delivery
// orders; the customer contact block is flattened into the row.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderType int        `gorm:"index"`
	Status    int        `gorm:"index"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	CustomerNote    string

	Subtotal int64

	DeliveryDistanceKm      *float64
	DeliveryDurationMinutes *int
	DeliveryFee             *int64
	DeliveryLatitude        *float64
	DeliveryLongitude       *float64

	Items   []LineItemDTO `gorm:"foreignKey:OrderID"`
	Payment *PaymentDTO   `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one product position of an order. Position preserves
// the order in which items were entered at checkout.
type LineItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Position       int
	ProductID      uuid.UUID `gorm:"type:uuid"`
	ProductName    string
	UnitPrice      int64
	Quantity       int
	Note           string
	Customizations []CustomizationDTO `gorm:"foreignKey:LineItemID"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// CustomizationDTO represents a single modifier applied to a line item.
type CustomizationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItemID uuid.UUID `gorm:"type:uuid;index"`
	Modifier   string
	Excluded   bool
}

// TableName specifies the database table name for customizations.
func (CustomizationDTO) TableName() string {
	return "customizations"
}

// PaymentDTO represents the settlement payment of an order. One row per
// order, written in the same transaction as the Delivered transition.
type PaymentDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Method           int
	Tip              int64
	Total            int64
	Change           int64
	ReceiptRequested bool
	PaidAt           time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// HistoryDTO represents one entry of the append-only transition audit trail.
type HistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	FromStatus int
	ToStatus   int
	ActorID    uuid.UUID `gorm:"type:uuid"`
	Note       string
	At         time.Time
}

// TableName specifies the database table name for transition history.
func (HistoryDTO) TableName() string {
	return "order_history"
}

// fromDomain converts an order domain aggregate to its database
// representation, including line items and customizations. The payment is
// written separately through SavePayment and is not mapped here.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	customer := aggregate.Customer()
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderType:       int(aggregate.Type()),
		Status:          int(aggregate.Status()),
		CourierID:       courierID,
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		CustomerAddress: customer.Address(),
		CustomerNote:    customer.Note(),
		Subtotal:        aggregate.Subtotal().Units(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if delivery := aggregate.Delivery(); delivery != nil {
		distance := delivery.DistanceKm()
		duration := delivery.DurationMinutes()
		fee := delivery.Fee().Units()
		lat := delivery.Destination().Latitude()
		lng := delivery.Destination().Longitude()
		dto.DeliveryDistanceKm = &distance
		dto.DeliveryDurationMinutes = &duration
		dto.DeliveryFee = &fee
		dto.DeliveryLatitude = &lat
		dto.DeliveryLongitude = &lng
	}

	for i, item := range aggregate.Items() {
		itemDTO := LineItemDTO{
			ID:          uuid.New(),
			OrderID:     dto.ID,
			Position:    i,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Units(),
			Quantity:    item.Quantity(),
			Note:        item.Note(),
		}
		for _, c := range item.Customizations() {
			itemDTO.Customizations = append(itemDTO.Customizations, CustomizationDTO{
				ID:         uuid.New(),
				LineItemID: itemDTO.ID,
				Modifier:   c.Modifier(),
				Excluded:   c.Excluded(),
			})
		}
		dto.Items = append(dto.Items, itemDTO)
	}

	return dto
}

// historyFromDomain converts transition records into audit trail rows.
func historyFromDomain(orderID kernel.UUID, records []order.TransitionRecord) []HistoryDTO {
	dtos := make([]HistoryDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, HistoryDTO{
			ID:         uuid.New(),
			OrderID:    orderID.Bytes(),
			FromStatus: int(rec.From),
			ToStatus:   int(rec.To),
			ActorID:    rec.ActorID.Bytes(),
			Note:       rec.Note,
			At:         rec.At,
		})
	}
	return dtos
}

// paymentFromDomain converts a settlement payment into its database row.
func paymentFromDomain(orderID kernel.UUID, payment order.Payment) PaymentDTO {
	return PaymentDTO{
		OrderID:          orderID.Bytes(),
		Method:           int(payment.Method()),
		Tip:              payment.Tip().Units(),
		Total:            payment.Total().Units(),
		Change:           payment.Change().Units(),
		ReceiptRequested: payment.ReceiptRequested(),
		PaidAt:           time.Now().UTC(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which revalidates
// the cross-field invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress, dto.CustomerNote)
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var payment *order.Payment
	if dto.Payment != nil {
		p, paymentErr := order.NewPayment(
			order.PaymentMethod(dto.Payment.Method),
			kernel.MoneyFromUnits(dto.Payment.Tip),
			kernel.MoneyFromUnits(dto.Payment.Total),
			kernel.MoneyFromUnits(dto.Payment.Change),
			dto.Payment.ReceiptRequested,
		)
		if paymentErr != nil {
			return nil, paymentErr
		}
		payment = &p
	}

	return order.RestoreOrder(
		id,
		order.Type(dto.OrderType),
		order.Status(dto.Status),
		customer,
		items,
		kernel.MoneyFromUnits(dto.Subtotal),
		delivery,
		courierID,
		payment,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemsToDomain(dtos []LineItemDTO) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(dtos))
	for _, itemDTO := range dtos {
		productID, err := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if err != nil {
			return nil, err
		}

		customizations := make([]order.Customization, 0, len(itemDTO.Customizations))
		for _, cDTO := range itemDTO.Customizations {
			c, cErr := order.NewCustomization(cDTO.Modifier, cDTO.Excluded)
			if cErr != nil {
				return nil, cErr
			}
			customizations = append(customizations, c)
		}

		item, err := order.NewLineItem(
			productID,
			itemDTO.ProductName,
			kernel.MoneyFromUnits(itemDTO.UnitPrice),
			itemDTO.Quantity,
			customizations,
			itemDTO.Note,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func deliveryToDomain(dto OrderDTO) (*order.DeliveryInfo, error) {
	if dto.DeliveryDistanceKm == nil {
		return nil, nil
	}

	destination, err := kernel.NewGeoPoint(*dto.DeliveryLatitude, *dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDeliveryInfo(
		*dto.DeliveryDistanceKm,
		*dto.DeliveryDurationMinutes,
		kernel.MoneyFromUnits(*dto.DeliveryFee),
		destination,
	)
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}
