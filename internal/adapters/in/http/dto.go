package http

import (
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/services"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderType       string              `json:"order_type" validate:"required,oneof=DineIn Takeaway Delivery"`
	CustomerName    string              `json:"customer_name" validate:"required"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	CustomerNote    string              `json:"customer_note"`
	Items           []CreateItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateItemRequest is one requested line item.
type CreateItemRequest struct {
	ProductID      string                       `json:"product_id" validate:"required,uuid"`
	Quantity       int                          `json:"quantity" validate:"required,min=1"`
	Note           string                       `json:"note"`
	Customizations []CreateCustomizationRequest `json:"customizations" validate:"dive"`
}

// CreateCustomizationRequest is one modifier of a requested item.
type CreateCustomizationRequest struct {
	Modifier string `json:"modifier" validate:"required"`
	Excluded bool   `json:"excluded"`
}

// AdvanceOrderRequest is the body of POST /api/v1/orders/:id/advance.
type AdvanceOrderRequest struct {
	ActorID string `json:"actor_id" validate:"required,uuid"`
	Role    string `json:"role" validate:"required,oneof=Kitchen Cashier Courier"`
	Target  string `json:"target" validate:"required"`
	Note    string `json:"note"`
}

// ClaimOrderRequest is the body of POST /api/v1/orders/:id/claim.
type ClaimOrderRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
}

// ArrivedRequest is the body of POST /api/v1/orders/:id/arrived.
type ArrivedRequest struct {
	CourierID string `json:"courier_id" validate:"required,uuid"`
	Note      string `json:"note"`
}

// SettleOrderRequest is the body of POST /api/v1/orders/:id/settle.
type SettleOrderRequest struct {
	CashierID        string `json:"cashier_id" validate:"required,uuid"`
	Method           string `json:"method" validate:"required,oneof=Cash Card Transfer"`
	TipMode          string `json:"tip_mode" validate:"omitempty,oneof=None Percent Manual"`
	TipPercent       int    `json:"tip_percent" validate:"min=0"`
	TipAmount        int64  `json:"tip_amount" validate:"min=0"`
	AmountTendered   int64  `json:"amount_tendered" validate:"min=0"`
	ReceiptRequested bool   `json:"receipt_requested"`
}

// parseOrderType maps the wire name of an order type onto the domain enum.
func parseOrderType(s string) (order.Type, error) {
	switch s {
	case "DineIn":
		return order.DineIn, nil
	case "Takeaway":
		return order.Takeaway, nil
	case "Delivery":
		return order.Delivery, nil
	default:
		return order.UnknownType, errs.NewValueIsInvalidErrorWithCause("order_type",
			fmt.Errorf("%q is not a valid order type", s))
	}
}

// parseRole maps the wire name of a role onto the domain enum.
func parseRole(s string) (order.Role, error) {
	switch s {
	case "Kitchen":
		return order.RoleKitchen, nil
	case "Cashier":
		return order.RoleCashier, nil
	case "Courier":
		return order.RoleCourier, nil
	default:
		return order.UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// parseStatus maps the wire name of a status onto the domain enum.
func parseStatus(s string) (order.Status, error) {
	switch s {
	case "Placed":
		return order.Placed, nil
	case "Ready":
		return order.Ready, nil
	case "EnRoute":
		return order.EnRoute, nil
	case "Arrived":
		return order.Arrived, nil
	case "Delivered":
		return order.Delivered, nil
	case "Cancelled":
		return order.Cancelled, nil
	default:
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%q is not a valid status", s))
	}
}

// parsePaymentMethod maps the wire name of a payment method onto the domain enum.
func parsePaymentMethod(s string) (order.PaymentMethod, error) {
	switch s {
	case "Cash":
		return order.Cash, nil
	case "Card":
		return order.Card, nil
	case "Transfer":
		return order.Transfer, nil
	default:
		return order.UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// parseTipMode maps the wire name of a tip mode onto the pricing enum.
// An empty mode means no tip.
func parseTipMode(s string) (services.TipMode, error) {
	switch s {
	case "", "None":
		return services.TipNone, nil
	case "Percent":
		return services.TipPercent, nil
	case "Manual":
		return services.TipManual, nil
	default:
		return services.TipNone, errs.NewValueIsInvalidErrorWithCause("tip_mode",
			fmt.Errorf("%q is not a valid tip mode", s))
	}
}
