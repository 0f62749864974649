// Package http is the inbound HTTP adapter: an echo server exposing order
// placement, the role transition endpoints and the polling views.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/commands"
	"github.com/Didier2101/plato-facil-sub001/internal/core/application/usecases/queries"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	advanceHandler     commands.AdvanceOrderCommandHandler
	claimHandler       commands.ClaimOrderCommandHandler
	arrivedHandler     commands.MarkArrivedCommandHandler
	settleHandler      commands.SettleOrderCommandHandler
	cancelHandler      commands.CancelOrderCommandHandler

	kitchenHandler queries.GetKitchenOrdersQueryHandler
	cashierHandler queries.GetCashierOrdersQueryHandler
	courierHandler queries.GetCourierOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceHandler commands.AdvanceOrderCommandHandler,
	claimHandler commands.ClaimOrderCommandHandler,
	arrivedHandler commands.MarkArrivedCommandHandler,
	settleHandler commands.SettleOrderCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	kitchenHandler queries.GetKitchenOrdersQueryHandler,
	cashierHandler queries.GetCashierOrdersQueryHandler,
	courierHandler queries.GetCourierOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		advanceHandler:     advanceHandler,
		claimHandler:       claimHandler,
		arrivedHandler:     arrivedHandler,
		settleHandler:      settleHandler,
		cancelHandler:      cancelHandler,
		kitchenHandler:     kitchenHandler,
		cashierHandler:     cashierHandler,
		courierHandler:     courierHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/kitchen", s.KitchenOrders)
	v1.GET("/orders/cashier", s.CashierOrders)
	v1.GET("/orders/courier", s.CourierOrders)
	v1.POST("/orders/:id/advance", s.AdvanceOrder)
	v1.POST("/orders/:id/claim", s.ClaimOrder)
	v1.POST("/orders/:id/arrived", s.MarkArrived)
	v1.POST("/orders/:id/settle", s.SettleOrder)
	v1.DELETE("/orders/:id", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return errorJSON(ctx, err)
	}

	orderType, err := parseOrderType(req.OrderType)
	if err != nil {
		return errorJSON(ctx, err)
	}

	items := make([]commands.ItemSpec, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, idErr := kernel.UUIDFromString(itemReq.ProductID)
		if idErr != nil {
			return errorJSON(ctx, idErr)
		}

		customizations := make([]commands.CustomizationSpec, 0, len(itemReq.Customizations))
		for _, cReq := range itemReq.Customizations {
			customizations = append(customizations, commands.CustomizationSpec{
				Modifier: cReq.Modifier,
				Excluded: cReq.Excluded,
			})
		}

		items = append(items, commands.ItemSpec{
			ProductID:      productID,
			Quantity:       itemReq.Quantity,
			Note:           itemReq.Note,
			Customizations: customizations,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, orderType,
		req.CustomerName, req.CustomerPhone, req.CustomerAddress, req.CustomerNote,
		items)
	if err != nil {
		return errorJSON(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToJSON(aggregate))
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to a
// target state on behalf of an actor.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req AdvanceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return errorJSON(ctx, err)
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	role, err := parseRole(req.Role)
	if err != nil {
		return errorJSON(ctx, err)
	}
	target, err := parseStatus(req.Target)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actorID, role, target, req.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	aggregate, err := s.advanceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToJSON(aggregate))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - claims a ready delivery
// for a courier.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ClaimOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return errorJSON(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	aggregate, err := s.claimHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToJSON(aggregate))
}

// MarkArrived handles POST /api/v1/orders/:id/arrived - records a courier's
// arrival at the destination.
func (s *Server) MarkArrived(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req ArrivedRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return errorJSON(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewMarkArrivedCommand(orderID, courierID, req.Note)
	if err != nil {
		return errorJSON(ctx, err)
	}

	aggregate, err := s.arrivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToJSON(aggregate))
}

// SettleOrder handles POST /api/v1/orders/:id/settle - settles an order.
func (s *Server) SettleOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	var req SettleOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return errorJSON(ctx, err)
	}

	cashierID, err := kernel.UUIDFromString(req.CashierID)
	if err != nil {
		return errorJSON(ctx, err)
	}
	method, err := parsePaymentMethod(req.Method)
	if err != nil {
		return errorJSON(ctx, err)
	}
	tipMode, err := parseTipMode(req.TipMode)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewSettleOrderCommand(
		orderID, cashierID, method, tipMode,
		req.TipPercent,
		kernel.MoneyFromUnits(req.TipAmount),
		kernel.MoneyFromUnits(req.AmountTendered),
		req.ReceiptRequested)
	if err != nil {
		return errorJSON(ctx, err)
	}

	aggregate, err := s.settleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToJSON(aggregate))
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order that has
// not been accepted yet. The acting kitchen user is passed as actor_id.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, err)
	}
	actorID, err := kernel.UUIDFromString(ctx.QueryParam("actor_id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// KitchenOrders handles GET /api/v1/orders/kitchen - the kitchen work queue.
func (s *Server) KitchenOrders(ctx echo.Context) error {
	orders, err := s.kitchenHandler.Handle(ctx.Request().Context(), queries.NewGetKitchenOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]kitchenOrderJSON, 0, len(orders))
	for _, o := range orders {
		items := make([]kitchenItemJSON, 0, len(o.Items))
		for _, item := range o.Items {
			customizations := make([]kitchenCustomizationJSON, 0, len(item.Customizations))
			for _, c := range item.Customizations {
				customizations = append(customizations, kitchenCustomizationJSON{
					Modifier: c.Modifier,
					Excluded: c.Excluded,
				})
			}
			items = append(items, kitchenItemJSON{
				ProductName:    item.ProductName,
				Quantity:       item.Quantity,
				Note:           item.Note,
				Customizations: customizations,
			})
		}
		response = append(response, kitchenOrderJSON{
			ID:           o.ID.String(),
			OrderType:    o.OrderType.String(),
			Status:       o.Status.String(),
			CustomerName: o.CustomerName,
			CustomerNote: o.CustomerNote,
			CreatedAt:    o.CreatedAt,
			Items:        items,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CashierOrders handles GET /api/v1/orders/cashier - orders awaiting
// settlement, optionally filtered by customer name substring.
func (s *Server) CashierOrders(ctx echo.Context) error {
	includeArrived := ctx.QueryParam("include_arrived") != "false"
	query := queries.NewGetCashierOrdersQuery(ctx.QueryParam("name"), includeArrived)

	orders, err := s.cashierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]cashierOrderJSON, 0, len(orders))
	for _, o := range orders {
		response = append(response, cashierOrderJSON{
			ID:           o.ID.String(),
			OrderType:    o.OrderType.String(),
			Status:       o.Status.String(),
			CustomerName: o.CustomerName,
			Subtotal:     o.Subtotal.Units(),
			DeliveryFee:  o.DeliveryFee.Units(),
			TotalDue:     o.TotalDue.Units(),
			CreatedAt:    o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CourierOrders handles GET /api/v1/orders/courier - the claimable pool and
// the polling courier's own deliveries.
func (s *Server) CourierOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.QueryParam("courier_id"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	view, err := s.courierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierBoardJSON{
		Available: courierViewsJSON(view.Available),
		Mine:      courierViewsJSON(view.Mine),
	})
}

// orderJSON is the order snapshot returned by placement and every transition
// endpoint, so clients see the post-transition state without another poll.
type orderJSON struct {
	ID           string       `json:"id"`
	OrderType    string       `json:"order_type"`
	Status       string       `json:"status"`
	CustomerName string       `json:"customer_name"`
	CourierID    string       `json:"courier_id,omitempty"`
	Subtotal     int64        `json:"subtotal"`
	DeliveryFee  int64        `json:"delivery_fee"`
	TotalDue     int64        `json:"total_due"`
	Payment      *paymentJSON `json:"payment,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type paymentJSON struct {
	Method string `json:"method"`
	Tip    int64  `json:"tip"`
	Total  int64  `json:"total"`
	Change int64  `json:"change"`
}

func orderToJSON(aggregate *order.Order) orderJSON {
	out := orderJSON{
		ID:           aggregate.ID().String(),
		OrderType:    aggregate.Type().String(),
		Status:       aggregate.Status().String(),
		CustomerName: aggregate.Customer().Name(),
		Subtotal:     aggregate.Subtotal().Units(),
		TotalDue:     aggregate.TotalDue().Units(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
	if courierID := aggregate.Courier(); courierID != nil {
		out.CourierID = courierID.String()
	}
	if delivery := aggregate.Delivery(); delivery != nil {
		out.DeliveryFee = delivery.Fee().Units()
	}
	if payment := aggregate.Payment(); payment != nil {
		out.Payment = &paymentJSON{
			Method: payment.Method().String(),
			Tip:    payment.Tip().Units(),
			Total:  payment.Total().Units(),
			Change: payment.Change().Units(),
		}
	}
	return out
}

type kitchenOrderJSON struct {
	ID           string            `json:"id"`
	OrderType    string            `json:"order_type"`
	Status       string            `json:"status"`
	CustomerName string            `json:"customer_name"`
	CustomerNote string            `json:"customer_note,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []kitchenItemJSON `json:"items"`
}

type kitchenItemJSON struct {
	ProductName    string                     `json:"product_name"`
	Quantity       int                        `json:"quantity"`
	Note           string                     `json:"note,omitempty"`
	Customizations []kitchenCustomizationJSON `json:"customizations"`
}

type kitchenCustomizationJSON struct {
	Modifier string `json:"modifier"`
	Excluded bool   `json:"excluded"`
}

type cashierOrderJSON struct {
	ID           string    `json:"id"`
	OrderType    string    `json:"order_type"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	Subtotal     int64     `json:"subtotal"`
	DeliveryFee  int64     `json:"delivery_fee"`
	TotalDue     int64     `json:"total_due"`
	CreatedAt    time.Time `json:"created_at"`
}

type courierBoardJSON struct {
	Available []courierOrderJSON `json:"available"`
	Mine      []courierOrderJSON `json:"mine"`
}

type courierOrderJSON struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerAddress string    `json:"customer_address"`
	DistanceKm      float64   `json:"distance_km"`
	DeliveryFee     int64     `json:"delivery_fee"`
	CreatedAt       time.Time `json:"created_at"`
}

func courierViewsJSON(views []queries.CourierOrderView) []courierOrderJSON {
	out := make([]courierOrderJSON, 0, len(views))
	for _, v := range views {
		out = append(out, courierOrderJSON{
			ID:              v.ID.String(),
			Status:          v.Status.String(),
			CustomerName:    v.CustomerName,
			CustomerPhone:   v.CustomerPhone,
			CustomerAddress: v.CustomerAddress,
			DistanceKm:      v.DistanceKm,
			DeliveryFee:     v.DeliveryFee.Units(),
			CreatedAt:       v.CreatedAt,
		})
	}
	return out
}
