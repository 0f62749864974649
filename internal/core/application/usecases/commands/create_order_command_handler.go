package commands

import (
	"context"
	"fmt"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/services"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
//
// Placement snapshots the current catalog name and price into each line item,
// and for delivery orders resolves the address through the routing client and
// prices the delivery fee against the tariff before anything is persisted. An
// address outside the coverage radius fails the whole command with
// services.ErrOutOfCoverage; no order is created.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogClient
	routing    ports.RoutingClient
	pricing    services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogClient,
	routing ports.RoutingClient,
	pricing services.PricingEngine,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		routing:    routing,
		pricing:    pricing,
	}
}

// Handle processes the order placement command and returns the placed
// aggregate, including the delivery fee priced here. The order starts in
// Placed status; placement writes no history entry, the audit trail records
// transitions only.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerAddress(), cmd.CustomerNote())
	if err != nil {
		return nil, err
	}

	items, err := h.buildItems(ctx, cmd.Items())
	if err != nil {
		return nil, err
	}

	var delivery *order.DeliveryInfo
	if cmd.OrderType() == order.Delivery {
		delivery, err = h.buildDelivery(ctx, cmd.CustomerAddress())
		if err != nil {
			return nil, err
		}
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.OrderType(), customer, items, delivery)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) buildItems(
	ctx context.Context,
	specs []ItemSpec,
) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(specs))
	for _, spec := range specs {
		product, err := h.catalog.Product(ctx, spec.ProductID)
		if err != nil {
			return nil, err
		}

		customizations := make([]order.Customization, 0, len(spec.Customizations))
		for _, cSpec := range spec.Customizations {
			c, cErr := order.NewCustomization(cSpec.Modifier, cSpec.Excluded)
			if cErr != nil {
				return nil, cErr
			}
			customizations = append(customizations, c)
		}

		item, err := order.NewLineItem(
			product.ID, product.Name, product.Price, spec.Quantity, customizations, spec.Note)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (h *CreateOrderCommandHandler) buildDelivery(
	ctx context.Context,
	address string,
) (*order.DeliveryInfo, error) {
	estimate, err := h.routing.Estimate(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("estimate route: %w", err)
	}

	quote, err := h.pricing.DeliveryFee(estimate.DistanceKm)
	if err != nil {
		return nil, err
	}

	delivery, err := order.NewDeliveryInfo(
		estimate.DistanceKm, estimate.DurationMinutes, quote.TotalFee, estimate.Destination)
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}
