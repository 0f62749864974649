// Package queries contains read-only operations serving the polling views.
// Implements the Query side of the CQRS architecture: handlers read the
// order tables directly and shape the rows for their role-specific screen,
// bypassing the aggregate entirely.
package queries

import (
	"errors"
	"time"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/guard"
)

var ErrGetKitchenOrdersQueryIsNotConstructed = errors.New(
	"GetKitchenOrdersQuery must be created via NewGetKitchenOrdersQuery constructor",
)

// GetKitchenOrdersQuery retrieves the kitchen's work queue: orders waiting
// for preparation or already marked Ready, with full item detail so cooks see
// customizations and preparation notes.
type GetKitchenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenOrdersQuery creates a query for the kitchen view.
// This is a parameterless query; the kitchen always sees the whole queue.
func NewGetKitchenOrdersQuery() GetKitchenOrdersQuery {
	return GetKitchenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenOrdersQueryIsNotConstructed)
}

// KitchenItemView is one line item as shown on the kitchen screen.
type KitchenItemView struct {
	ProductName    string
	Quantity       int
	Note           string
	Customizations []KitchenCustomizationView
}

// KitchenCustomizationView is one modifier of a kitchen line item.
type KitchenCustomizationView struct {
	Modifier string
	Excluded bool
}

// GetKitchenOrdersQueryResponse represents one order on the kitchen screen.
// Orders appear oldest first so the queue is worked in placement order.
type GetKitchenOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderType    order.Type
	Status       order.Status
	CustomerName string
	CustomerNote string
	CreatedAt    time.Time
	Items        []KitchenItemView
}
