package ports

import (
	"context"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
)

// Product is a catalog entry as seen by order creation: the current name and
// price. Orders snapshot these values into line items; later catalog changes
// never affect placed orders.
type Product struct {
	ID    kernel.UUID
	Name  string
	Price kernel.Money
}

// CatalogClient looks up catalog products for price snapshotting.
// Returns errs.ObjectNotFoundError for unknown products.
type CatalogClient interface {
	Product(ctx context.Context, id kernel.UUID) (Product, error)
}
