// Package catalogrepo provides read access to the product catalog for order
// placement. Orders snapshot the returned name and price into line items;
// the catalog is never consulted again for a placed order.
package catalogrepo

import (
	"github.com/google/uuid"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"
)

// ProductDTO represents a catalog product row.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     int64
	Available bool `gorm:"index"`
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a product row into the port representation.
func toDomain(dto ProductDTO) (ports.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:    id,
		Name:  dto.Name,
		Price: kernel.MoneyFromUnits(dto.Price),
	}, nil
}
