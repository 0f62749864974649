package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/ports"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// GormCatalogRepository implements CatalogClient over the products table.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Product retrieves an available catalog product by ID. Unknown and
// unavailable products both report not-found: neither can be ordered.
func (r *GormCatalogRepository) Product(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	if err := id.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND available", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.Product{}, err
	}

	return toDomain(dto)
}
