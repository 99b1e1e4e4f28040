package repository

import (
	"context"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/google/uuid"
)

// ProductFilterParams holds filters for listing products
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// ProductRepository defines product/inventory data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)

	// DecrementStock subtracts quantity from one product, guarded against
	// going negative. Each call is an independent remote write; callers on
	// the sale path treat failures as log-and-count, not rollback.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
	// IncrementStock restores quantity (cancellations).
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
