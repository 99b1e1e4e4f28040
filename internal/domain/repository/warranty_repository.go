package repository

import (
	"context"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/google/uuid"
)

// WarrantyFilterParams holds filters for listing warranty records
type WarrantyFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// WarrantyRepository defines warranty record data access
type WarrantyRepository interface {
	Create(ctx context.Context, record *entity.WarrantyRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WarrantyRecord, error)
	GetByProtocol(ctx context.Context, protocol string) (*entity.WarrantyRecord, error)
	GetByServiceOrderID(ctx context.Context, serviceOrderID uuid.UUID) (*entity.WarrantyRecord, error)
	List(ctx context.Context, params *WarrantyFilterParams) ([]entity.WarrantyRecord, int64, error)
}
