package repository

import (
	"context"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/google/uuid"
)

// ServiceOrderFilterParams holds filters for listing service orders
type ServiceOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ServiceOrderStatus
	CustomerID *uuid.UUID
}

// ServiceOrderRepository defines service order data access
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *entity.ServiceOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOrder, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*entity.ServiceOrder, error)
	Update(ctx context.Context, order *entity.ServiceOrder) error
	List(ctx context.Context, params *ServiceOrderFilterParams) ([]entity.ServiceOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceOrderStatus) error
}
