package repository

import (
	"context"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleFilterParams holds filters for listing sales
type SaleFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	PaymentMethod  *enum.PaymentMethod
	CustomerID     *uuid.UUID
	StartDate      *time.Time
	EndDate        *time.Time
	SortBy         string
	SortOrder      string
	SkipUserFilter bool
}

// MethodTotal aggregates one payment method for a reporting period
type MethodTotal struct {
	Method enum.PaymentMethod `json:"method"`
	Count  int64              `json:"count"`
	Net    int64              `json:"net"` // cents
}

// DailySummary aggregates sales for one calendar day
type DailySummary struct {
	Date     time.Time
	Count    int64
	Gross    int64 // cents
	Discount int64 // cents
	Net      int64 // cents
	ByMethod []MethodTotal
}

// SaleRepository defines sale header data access
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetBySaleNo(ctx context.Context, saleNo string) (*entity.Sale, error)
	// Delete removes a sale header; used as the compensating write when the
	// item insert fails after the header commit.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *SaleFilterParams) ([]entity.Sale, int64, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) error
	SummarizeDay(ctx context.Context, day time.Time) (*DailySummary, error)
}

// SaleItemRepository defines sale line-item data access
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
	GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error)
	DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error
}
