package repository

import (
	"context"
	"errors"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	domainRepo "github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type warrantyRepository struct {
	db *gorm.DB
}

// NewWarrantyRepository creates a new warranty repository
func NewWarrantyRepository(db *gorm.DB) domainRepo.WarrantyRepository {
	return &warrantyRepository{db: db}
}

func (r *warrantyRepository) Create(ctx context.Context, record *entity.WarrantyRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *warrantyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WarrantyRecord, error) {
	var record entity.WarrantyRecord
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *warrantyRepository) GetByProtocol(ctx context.Context, protocol string) (*entity.WarrantyRecord, error) {
	var record entity.WarrantyRecord
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).First(&record, "protocol = ?", protocol).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *warrantyRepository) GetByServiceOrderID(ctx context.Context, serviceOrderID uuid.UUID) (*entity.WarrantyRecord, error) {
	var record entity.WarrantyRecord
	err := r.db.WithContext(ctx).Scopes(OwnerScope(ctx)).First(&record, "service_order_id = ?", serviceOrderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *warrantyRepository) List(ctx context.Context, params *domainRepo.WarrantyFilterParams) ([]entity.WarrantyRecord, int64, error) {
	var records []entity.WarrantyRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.WarrantyRecord{}).Scopes(OwnerScope(ctx))

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("protocol ILIKE ? OR customer_name ILIKE ? OR device ILIKE ?", search, search, search)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("issued_at DESC").
		Find(&records).Error

	return records, total, err
}
