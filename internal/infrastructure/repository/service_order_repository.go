package repository

import (
	"context"
	"errors"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	domainRepo "github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceOrderRepository struct {
	db *gorm.DB
}

// NewServiceOrderRepository creates a new service order repository
func NewServiceOrderRepository(db *gorm.DB) domainRepo.ServiceOrderRepository {
	return &serviceOrderRepository{db: db}
}

func (r *serviceOrderRepository) Create(ctx context.Context, order *entity.ServiceOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *serviceOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOrder, error) {
	var order entity.ServiceOrder
	err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ctx)).
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *serviceOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*entity.ServiceOrder, error) {
	var order entity.ServiceOrder
	err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ctx)).
		Preload("Customer").
		First(&order, "order_no = ?", orderNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *serviceOrderRepository) Update(ctx context.Context, order *entity.ServiceOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *serviceOrderRepository) List(ctx context.Context, params *domainRepo.ServiceOrderFilterParams) ([]entity.ServiceOrder, int64, error) {
	var orders []entity.ServiceOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ServiceOrder{}).Scopes(OwnerScope(ctx))

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("order_no ILIKE ? OR device ILIKE ? OR imei ILIKE ?", search, search, search)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *serviceOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceOrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.ServiceOrder{}).
		Scopes(OwnerScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}
