package service

import (
	"context"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	infraRepo "github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/dmelo/assistech-api/pkg/apperror"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/dmelo/assistech-api/pkg/utils"
	"github.com/google/uuid"
)

// ServiceOrderService handles repair bench operations
type ServiceOrderService struct {
	orderRepo    repository.ServiceOrderRepository
	customerRepo repository.CustomerRepository
}

// NewServiceOrderService creates a new service order service
func NewServiceOrderService(
	orderRepo repository.ServiceOrderRepository,
	customerRepo repository.CustomerRepository,
) *ServiceOrderService {
	return &ServiceOrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// CreateServiceOrderInput represents the intake of a device for repair
type CreateServiceOrderInput struct {
	UserID         uuid.UUID
	CustomerID     uuid.UUID
	Device         string
	IMEI           *string
	ReportedDefect string
	TechnicianName *string
}

// UpdateServiceOrderInput represents the bench-side updates to an open order
type UpdateServiceOrderInput struct {
	Diagnosis      *string
	TechnicianName *string
	LaborCost      *float64
	PartsCost      *float64
}

// CreateServiceOrder registers a device at the bench
func (s *ServiceOrderService) CreateServiceOrder(ctx context.Context, input *CreateServiceOrderInput) (*entity.ServiceOrder, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Owner context required")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	order := &entity.ServiceOrder{
		OwnerID:        ownerID,
		UserID:         input.UserID,
		CustomerID:     input.CustomerID,
		OrderNo:        utils.GenerateServiceOrderNo(),
		Device:         input.Device,
		IMEI:           input.IMEI,
		ReportedDefect: input.ReportedDefect,
		Status:         enum.ServiceOrderReceived,
		TechnicianName: input.TechnicianName,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	order.Customer = customer
	return order, nil
}

// GetServiceOrder retrieves a service order by ID
func (s *ServiceOrderService) GetServiceOrder(ctx context.Context, id uuid.UUID) (*entity.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Service order")
	}
	return order, nil
}

// GetServiceOrderByNo retrieves a service order by its human-facing number
func (s *ServiceOrderService) GetServiceOrderByNo(ctx context.Context, orderNo string) (*entity.ServiceOrder, error) {
	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Service order")
	}
	return order, nil
}

// UpdateServiceOrder applies bench updates to an open order
func (s *ServiceOrderService) UpdateServiceOrder(ctx context.Context, id uuid.UUID, input *UpdateServiceOrderInput) (*entity.ServiceOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Service order")
	}
	if order.Status == enum.ServiceOrderDelivered || order.Status == enum.ServiceOrderCancelled {
		return nil, apperror.NewBadRequestError("Service order is closed")
	}

	if input.Diagnosis != nil {
		order.Diagnosis = input.Diagnosis
	}
	if input.TechnicianName != nil {
		order.TechnicianName = input.TechnicianName
	}
	if input.LaborCost != nil {
		order.LaborCost = utils.ToCents(*input.LaborCost)
	}
	if input.PartsCost != nil {
		order.PartsCost = utils.ToCents(*input.PartsCost)
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves a service order through the repair workflow
func (s *ServiceOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceOrderStatus) (*entity.ServiceOrder, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid status")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Service order")
	}
	if order.Status == enum.ServiceOrderDelivered && status != enum.ServiceOrderDelivered {
		return nil, apperror.NewBadRequestError("Delivered orders cannot change status")
	}

	order.Status = status
	if status == enum.ServiceOrderDelivered && order.DeliveredAt == nil {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListServiceOrders lists service orders with filtering
func (s *ServiceOrderService) ListServiceOrders(ctx context.Context, params *repository.ServiceOrderFilterParams) (*pagination.PaginatedResult[entity.ServiceOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
