package service

import (
	"context"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	infraRepo "github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/dmelo/assistech-api/pkg/apperror"
	"github.com/dmelo/assistech-api/pkg/document"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/dmelo/assistech-api/pkg/utils"
	"github.com/google/uuid"
)

// WarrantyService issues and looks up warranty certificates
type WarrantyService struct {
	warrantyRepo repository.WarrantyRepository
	orderRepo    repository.ServiceOrderRepository
	defaultDays  int
}

// NewWarrantyService creates a new warranty service
func NewWarrantyService(
	warrantyRepo repository.WarrantyRepository,
	orderRepo repository.ServiceOrderRepository,
	defaultDays int,
) *WarrantyService {
	if defaultDays <= 0 {
		defaultDays = 90
	}
	return &WarrantyService{
		warrantyRepo: warrantyRepo,
		orderRepo:    orderRepo,
		defaultDays:  defaultDays,
	}
}

// IssueWarrantyInput represents the issue warranty input
type IssueWarrantyInput struct {
	ServiceOrderID uuid.UUID
	PeriodDays     int
	Terms          *string
}

// IssueWarranty creates a warranty certificate for a finished repair. The
// customer, device and service fields are copied out of the order so the
// certificate text never shifts under later edits.
func (s *WarrantyService) IssueWarranty(ctx context.Context, input *IssueWarrantyInput) (*entity.WarrantyRecord, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Owner context required")
	}

	order, err := s.orderRepo.GetByID(ctx, input.ServiceOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Service order")
	}
	if order.Status != enum.ServiceOrderReady && order.Status != enum.ServiceOrderDelivered {
		return nil, apperror.NewBadRequestError("Warranty can only be issued for a finished repair")
	}

	existing, err := s.warrantyRepo.GetByServiceOrderID(ctx, input.ServiceOrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Warranty already issued for this service order")
	}

	periodDays := input.PeriodDays
	if periodDays <= 0 {
		periodDays = s.defaultDays
	}

	customerName := ""
	if order.Customer != nil {
		customerName = order.Customer.Name
	}
	service := order.ReportedDefect
	if order.Diagnosis != nil && *order.Diagnosis != "" {
		service = *order.Diagnosis
	}
	technician := ""
	if order.TechnicianName != nil {
		technician = *order.TechnicianName
	}

	issuedAt := time.Now()
	record := &entity.WarrantyRecord{
		OwnerID:        ownerID,
		ServiceOrderID: order.ID,
		Protocol:       utils.GenerateWarrantyProtocol(issuedAt),
		IssuedAt:       issuedAt,
		CustomerName:   customerName,
		Device:         order.Device,
		Service:        service,
		Amount:         order.Total(),
		PeriodDays:     periodDays,
		TechnicianName: technician,
		Terms:          input.Terms,
	}
	if err := s.warrantyRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// GetWarranty retrieves a warranty record by ID
func (s *WarrantyService) GetWarranty(ctx context.Context, id uuid.UUID) (*entity.WarrantyRecord, error) {
	record, err := s.warrantyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warranty")
	}
	return record, nil
}

// GetWarrantyByProtocol retrieves a warranty record by protocol
func (s *WarrantyService) GetWarrantyByProtocol(ctx context.Context, protocol string) (*entity.WarrantyRecord, error) {
	record, err := s.warrantyRepo.GetByProtocol(ctx, protocol)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Warranty")
	}
	return record, nil
}

// ListWarranties lists warranty records with search and pagination
func (s *WarrantyService) ListWarranties(ctx context.Context, params *repository.WarrantyFilterParams) (*pagination.PaginatedResult[entity.WarrantyRecord], error) {
	records, total, err := s.warrantyRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// BuildCertificate assembles the printable certificate data for a warranty
func (s *WarrantyService) BuildCertificate(ctx context.Context, id uuid.UUID) (*document.Warranty, error) {
	record, err := s.GetWarranty(ctx, id)
	if err != nil {
		return nil, err
	}

	terms := ""
	if record.Terms != nil {
		terms = *record.Terms
	}

	return &document.Warranty{
		Protocol:    record.Protocol,
		IssuedAt:    record.IssuedAt,
		Customer:    record.CustomerName,
		Device:      record.Device,
		Service:     record.Service,
		AmountCents: record.Amount,
		PeriodDays:  record.PeriodDays,
		Technician:  record.TechnicianName,
		Terms:       terms,
	}, nil
}
