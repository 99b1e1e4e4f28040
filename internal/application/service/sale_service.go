package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/cart"
	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	infraRepo "github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/dmelo/assistech-api/pkg/apperror"
	"github.com/dmelo/assistech-api/pkg/document"
	"github.com/dmelo/assistech-api/pkg/metrics"
	"github.com/dmelo/assistech-api/pkg/pagination"
	"github.com/dmelo/assistech-api/pkg/utils"
	"github.com/google/uuid"
)

// SaleService handles sale finalization and lookup
type SaleService struct {
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// SaleItemInput represents one line of a sale request. Product lines carry a
// ProductID; service lines (repairs, labor) carry only a description.
type SaleItemInput struct {
	ProductID   *uuid.UUID
	Description string
	Quantity    int
	UnitPrice   float64
}

// CreateSaleInput represents the finalize sale input
type CreateSaleInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	CustomerName  *string
	PaymentMethod string
	Discount      float64
	Notes         string
	Items         []SaleItemInput
}

// CreateSale finalizes a sale: it accumulates the request lines into a cart,
// persists the header, then the items, then fires stock decrements for
// product lines. A failed item insert removes the header it just created so
// no headless sale survives; stock decrement failures are recorded but never
// fail a sale that is already on disk.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	ownerID, ok := infraRepo.GetOwnerID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Owner context required")
	}

	if input.Discount < 0 {
		return nil, apperror.ErrNegativeDiscount
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if input.CustomerName == nil {
			input.CustomerName = &customer.Name
		}
	}

	// Batch fetch referenced products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.ProductID != nil {
			productIDs = append(productIDs, *item.ProductID)
		}
	}

	productMap := make(map[uuid.UUID]*entity.Product)
	if len(productIDs) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		for i := range products {
			productMap[products[i].ID] = &products[i]
		}
	}

	// Accumulate lines into a cart. Product lines snapshot the catalog name
	// and price at sale time; a rejected line aborts the whole request.
	c := cart.New()
	for _, item := range input.Items {
		description := item.Description
		unitPrice := utils.ToCents(item.UnitPrice)

		if item.ProductID != nil {
			product, exists := productMap[*item.ProductID]
			if !exists {
				return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
			}
			if description == "" {
				description = product.Name
			}
			if unitPrice <= 0 {
				unitPrice = product.SellingPrice
			}
		}

		if _, err := c.AddItem(item.ProductID, description, item.Quantity, unitPrice); err != nil {
			return nil, err
		}
	}

	if c.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	grossTotal := c.Total()
	discount := utils.ToCents(input.Discount)
	if discount > grossTotal {
		discount = grossTotal
	}
	netTotal := grossTotal - discount

	var notes *string
	if input.Notes != "" {
		notes = &input.Notes
	}

	sale := &entity.Sale{
		OwnerID:       ownerID,
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		SaleNo:        utils.GenerateSaleNo(),
		SaleDate:      time.Now(),
		PaymentMethod: enum.CoercePaymentMethod(input.PaymentMethod),
		Notes:         notes,
		GrossTotal:    grossTotal,
		Discount:      discount,
		NetTotal:      netTotal,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	items := make([]entity.SaleItem, 0, c.Size())
	for _, line := range c.Items() {
		items = append(items, entity.SaleItem{
			SaleID:      sale.ID,
			ProductID:   line.ProductID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal,
		})
	}

	if err := s.saleItemRepo.CreateBatch(ctx, items); err != nil {
		// The header is already on disk without its items. Remove it so a
		// retry starts clean; if even that fails the orphan is flagged for
		// operators rather than hidden.
		metrics.SaleRollbacks.Inc()
		if delErr := s.saleRepo.Delete(ctx, sale.ID); delErr != nil {
			metrics.SaleRollbackFailures.Inc()
			log.Printf("CRITICAL: failed to remove sale header %s after item insert failure: %v", sale.ID, delErr)
		}
		return nil, err
	}

	metrics.SalesCreated.Inc()

	// Stock decrements run after the sale is committed and never undo it.
	// A failed decrement means the count was already wrong or the row is
	// gone; correcting inventory is a human decision, not ours.
	for _, line := range c.Items() {
		if line.ProductID == nil {
			continue
		}
		if err := s.productRepo.DecrementStock(ctx, *line.ProductID, line.Quantity); err != nil {
			metrics.StockDecrementFailures.Inc()
			log.Printf("Warning: stock decrement failed for product %s (sale %s): %v", line.ProductID, sale.SaleNo, err)
		}
	}

	sale.Items = items
	return sale, nil
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetSaleByNo retrieves a sale by its human-facing number
func (s *SaleService) GetSaleByNo(ctx context.Context, saleNo string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetBySaleNo(ctx, saleNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, userID uuid.UUID, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// CancelSale marks a sale cancelled and restores stock for product lines
func (s *SaleService) CancelSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if sale.IsCancelled() {
		return nil, apperror.ErrSaleCancelled
	}

	now := time.Now()
	if err := s.saleRepo.MarkCancelled(ctx, id, now); err != nil {
		return nil, err
	}
	sale.CancelledAt = &now

	for _, item := range sale.Items {
		if item.ProductID == nil {
			continue
		}
		if err := s.productRepo.IncrementStock(ctx, *item.ProductID, item.Quantity); err != nil {
			log.Printf("Warning: stock restore failed for product %s (sale %s): %v", item.ProductID, sale.SaleNo, err)
		}
	}

	return sale, nil
}

// BuildReceipt assembles the printable receipt data for a sale
func (s *SaleService) BuildReceipt(ctx context.Context, id uuid.UUID) (*document.Receipt, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	cashier := ""
	if sale.User.ID != uuid.Nil {
		cashier = sale.User.FullName()
	} else if user, err := s.userRepo.GetByID(ctx, sale.UserID); err == nil && user != nil {
		cashier = user.FullName()
	}

	notes := ""
	if sale.Notes != nil {
		notes = *sale.Notes
	}

	receipt := &document.Receipt{
		SaleNo:        sale.SaleNo,
		IssuedAt:      sale.SaleDate,
		Cashier:       cashier,
		Customer:      sale.CustomerDisplayName(),
		PaymentMethod: sale.PaymentMethod.Label(),
		Notes:         notes,
		GrossCents:    sale.GrossTotal,
		DiscountCents: sale.Discount,
		NetCents:      sale.NetTotal,
	}
	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, document.ReceiptItem{
			Name:           item.Description,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPrice,
			TotalCents:     item.Subtotal,
		})
	}

	return receipt, nil
}
