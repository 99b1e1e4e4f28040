package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	infraRepo "github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/dmelo/assistech-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleFixture struct {
	saleRepo     *mockSaleRepo
	saleItemRepo *mockSaleItemRepo
	productRepo  *mockProductRepo
	customerRepo *mockCustomerRepo
	userRepo     *mockUserRepo
	service      *SaleService
	ctx          context.Context
	ownerID      uuid.UUID
}

func newSaleFixture(products ...*entity.Product) *saleFixture {
	f := &saleFixture{
		saleRepo:     &mockSaleRepo{},
		saleItemRepo: &mockSaleItemRepo{},
		productRepo:  newMockProductRepo(products...),
		customerRepo: newMockCustomerRepo(),
		userRepo:     newMockUserRepo(),
		ownerID:      uuid.New(),
	}
	f.service = NewSaleService(f.saleRepo, f.saleItemRepo, f.productRepo, f.customerRepo, f.userRepo)
	f.ctx = infraRepo.WithOwner(context.Background(), f.ownerID)
	return f
}

func TestCreateSale_EmptyCart(t *testing.T) {
	f := newSaleFixture()

	_, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
	})

	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Equal(t, 0, f.saleRepo.createCalls)
	assert.Equal(t, 0, f.saleItemRepo.createBatchCalls)
	assert.Equal(t, 0, f.productRepo.decrementCalls)
}

func TestCreateSale_NegativeDiscount(t *testing.T) {
	f := newSaleFixture()

	_, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Discount:      -1,
		Items: []SaleItemInput{
			{Description: "USB cable", Quantity: 1, UnitPrice: 15.00},
		},
	})

	assert.ErrorIs(t, err, apperror.ErrNegativeDiscount)
	assert.Equal(t, 0, f.saleRepo.createCalls)
}

func TestCreateSale_MissingOwnerContext(t *testing.T) {
	f := newSaleFixture()

	_, err := f.service.CreateSale(context.Background(), &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{Description: "USB cable", Quantity: 1, UnitPrice: 15.00},
		},
	})

	assert.Error(t, err)
	assert.Equal(t, 0, f.saleRepo.createCalls)
}

func TestCreateSale_TotalsFromExampleScenario(t *testing.T) {
	f := newSaleFixture()

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Discount:      5.00,
		Items: []SaleItemInput{
			{Description: "USB cable", Quantity: 2, UnitPrice: 15.00},
			{Description: "Screen film", Quantity: 1, UnitPrice: 25.00},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5500), sale.GrossTotal)
	assert.Equal(t, int64(500), sale.Discount)
	assert.Equal(t, int64(5000), sale.NetTotal)
	assert.Equal(t, f.ownerID, sale.OwnerID)
	assert.Len(t, sale.Items, 2)
}

func TestCreateSale_KeepsExactCents(t *testing.T) {
	f := newSaleFixture()

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Discount:      1.15,
		Items: []SaleItemInput{
			{Description: "Pelicula", Quantity: 1, UnitPrice: 4.35},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(435), sale.GrossTotal)
	assert.Equal(t, int64(115), sale.Discount)
	assert.Equal(t, int64(320), sale.NetTotal)
}

func TestCreateSale_DiscountAboveGrossClampsToZero(t *testing.T) {
	f := newSaleFixture()

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "pix",
		Discount:      100.00,
		Items: []SaleItemInput{
			{Description: "Screen film", Quantity: 1, UnitPrice: 25.00},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2500), sale.GrossTotal)
	assert.Equal(t, int64(2500), sale.Discount)
	assert.Equal(t, int64(0), sale.NetTotal)
}

func TestCreateSale_ProductLineSnapshotsCatalog(t *testing.T) {
	product := &entity.Product{
		ID:           uuid.New(),
		Name:         "Bateria iPhone 11",
		Code:         "PRD-001",
		Quantity:     10,
		SellingPrice: 18990,
	}
	f := newSaleFixture(product)

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "credit_card",
		Items: []SaleItemInput{
			{ProductID: &product.ID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Bateria iPhone 11", sale.Items[0].Description)
	assert.Equal(t, int64(18990), sale.Items[0].UnitPrice)
	assert.Equal(t, int64(37980), sale.GrossTotal)
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	f := newSaleFixture()
	missing := uuid.New()

	_, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{ProductID: &missing, Quantity: 1},
		},
	})

	assert.Error(t, err)
	assert.Equal(t, 0, f.saleRepo.createCalls)
}

func TestCreateSale_ItemInsertFailureDeletesHeaderOnce(t *testing.T) {
	f := newSaleFixture()
	insertErr := errors.New("insert failed")
	f.saleItemRepo.createBatchFn = func(ctx context.Context, items []entity.SaleItem) error {
		return insertErr
	}

	_, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{Description: "USB cable", Quantity: 2, UnitPrice: 15.00},
		},
	})

	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 1, f.saleRepo.createCalls)
	assert.Equal(t, 1, f.saleRepo.deleteCalls)
	assert.Equal(t, 0, f.productRepo.decrementCalls)
}

func TestCreateSale_CompensatingDeleteFailureStillReturnsInsertError(t *testing.T) {
	f := newSaleFixture()
	insertErr := errors.New("insert failed")
	f.saleItemRepo.createBatchFn = func(ctx context.Context, items []entity.SaleItem) error {
		return insertErr
	}
	f.saleRepo.deleteFn = func(ctx context.Context, id uuid.UUID) error {
		return errors.New("delete failed")
	}

	_, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{Description: "USB cable", Quantity: 1, UnitPrice: 15.00},
		},
	})

	assert.ErrorIs(t, err, insertErr)
	assert.Equal(t, 1, f.saleRepo.deleteCalls)
}

func TestCreateSale_DecrementsStockForProductLines(t *testing.T) {
	product := &entity.Product{
		ID:           uuid.New(),
		Name:         "USB cable",
		Code:         "PRD-002",
		Quantity:     10,
		SellingPrice: 1500,
	}
	f := newSaleFixture(product)

	_, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{ProductID: &product.ID, Quantity: 3},
			{Description: "Troca de conector", Quantity: 1, UnitPrice: 80.00},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, f.productRepo.decrementCalls)
	assert.Equal(t, 7, product.Quantity)
}

func TestCreateSale_DecrementFailureDoesNotFailSale(t *testing.T) {
	product := &entity.Product{
		ID:           uuid.New(),
		Name:         "USB cable",
		Code:         "PRD-003",
		Quantity:     1,
		SellingPrice: 1500,
	}
	f := newSaleFixture(product)
	f.productRepo.decrementFn = func(ctx context.Context, id uuid.UUID, quantity int) error {
		return apperror.NewConflictError("Insufficient stock")
	}

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{ProductID: &product.ID, Quantity: 5},
		},
	})

	require.NoError(t, err)
	assert.NotNil(t, sale)
	assert.Equal(t, 1, f.productRepo.decrementCalls)
	assert.Equal(t, 0, f.saleRepo.deleteCalls)
}

func TestCreateSale_FillsCustomerNameFromRecord(t *testing.T) {
	f := newSaleFixture()
	customer := &entity.Customer{ID: uuid.New(), Name: "Maria Souza", OwnerID: f.ownerID}
	require.NoError(t, f.customerRepo.Create(f.ctx, customer))

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		CustomerID:    &customer.ID,
		PaymentMethod: "cash",
		Items: []SaleItemInput{
			{Description: "Screen film", Quantity: 1, UnitPrice: 25.00},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, sale.CustomerName)
	assert.Equal(t, "Maria Souza", *sale.CustomerName)
}

func TestCreateSale_UnknownPaymentMethodCoercesToOther(t *testing.T) {
	f := newSaleFixture()

	sale, err := f.service.CreateSale(f.ctx, &CreateSaleInput{
		UserID:        uuid.New(),
		PaymentMethod: "barter",
		Items: []SaleItemInput{
			{Description: "Screen film", Quantity: 1, UnitPrice: 25.00},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentOther, sale.PaymentMethod)
}

func TestCancelSale_RestoresStock(t *testing.T) {
	product := &entity.Product{
		ID:           uuid.New(),
		Name:         "USB cable",
		Code:         "PRD-004",
		Quantity:     5,
		SellingPrice: 1500,
	}
	f := newSaleFixture(product)

	saleID := uuid.New()
	f.saleRepo.getWithItems = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return &entity.Sale{
			ID:     saleID,
			SaleNo: "VND-20260901-0001",
			Items: []entity.SaleItem{
				{SaleID: saleID, ProductID: &product.ID, Quantity: 2},
			},
		}, nil
	}

	sale, err := f.service.CancelSale(f.ctx, saleID)

	require.NoError(t, err)
	assert.NotNil(t, sale.CancelledAt)
	assert.Equal(t, 1, f.productRepo.incrementCalls)
	assert.Equal(t, 7, product.Quantity)
}

func TestCancelSale_AlreadyCancelled(t *testing.T) {
	f := newSaleFixture()
	cancelledAt := time.Now().Add(-time.Hour)
	f.saleRepo.getWithItems = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return &entity.Sale{ID: id, CancelledAt: &cancelledAt}, nil
	}

	_, err := f.service.CancelSale(f.ctx, uuid.New())

	assert.ErrorIs(t, err, apperror.ErrSaleCancelled)
	assert.Equal(t, 0, f.productRepo.incrementCalls)
}

func TestBuildReceipt_MapsSaleFields(t *testing.T) {
	f := newSaleFixture()
	user := &entity.User{ID: uuid.New(), FirstName: "Ana", LastName: "Lima", Email: "ana@loja.com"}
	customerName := "Carlos Pereira"
	issuedAt := time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

	f.saleRepo.getWithItems = func(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
		return &entity.Sale{
			ID:            id,
			SaleNo:        "VND-20260314-0007",
			SaleDate:      issuedAt,
			UserID:        user.ID,
			User:          *user,
			CustomerName:  &customerName,
			PaymentMethod: enum.PaymentPix,
			GrossTotal:    5500,
			Discount:      500,
			NetTotal:      5000,
			Items: []entity.SaleItem{
				{Description: "USB cable", Quantity: 2, UnitPrice: 1500, Subtotal: 3000},
				{Description: "Screen film", Quantity: 1, UnitPrice: 2500, Subtotal: 2500},
			},
		}, nil
	}

	receipt, err := f.service.BuildReceipt(f.ctx, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "VND-20260314-0007", receipt.SaleNo)
	assert.Equal(t, issuedAt, receipt.IssuedAt)
	assert.Equal(t, "Ana Lima", receipt.Cashier)
	assert.Equal(t, "Carlos Pereira", receipt.Customer)
	assert.Equal(t, int64(5000), receipt.NetCents)
	assert.Len(t, receipt.Items, 2)
}
