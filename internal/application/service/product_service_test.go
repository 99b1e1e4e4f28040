package service

import (
	"context"
	"strings"
	"testing"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	infraRepo "github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_GeneratesCodeWhenMissing(t *testing.T) {
	productRepo := newMockProductRepo()
	svc := NewProductService(productRepo)
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	product, err := svc.CreateProduct(ctx, &ProductInput{
		Name:         "Pelicula 3D",
		SellingPrice: 25.00,
		CostPrice:    4.35,
		Quantity:     30,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(product.Code, "PROD-"))
	assert.Equal(t, int64(2500), product.SellingPrice)
	assert.Equal(t, int64(435), product.CostPrice)
}

func TestCreateProduct_RejectsDuplicateCode(t *testing.T) {
	existing := &entity.Product{ID: uuid.New(), Name: "Cabo USB", Code: "PRD-001"}
	svc := NewProductService(newMockProductRepo(existing))
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	_, err := svc.CreateProduct(ctx, &ProductInput{
		Name:         "Outro cabo",
		Code:         "PRD-001",
		SellingPrice: 15.00,
	})

	assert.Error(t, err)
}

func TestAdjustStock_PositiveDelta(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Cabo USB", Code: "PRD-002", Quantity: 5}
	productRepo := newMockProductRepo(product)
	svc := NewProductService(productRepo)
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	updated, err := svc.AdjustStock(ctx, product.ID, 10)

	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)
	assert.Equal(t, 1, productRepo.incrementCalls)
}

func TestAdjustStock_NegativeDelta(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Cabo USB", Code: "PRD-003", Quantity: 5}
	productRepo := newMockProductRepo(product)
	svc := NewProductService(productRepo)
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	updated, err := svc.AdjustStock(ctx, product.ID, -3)

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
	assert.Equal(t, 1, productRepo.decrementCalls)
}

func TestAdjustStock_ZeroDeltaIsNoOp(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Cabo USB", Code: "PRD-004", Quantity: 5}
	productRepo := newMockProductRepo(product)
	svc := NewProductService(productRepo)
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	updated, err := svc.AdjustStock(ctx, product.ID, 0)

	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, 0, productRepo.incrementCalls)
	assert.Equal(t, 0, productRepo.decrementCalls)
}
