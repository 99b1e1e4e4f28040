package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	infraRepo "github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceOrder_RegistersDevice(t *testing.T) {
	customer := &entity.Customer{ID: uuid.New(), Name: "Carlos Pereira"}
	customerRepo := newMockCustomerRepo(customer)
	orderRepo := newMockServiceOrderRepo()
	svc := NewServiceOrderService(orderRepo, customerRepo)
	ownerID := uuid.New()
	ctx := infraRepo.WithOwner(context.Background(), ownerID)

	order, err := svc.CreateServiceOrder(ctx, &CreateServiceOrderInput{
		UserID:         uuid.New(),
		CustomerID:     customer.ID,
		Device:         "Samsung Galaxy S23",
		ReportedDefect: "Nao carrega",
	})

	require.NoError(t, err)
	assert.Equal(t, ownerID, order.OwnerID)
	assert.Equal(t, enum.ServiceOrderReceived, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderNo, "OS-"))
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Carlos Pereira", order.Customer.Name)
}

func TestCreateServiceOrder_UnknownCustomer(t *testing.T) {
	svc := NewServiceOrderService(newMockServiceOrderRepo(), newMockCustomerRepo())
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	_, err := svc.CreateServiceOrder(ctx, &CreateServiceOrderInput{
		UserID:         uuid.New(),
		CustomerID:     uuid.New(),
		Device:         "iPhone 11",
		ReportedDefect: "Nao liga",
	})

	assert.Error(t, err)
}

func TestUpdateServiceOrder_ConvertsCostsToCents(t *testing.T) {
	order := &entity.ServiceOrder{ID: uuid.New(), Status: enum.ServiceOrderInRepair}
	svc := NewServiceOrderService(newMockServiceOrderRepo(order), newMockCustomerRepo())
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())
	labor := 200.00
	parts := 4.35

	updated, err := svc.UpdateServiceOrder(ctx, order.ID, &UpdateServiceOrderInput{
		LaborCost: &labor,
		PartsCost: &parts,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20000), updated.LaborCost)
	assert.Equal(t, int64(435), updated.PartsCost)
	assert.Equal(t, int64(20435), updated.Total())
}

func TestUpdateServiceOrder_RejectsClosedOrder(t *testing.T) {
	order := &entity.ServiceOrder{ID: uuid.New(), Status: enum.ServiceOrderDelivered}
	svc := NewServiceOrderService(newMockServiceOrderRepo(order), newMockCustomerRepo())
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())
	diagnosis := "late edit"

	_, err := svc.UpdateServiceOrder(ctx, order.ID, &UpdateServiceOrderInput{Diagnosis: &diagnosis})

	assert.Error(t, err)
}

func TestUpdateStatus_SetsDeliveredAtOnce(t *testing.T) {
	order := &entity.ServiceOrder{ID: uuid.New(), Status: enum.ServiceOrderReady}
	svc := NewServiceOrderService(newMockServiceOrderRepo(order), newMockCustomerRepo())
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	updated, err := svc.UpdateStatus(ctx, order.ID, enum.ServiceOrderDelivered)

	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
	first := *updated.DeliveredAt

	time.Sleep(time.Millisecond)
	again, err := svc.UpdateStatus(ctx, order.ID, enum.ServiceOrderDelivered)

	require.NoError(t, err)
	assert.Equal(t, first, *again.DeliveredAt)
}

func TestUpdateStatus_ForbidsLeavingDelivered(t *testing.T) {
	now := time.Now()
	order := &entity.ServiceOrder{ID: uuid.New(), Status: enum.ServiceOrderDelivered, DeliveredAt: &now}
	svc := NewServiceOrderService(newMockServiceOrderRepo(order), newMockCustomerRepo())
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	_, err := svc.UpdateStatus(ctx, order.ID, enum.ServiceOrderInRepair)

	assert.Error(t, err)
	assert.Equal(t, enum.ServiceOrderDelivered, order.Status)
}

func TestUpdateStatus_RejectsInvalidStatus(t *testing.T) {
	order := &entity.ServiceOrder{ID: uuid.New(), Status: enum.ServiceOrderReceived}
	svc := NewServiceOrderService(newMockServiceOrderRepo(order), newMockCustomerRepo())
	ctx := infraRepo.WithOwner(context.Background(), uuid.New())

	_, err := svc.UpdateStatus(ctx, order.ID, enum.ServiceOrderStatus(42))

	assert.Error(t, err)
}
