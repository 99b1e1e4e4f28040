package service

import (
	"context"
	"time"

	"github.com/dmelo/assistech-api/internal/domain/entity"
	"github.com/dmelo/assistech-api/internal/domain/enum"
	"github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/google/uuid"
)

// Hand-rolled mocks. Each records call counts and delegates to an optional
// func so a test can inject failures per method.

type mockSaleRepo struct {
	createCalls  int
	deleteCalls  int
	createFn     func(ctx context.Context, sale *entity.Sale) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	getWithItems func(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	summarizeDay func(ctx context.Context, day time.Time) (*repository.DailySummary, error)
	created      []*entity.Sale
}

func (m *mockSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	m.createCalls++
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	m.created = append(m.created, sale)
	if m.createFn != nil {
		return m.createFn(ctx, sale)
	}
	return nil
}

func (m *mockSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return nil, nil
}

func (m *mockSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	if m.getWithItems != nil {
		return m.getWithItems(ctx, id)
	}
	return nil, nil
}

func (m *mockSaleRepo) GetBySaleNo(ctx context.Context, saleNo string) (*entity.Sale, error) {
	return nil, nil
}

func (m *mockSaleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSaleRepo) List(ctx context.Context, userID uuid.UUID, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}

func (m *mockSaleRepo) MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func (m *mockSaleRepo) SummarizeDay(ctx context.Context, day time.Time) (*repository.DailySummary, error) {
	if m.summarizeDay != nil {
		return m.summarizeDay(ctx, day)
	}
	return &repository.DailySummary{Date: day}, nil
}

type mockSaleItemRepo struct {
	createBatchCalls int
	createBatchFn    func(ctx context.Context, items []entity.SaleItem) error
	inserted         []entity.SaleItem
}

func (m *mockSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	m.createBatchCalls++
	if m.createBatchFn != nil {
		return m.createBatchFn(ctx, items)
	}
	m.inserted = append(m.inserted, items...)
	return nil
}

func (m *mockSaleItemRepo) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	return m.inserted, nil
}

func (m *mockSaleItemRepo) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	return nil
}

type mockProductRepo struct {
	products       map[uuid.UUID]*entity.Product
	decrementCalls int
	incrementCalls int
	decrementFn    func(ctx context.Context, id uuid.UUID, quantity int) error
}

func newMockProductRepo(products ...*entity.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return m.products[id], nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	m.decrementCalls++
	if m.decrementFn != nil {
		return m.decrementFn(ctx, id, quantity)
	}
	if p, ok := m.products[id]; ok {
		p.Quantity -= quantity
	}
	return nil
}

func (m *mockProductRepo) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	m.incrementCalls++
	if p, ok := m.products[id]; ok {
		p.Quantity += quantity
	}
	return nil
}

type mockCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newMockCustomerRepo(customers ...*entity.Customer) *mockCustomerRepo {
	m := &mockCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return m.customers[id], nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMockUserRepo(users ...*entity.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]entity.User, error) {
	return nil, nil
}

type mockServiceOrderRepo struct {
	orders            map[uuid.UUID]*entity.ServiceOrder
	updateStatusCalls int
}

func newMockServiceOrderRepo(orders ...*entity.ServiceOrder) *mockServiceOrderRepo {
	m := &mockServiceOrderRepo{orders: make(map[uuid.UUID]*entity.ServiceOrder)}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *mockServiceOrderRepo) Create(ctx context.Context, order *entity.ServiceOrder) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockServiceOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOrder, error) {
	return m.orders[id], nil
}

func (m *mockServiceOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.ServiceOrder, error) {
	for _, o := range m.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, nil
}

func (m *mockServiceOrderRepo) Update(ctx context.Context, order *entity.ServiceOrder) error {
	m.orders[order.ID] = order
	return nil
}

func (m *mockServiceOrderRepo) List(ctx context.Context, params *repository.ServiceOrderFilterParams) ([]entity.ServiceOrder, int64, error) {
	return nil, 0, nil
}

func (m *mockServiceOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ServiceOrderStatus) error {
	m.updateStatusCalls++
	if o, ok := m.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type mockWarrantyRepo struct {
	records     map[uuid.UUID]*entity.WarrantyRecord
	createCalls int
}

func newMockWarrantyRepo(records ...*entity.WarrantyRecord) *mockWarrantyRepo {
	m := &mockWarrantyRepo{records: make(map[uuid.UUID]*entity.WarrantyRecord)}
	for _, r := range records {
		m.records[r.ID] = r
	}
	return m
}

func (m *mockWarrantyRepo) Create(ctx context.Context, record *entity.WarrantyRecord) error {
	m.createCalls++
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records[record.ID] = record
	return nil
}

func (m *mockWarrantyRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.WarrantyRecord, error) {
	return m.records[id], nil
}

func (m *mockWarrantyRepo) GetByProtocol(ctx context.Context, protocol string) (*entity.WarrantyRecord, error) {
	for _, r := range m.records {
		if r.Protocol == protocol {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockWarrantyRepo) GetByServiceOrderID(ctx context.Context, serviceOrderID uuid.UUID) (*entity.WarrantyRecord, error) {
	for _, r := range m.records {
		if r.ServiceOrderID == serviceOrderID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockWarrantyRepo) List(ctx context.Context, params *repository.WarrantyFilterParams) ([]entity.WarrantyRecord, int64, error) {
	return nil, 0, nil
}
