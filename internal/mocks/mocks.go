package mocks

import (
	"context"

	"store-service/internal/domain"
	"store-service/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepos satisfies repository.Repositories for service tests. Atomic
// runs the callback against the same mocks with no transaction
// underneath, so tests exercise the service's guard ordering directly.
type MockRepos struct {
	MockMembers    *MockMemberRepository
	MockStores     *MockStoreRepository
	MockItems      *MockItemRepository
	MockTables     *MockTableRepository
	MockOrders     *MockOrderRepository
	MockOrderItems *MockOrderItemRepository
	MockPayments   *MockPaymentRepository
}

func NewRepos() *MockRepos {
	return &MockRepos{
		MockMembers:    new(MockMemberRepository),
		MockStores:     new(MockStoreRepository),
		MockItems:      new(MockItemRepository),
		MockTables:     new(MockTableRepository),
		MockOrders:     new(MockOrderRepository),
		MockOrderItems: new(MockOrderItemRepository),
		MockPayments:   new(MockPaymentRepository),
	}
}

func (m *MockRepos) Members() repository.MemberRepository       { return m.MockMembers }
func (m *MockRepos) Stores() repository.StoreRepository         { return m.MockStores }
func (m *MockRepos) Items() repository.ItemRepository           { return m.MockItems }
func (m *MockRepos) Tables() repository.TableRepository         { return m.MockTables }
func (m *MockRepos) Orders() repository.OrderRepository         { return m.MockOrders }
func (m *MockRepos) OrderItems() repository.OrderItemRepository { return m.MockOrderItems }
func (m *MockRepos) Payments() repository.PaymentRepository     { return m.MockPayments }

func (m *MockRepos) Atomic(ctx context.Context, fn func(tx repository.Repositories) error) error {
	return fn(m)
}

func (m *MockRepos) AssertExpectations(t mock.TestingT) {
	m.MockMembers.AssertExpectations(t)
	m.MockStores.AssertExpectations(t)
	m.MockItems.AssertExpectations(t)
	m.MockTables.AssertExpectations(t)
	m.MockOrders.AssertExpectations(t)
	m.MockOrderItems.AssertExpectations(t)
	m.MockPayments.AssertExpectations(t)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Save(member *domain.Member) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockMemberRepository) Update(member *domain.Member) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(id uint64) (*domain.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEmail(email string) (*domain.Member, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Save(store *domain.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(store *domain.Store) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) FindByID(id uint64) (*domain.Store, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByName(name string) (*domain.Store, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByOwner(ownerID uint64) ([]domain.Store, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Save(item *domain.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(item *domain.Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(id uint64) (*domain.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindByIDForUpdate(id uint64) (*domain.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindActiveByName(storeID uint64, name string) (*domain.Item, error) {
	args := m.Called(storeID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) FindActiveByStore(storeID uint64) ([]domain.Item, error) {
	args := m.Called(storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) Save(table *domain.StoreTable) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *MockTableRepository) Update(table *domain.StoreTable) error {
	args := m.Called(table)
	return args.Error(0)
}

func (m *MockTableRepository) FindByID(id uint64) (*domain.StoreTable, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreTable), args.Error(1)
}

func (m *MockTableRepository) FindByStore(storeID uint64) ([]domain.StoreTable, error) {
	args := m.Called(storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoreTable), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindActiveByTable(tableID uint64) (*domain.Order, error) {
	args := m.Called(tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) Save(line *domain.OrderItem) error {
	args := m.Called(line)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Update(line *domain.OrderItem) error {
	args := m.Called(line)
	return args.Error(0)
}

func (m *MockOrderItemRepository) FindByID(id uint64) (*domain.OrderItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) FindOrderedLine(orderID, itemID uint64, price int64) (*domain.OrderItem, error) {
	args := m.Called(orderID, itemID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) FindOrderedByOrder(orderID uint64) ([]domain.OrderItem, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Save(payment *domain.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(payment *domain.Payment) error {
	args := m.Called(payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(id uint64) (*domain.Payment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindActiveByOrder(orderID uint64) (*domain.Payment, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SaveMethod(method *domain.PaymentMethod) error {
	args := m.Called(method)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindMethods(paymentID uint64) ([]domain.PaymentMethod, error) {
	args := m.Called(paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}
