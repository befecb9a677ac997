package services

import (
	"context"
	"fmt"
	"testing"

	"store-service/internal/domain"
	"store-service/internal/mocks"
	"store-service/internal/repository"
	mysqlrepo "store-service/internal/repository/mysql"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// End-to-end consistency checks against a real database, so the
// transaction boundary itself is under test rather than mocked away.

type testEnv struct {
	repos      repository.Repositories
	items      *ItemService
	orders     *OrderService
	orderItems *OrderItemService
	payments   *PaymentService

	store *domain.Store
	table *domain.StoreTable
	item  *domain.Item
	order *domain.Order
}

func newTestEnv(t *testing.T, stock int64) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Member{},
		&domain.Store{},
		&domain.Item{},
		&domain.StoreTable{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Payment{},
		&domain.PaymentMethod{},
	))

	repos := mysqlrepo.NewRepositories(db)
	publisher := new(mocks.MockPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	env := &testEnv{
		repos:      repos,
		items:      NewItemService(repos),
		orders:     NewOrderService(repos, publisher),
		orderItems: NewOrderItemService(repos),
		payments:   NewPaymentService(repos, publisher),
	}

	ctx := context.Background()
	member := &domain.Member{Name: "Owner", Email: "owner@example.com", Password: "x"}
	require.NoError(t, repos.Members().Save(member))

	env.store = &domain.Store{OwnerID: member.ID, Name: "Cafe Nine", Status: domain.StoreOpen}
	require.NoError(t, repos.Stores().Save(env.store))

	env.table = &domain.StoreTable{StoreID: env.store.ID, Status: domain.TableVacant}
	require.NoError(t, repos.Tables().Save(env.table))

	env.item = &domain.Item{StoreID: env.store.ID, Name: "Americano", Price: 10000, Stock: stock, Status: domain.ItemOnSale}
	require.NoError(t, repos.Items().Save(env.item))

	env.order, err = env.orders.OpenOrder(ctx, env.store.ID, env.table.ID)
	require.NoError(t, err)
	return env
}

func (e *testEnv) currentStock(t *testing.T) int64 {
	t.Helper()
	item, err := e.repos.Items().FindByIDForUpdate(e.item.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Stock
}

func TestConsistency_MergeAndFloor(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	_, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), env.currentStock(t))

	// same item, same price: absorbed into the one line
	merged, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(100), merged.Count)
	assert.Equal(t, int64(0), env.currentStock(t))

	lines, err := env.repos.OrderItems().FindOrderedByOrder(env.order.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	// the shelf is empty now
	_, err = env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(0), env.currentStock(t))

	lines, err = env.repos.OrderItems().FindOrderedByOrder(env.order.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(100), lines[0].Count)
}

func TestConsistency_DistinctPriceDistinctLine(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	_, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 10)
	require.NoError(t, err)
	_, err = env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 9000, 10)
	require.NoError(t, err)

	lines, err := env.repos.OrderItems().FindOrderedByOrder(env.order.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(80), env.currentStock(t))
}

func TestConsistency_CountUpdateDelta(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	line, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), env.currentStock(t))

	_, err = env.orderItems.UpdateCount(ctx, env.store.ID, line.ID, 49)
	require.NoError(t, err)
	assert.Equal(t, int64(51), env.currentStock(t))

	_, err = env.orderItems.UpdateCount(ctx, env.store.ID, line.ID, 51)
	require.NoError(t, err)
	assert.Equal(t, int64(49), env.currentStock(t))
}

func TestConsistency_DeleteRestoresStock(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	line, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 73)
	require.NoError(t, err)
	assert.Equal(t, int64(27), env.currentStock(t))

	require.NoError(t, env.orderItems.DeleteOrderItem(ctx, env.store.ID, line.ID))
	assert.Equal(t, int64(100), env.currentStock(t), "full count back on the shelf")

	lines, err := env.repos.OrderItems().FindOrderedByOrder(env.order.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestConsistency_ClosedStoreChangesNothing(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	env.store.Status = domain.StoreClosed
	require.NoError(t, env.repos.Stores().Update(env.store))

	_, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 5)
	assert.ErrorIs(t, err, domain.ErrStoreClosed)
	assert.Equal(t, int64(100), env.currentStock(t))

	lines, err := env.repos.OrderItems().FindOrderedByOrder(env.order.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestConsistency_TableExclusivity(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	_, err := env.orders.OpenOrder(ctx, env.store.ID, env.table.ID)
	assert.ErrorIs(t, err, domain.ErrOrderAlreadyExists)

	existing, err := env.repos.Orders().FindByID(env.order.ID)
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, domain.OrderUsing, existing.Status)
}

func TestConsistency_PaymentSettlesSeating(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	line, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 2)
	require.NoError(t, err)

	payment, err := env.payments.StartPayment(ctx, env.store.ID, env.order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), payment.InitialAmount)

	// the order is frozen while the payment is open
	_, err = env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 1)
	assert.ErrorIs(t, err, domain.ErrPaymentAlreadyExists)
	_, err = env.orderItems.UpdateCount(ctx, env.store.ID, line.ID, 3)
	assert.ErrorIs(t, err, domain.ErrPaymentAlreadyExists)

	_, err = env.payments.AddMethod(ctx, payment.ID, domain.PaymentMethodCash, 5000)
	require.NoError(t, err)
	_, err = env.payments.AddMethod(ctx, payment.ID, domain.PaymentMethodCard, 15000)
	require.NoError(t, err)

	settled, err := env.payments.CompletePayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentSuccess, settled.Status)
	assert.Equal(t, int64(20000), *settled.FinalAmount)

	closed, err := env.repos.Orders().FindByID(env.order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderClosed, closed.Status)
	assert.NotNil(t, closed.EndTime)

	// the table is free for the next seating
	next, err := env.orders.OpenOrder(ctx, env.store.ID, env.table.ID)
	require.NoError(t, err)
	assert.NotEqual(t, env.order.ID, next.ID)
}

func TestConsistency_CanceledPaymentUnfreezesOrder(t *testing.T) {
	env := newTestEnv(t, 100)
	ctx := context.Background()

	_, err := env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 1)
	require.NoError(t, err)

	payment, err := env.payments.StartPayment(ctx, env.store.ID, env.order.ID)
	require.NoError(t, err)
	require.NoError(t, env.payments.CancelPayment(ctx, payment.ID))

	_, err = env.orderItems.AddOrderItem(ctx, env.store.ID, env.order.ID, env.item.ID, 10000, 1)
	assert.NoError(t, err, "a canceled payment no longer blocks changes")
}
