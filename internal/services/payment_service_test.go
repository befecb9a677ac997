package services

import (
	"context"
	"testing"
	"time"

	"store-service/internal/domain"
	"store-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService_StartPayment(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockRepos, *mocks.MockPublisher)
		expectedError  error
		expectedAmount int64
	}{
		{
			name: "amount is the live line total",
			setupMocks: func(r *mocks.MockRepos, pub *mocks.MockPublisher) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
				r.MockOrders.On("FindByID", TestOrderID).Return(CreateMockOrder(TestOrderID, TestStoreID, TestTableID, domain.OrderUsing), nil)
				r.MockPayments.On("FindActiveByOrder", TestOrderID).Return(nil, nil)
				r.MockOrderItems.On("FindOrderedByOrder", TestOrderID).Return([]domain.OrderItem{
					*CreateMockLine(1, TestOrderID, 1, 10000, 2),
					*CreateMockLine(2, TestOrderID, 2, 5000, 1),
				}, nil)
				r.MockPayments.On("Save", mock.AnythingOfType("*domain.Payment")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Payment).ID = 1
				})
				pub.On("Publish", mock.Anything, "payment.started", mock.Anything).Return(nil).Maybe()
			},
			expectedAmount: 25000,
		},
		{
			name: "no lines to settle",
			setupMocks: func(r *mocks.MockRepos, pub *mocks.MockPublisher) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
				r.MockOrders.On("FindByID", TestOrderID).Return(CreateMockOrder(TestOrderID, TestStoreID, TestTableID, domain.OrderUsing), nil)
				r.MockPayments.On("FindActiveByOrder", TestOrderID).Return(nil, nil)
				r.MockOrderItems.On("FindOrderedByOrder", TestOrderID).Return([]domain.OrderItem{}, nil)
			},
			expectedError: domain.ErrNoOrderItems,
		},
		{
			name: "second active payment is rejected",
			setupMocks: func(r *mocks.MockRepos, pub *mocks.MockPublisher) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreOpen), nil)
				r.MockOrders.On("FindByID", TestOrderID).Return(CreateMockOrder(TestOrderID, TestStoreID, TestTableID, domain.OrderUsing), nil)
				r.MockPayments.On("FindActiveByOrder", TestOrderID).Return(&domain.Payment{ID: 1, OrderID: TestOrderID, Status: domain.PaymentInit}, nil)
			},
			expectedError: domain.ErrPaymentAlreadyExists,
		},
		{
			name: "closed store",
			setupMocks: func(r *mocks.MockRepos, pub *mocks.MockPublisher) {
				r.MockStores.On("FindByID", TestStoreID).Return(CreateMockStore(TestStoreID, TestMemberID, domain.StoreClosed), nil)
			},
			expectedError: domain.ErrStoreClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := mocks.NewRepos()
			publisher := new(mocks.MockPublisher)
			tt.setupMocks(repos, publisher)

			service := NewPaymentService(repos, publisher)
			payment, err := service.StartPayment(context.Background(), TestStoreID, TestOrderID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAmount, payment.InitialAmount)
				assert.Equal(t, domain.PaymentInit, payment.Status)
			}

			time.Sleep(50 * time.Millisecond)
			repos.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestPaymentService_AddMethod(t *testing.T) {
	t.Run("records a slice under the amount", func(t *testing.T) {
		repos := mocks.NewRepos()
		payment := &domain.Payment{ID: 1, OrderID: TestOrderID, InitialAmount: 10000, Status: domain.PaymentInit}
		repos.MockPayments.On("FindByID", uint64(1)).Return(payment, nil)
		repos.MockPayments.On("FindMethods", uint64(1)).Return([]domain.PaymentMethod{
			{ID: 1, PaymentID: 1, Type: domain.PaymentMethodCash, Amount: 4000},
		}, nil)
		repos.MockPayments.On("SaveMethod", mock.AnythingOfType("*domain.PaymentMethod")).Return(nil)

		service := NewPaymentService(repos, new(mocks.MockPublisher))
		method, err := service.AddMethod(context.Background(), 1, domain.PaymentMethodCard, 6000)

		assert.NoError(t, err)
		assert.Equal(t, int64(6000), method.Amount)
		repos.AssertExpectations(t)
	})

	t.Run("overshooting the amount is rejected", func(t *testing.T) {
		repos := mocks.NewRepos()
		payment := &domain.Payment{ID: 1, OrderID: TestOrderID, InitialAmount: 10000, Status: domain.PaymentInit}
		repos.MockPayments.On("FindByID", uint64(1)).Return(payment, nil)
		repos.MockPayments.On("FindMethods", uint64(1)).Return([]domain.PaymentMethod{
			{ID: 1, PaymentID: 1, Type: domain.PaymentMethodCash, Amount: 4000},
		}, nil)

		service := NewPaymentService(repos, new(mocks.MockPublisher))
		method, err := service.AddMethod(context.Background(), 1, domain.PaymentMethodCard, 6001)

		assert.ErrorIs(t, err, domain.ErrPaymentAmountMismatch)
		assert.Nil(t, method)
		repos.AssertExpectations(t)
	})

	t.Run("settled payment takes no more methods", func(t *testing.T) {
		repos := mocks.NewRepos()
		payment := &domain.Payment{ID: 1, OrderID: TestOrderID, InitialAmount: 10000, Status: domain.PaymentSuccess}
		repos.MockPayments.On("FindByID", uint64(1)).Return(payment, nil)

		service := NewPaymentService(repos, new(mocks.MockPublisher))
		_, err := service.AddMethod(context.Background(), 1, domain.PaymentMethodCash, 1)

		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
		repos.AssertExpectations(t)
	})
}

func TestPaymentService_CompletePayment(t *testing.T) {
	t.Run("reconciled methods close the order and free the table", func(t *testing.T) {
		repos := mocks.NewRepos()
		publisher := new(mocks.MockPublisher)

		payment := &domain.Payment{ID: 1, OrderID: TestOrderID, InitialAmount: 10000, Status: domain.PaymentInit}
		order := CreateMockOrder(TestOrderID, TestStoreID, TestTableID, domain.OrderUsing)
		table := CreateMockTable(TestTableID, TestStoreID)
		table.Seat(TestOrderID)

		repos.MockPayments.On("FindByID", uint64(1)).Return(payment, nil)
		repos.MockPayments.On("FindMethods", uint64(1)).Return([]domain.PaymentMethod{
			{ID: 1, PaymentID: 1, Type: domain.PaymentMethodCash, Amount: 4000},
			{ID: 2, PaymentID: 1, Type: domain.PaymentMethodCard, Amount: 6000},
		}, nil)
		repos.MockOrders.On("FindByID", TestOrderID).Return(order, nil)
		repos.MockPayments.On("Update", payment).Return(nil)
		repos.MockOrders.On("Update", order).Return(nil)
		repos.MockTables.On("FindByID", TestTableID).Return(table, nil)
		repos.MockTables.On("Update", table).Return(nil)
		publisher.On("Publish", mock.Anything, "payment.completed", mock.Anything).Return(nil).Maybe()
		publisher.On("Publish", mock.Anything, "order.closed", mock.Anything).Return(nil).Maybe()

		service := NewPaymentService(repos, publisher)
		settled, err := service.CompletePayment(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentSuccess, settled.Status)
		assert.Equal(t, int64(10000), *settled.FinalAmount)
		assert.Equal(t, domain.OrderClosed, order.Status)
		assert.NotNil(t, order.EndTime)
		assert.False(t, table.IsOccupied())

		time.Sleep(50 * time.Millisecond)
		repos.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("short methods block completion", func(t *testing.T) {
		repos := mocks.NewRepos()
		payment := &domain.Payment{ID: 1, OrderID: TestOrderID, InitialAmount: 10000, Status: domain.PaymentInit}
		repos.MockPayments.On("FindByID", uint64(1)).Return(payment, nil)
		repos.MockPayments.On("FindMethods", uint64(1)).Return([]domain.PaymentMethod{
			{ID: 1, PaymentID: 1, Type: domain.PaymentMethodCash, Amount: 9999},
		}, nil)

		service := NewPaymentService(repos, new(mocks.MockPublisher))
		_, err := service.CompletePayment(context.Background(), 1)

		assert.ErrorIs(t, err, domain.ErrPaymentAmountMismatch)
		assert.Equal(t, domain.PaymentInit, payment.Status)
		repos.AssertExpectations(t)
	})
}

func TestPaymentService_CancelPayment(t *testing.T) {
	repos := mocks.NewRepos()
	payment := &domain.Payment{ID: 1, OrderID: TestOrderID, InitialAmount: 10000, Status: domain.PaymentInit}
	repos.MockPayments.On("FindByID", uint64(1)).Return(payment, nil)
	repos.MockPayments.On("Update", payment).Return(nil)

	service := NewPaymentService(repos, new(mocks.MockPublisher))
	err := service.CancelPayment(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCanceled, payment.Status)
	repos.AssertExpectations(t)
}
