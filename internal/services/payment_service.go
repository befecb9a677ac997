package services

import (
	"context"
	"log"
	"time"

	"store-service/internal/domain"
	"store-service/internal/repository"

	rabbit "store-service/internal/infra/rabbitmq"
)

type PaymentService struct {
	repos     repository.Repositories
	publisher rabbit.PublisherInterface
}

func NewPaymentService(repos repository.Repositories, pub rabbit.PublisherInterface) *PaymentService {
	return &PaymentService{repos: repos, publisher: pub}
}

// StartPayment opens a settlement against an order. The initial amount
// is the live line total at this moment; from here on the order rejects
// item changes until the payment completes or is canceled.
func (s *PaymentService) StartPayment(ctx context.Context, storeID, orderID uint64) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		store, err := tx.Stores().FindByID(storeID)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrStoreNotFound
		}
		if !store.IsOpen() {
			return domain.ErrStoreClosed
		}

		order, err := tx.Orders().FindByID(orderID)
		if err != nil {
			return err
		}
		if order == nil || order.StoreID != storeID {
			return domain.ErrOrderNotFound
		}
		if !order.Mutable() {
			return domain.ErrOrderNotUsing
		}

		active, err := tx.Payments().FindActiveByOrder(orderID)
		if err != nil {
			return err
		}
		if active != nil {
			return domain.ErrPaymentAlreadyExists
		}

		lines, err := tx.OrderItems().FindOrderedByOrder(orderID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrNoOrderItems
		}

		var total int64
		for _, l := range lines {
			total += l.Total()
		}

		p := &domain.Payment{
			OrderID:       orderID,
			InitialAmount: total,
			Status:        domain.PaymentInit,
		}
		if err := tx.Payments().Save(p); err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.publishPaymentStarted(context.Background(), payment)

	return payment, nil
}

// AddMethod records one cash/card slice of the payment. The running
// method total may never exceed the amount being settled.
func (s *PaymentService) AddMethod(ctx context.Context, paymentID uint64, methodType domain.PaymentMethodType, amount int64) (*domain.PaymentMethod, error) {
	var method *domain.PaymentMethod
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		p, err := s.activePayment(tx, paymentID)
		if err != nil {
			return err
		}

		methods, err := tx.Payments().FindMethods(paymentID)
		if err != nil {
			return err
		}
		var sum int64
		for _, m := range methods {
			sum += m.Amount
		}
		if sum+amount > p.InitialAmount {
			return domain.ErrPaymentAmountMismatch
		}

		m := &domain.PaymentMethod{
			PaymentID: paymentID,
			Type:      methodType,
			Amount:    amount,
		}
		if err := tx.Payments().SaveMethod(m); err != nil {
			return err
		}
		method = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return method, nil
}

// CompletePayment settles the order: the recorded methods must
// reconcile exactly with the initial amount, then the payment succeeds,
// the order closes with an end time, and the table frees up for the
// next seating.
func (s *PaymentService) CompletePayment(ctx context.Context, paymentID uint64) (*domain.Payment, error) {
	var payment *domain.Payment
	var order *domain.Order
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		p, err := s.activePayment(tx, paymentID)
		if err != nil {
			return err
		}

		methods, err := tx.Payments().FindMethods(paymentID)
		if err != nil {
			return err
		}
		var sum int64
		for _, m := range methods {
			sum += m.Amount
		}
		if sum != p.InitialAmount {
			return domain.ErrPaymentAmountMismatch
		}

		o, err := tx.Orders().FindByID(p.OrderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrOrderNotFound
		}

		now := time.Now()
		p.FinalAmount = &sum
		p.Status = domain.PaymentSuccess
		if err := tx.Payments().Update(p); err != nil {
			return err
		}

		o.Close(now)
		if err := tx.Orders().Update(o); err != nil {
			return err
		}

		if o.TableID != nil {
			table, err := tx.Tables().FindByID(*o.TableID)
			if err != nil {
				return err
			}
			if table != nil {
				table.Release()
				if err := tx.Tables().Update(table); err != nil {
					return err
				}
			}
		}

		payment = p
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.publishPaymentCompleted(context.Background(), payment, order)

	return payment, nil
}

// CancelPayment voids an open payment; the order takes item changes
// again.
func (s *PaymentService) CancelPayment(ctx context.Context, paymentID uint64) error {
	return s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		p, err := s.activePayment(tx, paymentID)
		if err != nil {
			return err
		}
		p.Status = domain.PaymentCanceled
		return tx.Payments().Update(p)
	})
}

func (s *PaymentService) activePayment(tx repository.Repositories, paymentID uint64) (*domain.Payment, error) {
	p, err := tx.Payments().FindByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Active() {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

func (s *PaymentService) publishPaymentStarted(ctx context.Context, payment *domain.Payment) {
	evt := domain.PaymentStartedEvent{
		PaymentID:     payment.ID,
		OrderID:       payment.OrderID,
		InitialAmount: payment.InitialAmount,
	}
	if err := s.publisher.Publish(ctx, "payment.started", evt); err != nil {
		log.Printf("Failed to publish payment.started: %v", err)
	}
}

func (s *PaymentService) publishPaymentCompleted(ctx context.Context, payment *domain.Payment, order *domain.Order) {
	evt := domain.PaymentCompletedEvent{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
	}
	if payment.FinalAmount != nil {
		evt.FinalAmount = *payment.FinalAmount
	}
	if err := s.publisher.Publish(ctx, "payment.completed", evt); err != nil {
		log.Printf("Failed to publish payment.completed: %v", err)
	}

	if order != nil && order.EndTime != nil {
		closed := domain.OrderClosedEvent{
			OrderID: order.ID,
			StoreID: order.StoreID,
			Total:   evt.FinalAmount,
			EndTime: *order.EndTime,
		}
		if err := s.publisher.Publish(ctx, "order.closed", closed); err != nil {
			log.Printf("Failed to publish order.closed: %v", err)
		}
	}
}
