package services

import (
	"context"
	"log"
	"time"

	"store-service/internal/domain"
	"store-service/internal/repository"

	rabbit "store-service/internal/infra/rabbitmq"
)

type OrderService struct {
	repos     repository.Repositories
	publisher rabbit.PublisherInterface
}

func NewOrderService(repos repository.Repositories, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{repos: repos, publisher: pub}
}

// OpenOrder seats a new order at a table. The store must be open and
// the table must not already host an active order.
func (s *OrderService) OpenOrder(ctx context.Context, storeID, tableID uint64) (*domain.Order, error) {
	var order *domain.Order
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

		table, err := tx.Tables().FindByID(tableID)
		if err != nil {
			return err
		}
		if table == nil || table.StoreID != storeID {
			return domain.ErrTableNotFound
		}

		active, err := tx.Orders().FindActiveByTable(tableID)
		if err != nil {
			return err
		}
		if table.IsOccupied() || active != nil {
			return domain.ErrOrderAlreadyExists
		}

		o := &domain.Order{
			StoreID:   storeID,
			TableID:   &tableID,
			Status:    domain.OrderUsing,
			StartTime: time.Now(),
		}
		if err := tx.Orders().Save(o); err != nil {
			return err
		}

		table.Seat(o.ID)
		if err := tx.Tables().Update(table); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.publishOrderOpened(context.Background(), order)

	return order, nil
}

// GetOrder builds the order-with-lines projection: live lines only,
// oldest first, with the running total.
func (s *OrderService) GetOrder(ctx context.Context, orderID uint64) (*OrderSummary, error) {
	order, err := s.repos.Orders().FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	lines, err := s.repos.OrderItems().FindOrderedByOrder(orderID)
	if err != nil {
		return nil, err
	}

	summary := &OrderSummary{
		ID:        order.ID,
		StoreID:   order.StoreID,
		TableID:   order.TableID,
		Status:    string(order.Status),
		StartTime: order.StartTime,
		EndTime:   order.EndTime,
		Items:     make([]OrderItemSummary, 0, len(lines)),
	}
	for _, l := range lines {
		summary.Total += l.Total()
		summary.Items = append(summary.Items, OrderItemSummary{
			ID:          l.ID,
			ItemID:      l.ItemID,
			ItemName:    l.ItemName,
			Price:       l.Price,
			Count:       l.Count,
			Total:       l.Total(),
			OrderedTime: l.OrderedTime,
			UpdatedTime: l.UpdatedTime,
		})
	}
	return summary, nil
}

func (s *OrderService) publishOrderOpened(ctx context.Context, order *domain.Order) {
	evt := domain.OrderOpenedEvent{
		OrderID:   order.ID,
		StoreID:   order.StoreID,
		StartTime: order.StartTime,
	}
	if order.TableID != nil {
		evt.TableID = *order.TableID
	}
	if err := s.publisher.Publish(ctx, "order.opened", evt); err != nil {
		log.Printf("Failed to publish order.opened: %v", err)
	}
}
