package services

import (
	"context"
	"time"

	"store-service/internal/domain"
	"store-service/internal/repository"
)

// OrderItemService owns the order/inventory consistency rules: every
// stock-affecting mutation runs with its line mutation in one
// transaction, so a failed stock check leaves nothing behind.
type OrderItemService struct {
	repos repository.Repositories
}

func NewOrderItemService(repos repository.Repositories) *OrderItemService {
	return &OrderItemService{repos: repos}
}

// AddOrderItem puts (item, price, count) on an order. A live line with
// the exact same item and price absorbs the count instead of becoming a
// second line; the same item at a different price stays distinct. The
// item's stock is decremented by count either way, and insufficient
// stock aborts the whole operation.
func (s *OrderItemService) AddOrderItem(ctx context.Context, storeID, orderID, itemID uint64, price, count int64) (*domain.OrderItem, error) {
	var line *domain.OrderItem
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

		if _, err := mutableOrder(tx, storeID, orderID); err != nil {
			return err
		}

		item, err := tx.Items().FindByIDForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.IsDeleted() || item.StoreID != storeID {
			return domain.ErrItemNotFound
		}

		if err := item.DecreaseStock(count); err != nil {
			return err
		}
		if err := tx.Items().Update(item); err != nil {
			return err
		}

		now := time.Now()
		existing, err := tx.OrderItems().FindOrderedLine(orderID, itemID, price)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Count += count
			existing.UpdatedTime = now
			if err := tx.OrderItems().Update(existing); err != nil {
				return err
			}
			line = existing
			return nil
		}

		l := &domain.OrderItem{
			StoreID:     storeID,
			OrderID:     orderID,
			ItemID:      itemID,
			ItemName:    item.Name,
			Price:       price,
			Count:       count,
			Status:      domain.OrderItemOrdered,
			OrderedTime: now,
			UpdatedTime: now,
		}
		if err := tx.OrderItems().Save(l); err != nil {
			return err
		}
		line = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdatePrice replaces the line's price. No stock effect.
func (s *OrderItemService) UpdatePrice(ctx context.Context, storeID, lineID uint64, price int64) (*domain.OrderItem, error) {
	var line *domain.OrderItem
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		l, err := s.mutableLine(tx, storeID, lineID)
		if err != nil {
			return err
		}
		l.Price = price
		l.UpdatedTime = time.Now()
		if err := tx.OrderItems().Update(l); err != nil {
			return err
		}
		line = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateCount moves the line to newCount and settles the difference
// against the item's stock: growth decrements (and may fail on the
// floor), shrinkage increments. A failed decrement leaves the count as
// it was.
func (s *OrderItemService) UpdateCount(ctx context.Context, storeID, lineID uint64, newCount int64) (*domain.OrderItem, error) {
	var line *domain.OrderItem
	err := s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		l, err := s.mutableLine(tx, storeID, lineID)
		if err != nil {
			return err
		}

		delta := newCount - l.Count
		if delta != 0 {
			item, err := tx.Items().FindByIDForUpdate(l.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrItemNotFound
			}
			if delta > 0 {
				if err := item.DecreaseStock(delta); err != nil {
					return err
				}
			} else {
				item.IncreaseStock(-delta)
			}
			if err := tx.Items().Update(item); err != nil {
				return err
			}
		}

		l.Count = newCount
		l.UpdatedTime = time.Now()
		if err := tx.OrderItems().Update(l); err != nil {
			return err
		}
		line = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

// DeleteOrderItem soft-deletes the line and hands its full count back
// to the item's stock.
func (s *OrderItemService) DeleteOrderItem(ctx context.Context, storeID, lineID uint64) error {
	return s.repos.Atomic(ctx, func(tx repository.Repositories) error {
		l, err := s.mutableLine(tx, storeID, lineID)
		if err != nil {
			return err
		}

		item, err := tx.Items().FindByIDForUpdate(l.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		item.IncreaseStock(l.Count)
		if err := tx.Items().Update(item); err != nil {
			return err
		}

		l.Status = domain.OrderItemDeleted
		l.UpdatedTime = time.Now()
		return tx.OrderItems().Update(l)
	})
}

// mutableLine resolves a live line and checks its order still accepts
// changes.
func (s *OrderItemService) mutableLine(tx repository.Repositories, storeID, lineID uint64) (*domain.OrderItem, error) {
	l, err := tx.OrderItems().FindByID(lineID)
	if err != nil {
		return nil, err
	}
	if l == nil || l.StoreID != storeID {
		return nil, domain.ErrOrderItemNotFound
	}
	if _, err := mutableOrder(tx, storeID, l.OrderID); err != nil {
		return nil, err
	}
	return l, nil
}

// mutableOrder resolves an order that may still take item changes: it
// must belong to the store, be in the using state, and have no active
// payment against it.
func mutableOrder(tx repository.Repositories, storeID, orderID uint64) (*domain.Order, error) {
	order, err := tx.Orders().FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.StoreID != storeID {
		return nil, domain.ErrOrderNotFound
	}
	if !order.Mutable() {
		return nil, domain.ErrOrderNotUsing
	}
	payment, err := tx.Payments().FindActiveByOrder(orderID)
	if err != nil {
		return nil, err
	}
	if payment != nil {
		return nil, domain.ErrPaymentAlreadyExists
	}
	return order, nil
}
