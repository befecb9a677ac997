package mysql

import (
	"errors"

	"store-service/internal/domain"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func (r *orderRepo) Save(order *domain.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) Update(order *domain.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindActiveByTable(tableID uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.
		Where("table_id = ? AND status <> ?", tableID, domain.OrderClosed).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

type orderItemRepo struct {
	db *gorm.DB
}

func (r *orderItemRepo) Save(line *domain.OrderItem) error {
	return r.db.Create(line).Error
}

func (r *orderItemRepo) Update(line *domain.OrderItem) error {
	return r.db.Save(line).Error
}

func (r *orderItemRepo) FindByID(id uint64) (*domain.OrderItem, error) {
	var l domain.OrderItem
	err := r.db.Where("status <> ?", domain.OrderItemDeleted).First(&l, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *orderItemRepo) FindOrderedLine(orderID, itemID uint64, price int64) (*domain.OrderItem, error) {
	var l domain.OrderItem
	err := r.db.
		Where("order_id = ? AND item_id = ? AND price = ? AND status = ?",
			orderID, itemID, price, domain.OrderItemOrdered).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *orderItemRepo) FindOrderedByOrder(orderID uint64) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := r.db.
		Where("order_id = ? AND status = ?", orderID, domain.OrderItemOrdered).
		Order("ordered_time ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
