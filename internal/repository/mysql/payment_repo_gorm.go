package mysql

import (
	"errors"

	"store-service/internal/domain"

	"gorm.io/gorm"
)

type paymentRepo struct {
	db *gorm.DB
}

func (r *paymentRepo) Save(payment *domain.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepo) Update(payment *domain.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepo) FindByID(id uint64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) FindActiveByOrder(orderID uint64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.
		Where("order_id = ? AND status = ?", orderID, domain.PaymentInit).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) SaveMethod(method *domain.PaymentMethod) error {
	return r.db.Create(method).Error
}

func (r *paymentRepo) FindMethods(paymentID uint64) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	if err := r.db.Where("payment_id = ?", paymentID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
