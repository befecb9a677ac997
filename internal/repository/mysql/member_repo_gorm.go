package mysql

import (
	"errors"

	"store-service/internal/domain"

	"gorm.io/gorm"
)

type memberRepo struct {
	db *gorm.DB
}

func (r *memberRepo) Save(member *domain.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepo) Update(member *domain.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepo) FindByID(id uint64) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *memberRepo) FindByEmail(email string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
