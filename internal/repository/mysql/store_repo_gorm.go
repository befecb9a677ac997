package mysql

import (
	"errors"

	"store-service/internal/domain"

	"gorm.io/gorm"
)

type storeRepo struct {
	db *gorm.DB
}

func (r *storeRepo) Save(store *domain.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepo) Update(store *domain.Store) error {
	return r.db.Save(store).Error
}

func (r *storeRepo) FindByID(id uint64) (*domain.Store, error) {
	var s domain.Store
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) FindByName(name string) (*domain.Store, error) {
	var s domain.Store
	if err := r.db.Where("name = ?", name).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *storeRepo) FindByOwner(ownerID uint64) ([]domain.Store, error) {
	var out []domain.Store
	if err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type tableRepo struct {
	db *gorm.DB
}

func (r *tableRepo) Save(table *domain.StoreTable) error {
	return r.db.Create(table).Error
}

func (r *tableRepo) Update(table *domain.StoreTable) error {
	return r.db.Save(table).Error
}

func (r *tableRepo) FindByID(id uint64) (*domain.StoreTable, error) {
	var t domain.StoreTable
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) FindByStore(storeID uint64) ([]domain.StoreTable, error) {
	var out []domain.StoreTable
	if err := r.db.Where("store_id = ?", storeID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
