package mysql

import (
	"errors"

	"store-service/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type itemRepo struct {
	db *gorm.DB
}

func (r *itemRepo) Save(item *domain.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) Update(item *domain.Item) error {
	return r.db.Save(item).Error
}

func (r *itemRepo) FindByID(id uint64) (*domain.Item, error) {
	var i domain.Item
	err := r.db.Where("status <> ?", domain.ItemDeleted).First(&i, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

// FindByIDForUpdate holds a write lock on the item row for the rest of
// the transaction, so concurrent stock decrements serialize instead of
// racing past the floor check. Soft-deleted rows resolve here: stock
// restoration must reach them. SQLite (tests) has no SELECT ... FOR
// UPDATE; its database-level write lock covers the same ground.
func (r *itemRepo) FindByIDForUpdate(id uint64) (*domain.Item, error) {
	db := r.db
	if db.Dialector.Name() == "mysql" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var i domain.Item
	err := db.First(&i, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *itemRepo) FindActiveByName(storeID uint64, name string) (*domain.Item, error) {
	var i domain.Item
	err := r.db.
		Where("store_id = ? AND name = ? AND status <> ?", storeID, name, domain.ItemDeleted).
		First(&i).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *itemRepo) FindActiveByStore(storeID uint64) ([]domain.Item, error) {
	var out []domain.Item
	err := r.db.
		Where("store_id = ? AND status <> ?", storeID, domain.ItemDeleted).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
