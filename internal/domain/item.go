package domain

import "time"

type ItemStatus string

const (
	ItemOnSale  ItemStatus = "onsale"
	ItemDeleted ItemStatus = "deleted"
)

type Item struct {
	ID        uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	StoreID   uint64     `json:"storeId" gorm:"not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	Price     int64      `json:"price" gorm:"not null"`
	Stock     int64      `json:"stock" gorm:"not null"`
	Status    ItemStatus `json:"status" gorm:"type:varchar(16);default:'onsale'"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// DecreaseStock takes n units off the shelf. Stock never goes negative:
// a decrement past zero is rejected and leaves the count unchanged.
func (i *Item) DecreaseStock(n int64) error {
	if n > i.Stock {
		return ErrInsufficientStock
	}
	i.Stock -= n
	return nil
}

// IncreaseStock puts n units back. No upper bound.
func (i *Item) IncreaseStock(n int64) {
	i.Stock += n
}

func (i *Item) IsDeleted() bool {
	return i.Status == ItemDeleted
}
