package domain

import "time"

type OrderItemStatus string

const (
	OrderItemOrdered OrderItemStatus = "ordered"
	OrderItemDeleted OrderItemStatus = "deleted"
)

// OrderItem is one priced, quantified line of an order. ItemName and
// Price are snapshots taken at order time; later catalog edits do not
// touch existing lines.
type OrderItem struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	StoreID     uint64          `json:"storeId" gorm:"not null;index"`
	OrderID     uint64          `json:"orderId" gorm:"not null;index"`
	ItemID      uint64          `json:"itemId" gorm:"not null;index"`
	ItemName    string          `json:"itemName" gorm:"not null"`
	Price       int64           `json:"price" gorm:"not null"`
	Count       int64           `json:"count" gorm:"not null"`
	Status      OrderItemStatus `json:"status" gorm:"type:varchar(16);default:'ordered'"`
	OrderedTime time.Time       `json:"orderedTime"`
	UpdatedTime time.Time       `json:"updatedTime"`
}

// Matches reports whether a new request for (itemID, price) merges into
// this line. Same item at a different price stays a distinct line.
func (l *OrderItem) Matches(itemID uint64, price int64) bool {
	return l.Status == OrderItemOrdered && l.ItemID == itemID && l.Price == price
}

func (l *OrderItem) Total() int64 {
	return l.Price * l.Count
}
