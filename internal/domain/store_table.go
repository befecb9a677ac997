package domain

import "time"

type TableStatus string

const (
	TableVacant TableStatus = "vacant"
	TableSeated TableStatus = "seated"
)

// StoreTable is one seating unit. OrderID is set while a non-terminal
// Order occupies the table and cleared when that order closes.
type StoreTable struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	StoreID   uint64      `json:"storeId" gorm:"not null;index"`
	OrderID   *uint64     `json:"orderId" gorm:"index"`
	XPos      int         `json:"xPos"`
	YPos      int         `json:"yPos"`
	Status    TableStatus `json:"status" gorm:"type:varchar(16);default:'vacant'"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

func (t *StoreTable) IsOccupied() bool {
	return t.OrderID != nil
}

func (t *StoreTable) Seat(orderID uint64) {
	t.OrderID = &orderID
	t.Status = TableSeated
}

func (t *StoreTable) Release() {
	t.OrderID = nil
	t.Status = TableVacant
}
