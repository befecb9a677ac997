package domain

import "time"

type OrderStatus string

const (
	OrderEmpty  OrderStatus = "empty"
	OrderUsing  OrderStatus = "using"
	OrderClosed OrderStatus = "closed"
)

type Order struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	StoreID   uint64      `json:"storeId" gorm:"not null;index"`
	TableID   *uint64     `json:"tableId" gorm:"index"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(16);default:'empty'"`
	StartTime time.Time   `json:"startTime"`
	EndTime   *time.Time  `json:"endTime"`
}

// Active reports whether the order still occupies its table.
func (o *Order) Active() bool {
	return o.Status == OrderEmpty || o.Status == OrderUsing
}

// Mutable reports whether order items may still be added or changed.
func (o *Order) Mutable() bool {
	return o.Status == OrderUsing
}

// Close terminates the order. Called on payment completion.
func (o *Order) Close(at time.Time) {
	o.Status = OrderClosed
	o.EndTime = &at
}
