package services

import "time"

// Read-side projections. Flattened for JSON responses; never reused as
// write models.

type ItemSummary struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

type OrderItemSummary struct {
	ID          uint64    `json:"id"`
	ItemID      uint64    `json:"itemId"`
	ItemName    string    `json:"itemName"`
	Price       int64     `json:"price"`
	Count       int64     `json:"count"`
	Total       int64     `json:"total"`
	OrderedTime time.Time `json:"orderedTime"`
	UpdatedTime time.Time `json:"updatedTime"`
}

type OrderSummary struct {
	ID        uint64             `json:"id"`
	StoreID   uint64             `json:"storeId"`
	TableID   *uint64            `json:"tableId"`
	Status    string             `json:"status"`
	StartTime time.Time          `json:"startTime"`
	EndTime   *time.Time         `json:"endTime"`
	Total     int64              `json:"total"`
	Items     []OrderItemSummary `json:"items"`
}
