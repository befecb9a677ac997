package domain

import "time"

type OrderOpenedEvent struct {
	OrderID   uint64    `json:"orderId"`
	StoreID   uint64    `json:"storeId"`
	TableID   uint64    `json:"tableId"`
	StartTime time.Time `json:"startTime"`
}

type OrderClosedEvent struct {
	OrderID uint64    `json:"orderId"`
	StoreID uint64    `json:"storeId"`
	Total   int64     `json:"total"`
	EndTime time.Time `json:"endTime"`
}

type PaymentStartedEvent struct {
	PaymentID     uint64 `json:"paymentId"`
	OrderID       uint64 `json:"orderId"`
	InitialAmount int64  `json:"initialAmount"`
}

type PaymentCompletedEvent struct {
	PaymentID   uint64 `json:"paymentId"`
	OrderID     uint64 `json:"orderId"`
	FinalAmount int64  `json:"finalAmount"`
}
