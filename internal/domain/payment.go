package domain

import "time"

type PaymentStatus string

const (
	PaymentInit     PaymentStatus = "init"
	PaymentSuccess  PaymentStatus = "success"
	PaymentCanceled PaymentStatus = "canceled"
)

type PaymentMethodType string

const (
	PaymentMethodCash PaymentMethodType = "cash"
	PaymentMethodCard PaymentMethodType = "card"
)

type Payment struct {
	ID            uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64        `json:"orderId" gorm:"not null;index"`
	InitialAmount int64         `json:"initialAmount" gorm:"not null"`
	FinalAmount   *int64        `json:"finalAmount"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(16);default:'init'"`
	CreatedAt     time.Time     `json:"createdAt" gorm:"autoCreateTime"`
}

// Active reports whether the payment still blocks order mutations.
func (p *Payment) Active() bool {
	return p.Status == PaymentInit
}

type PaymentMethod struct {
	ID        uint64            `json:"id" gorm:"primaryKey;autoIncrement"`
	PaymentID uint64            `json:"paymentId" gorm:"not null;index"`
	Type      PaymentMethodType `json:"type" gorm:"type:varchar(16);not null"`
	Amount    int64             `json:"amount" gorm:"not null"`
	CreatedAt time.Time         `json:"createdAt" gorm:"autoCreateTime"`
}
