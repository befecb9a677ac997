package domain

import "time"

type Member struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
