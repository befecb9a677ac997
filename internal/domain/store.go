package domain

import "time"

type StoreStatus string

const (
	StoreOpen   StoreStatus = "open"
	StoreClosed StoreStatus = "close"
)

type Store struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID   uint64      `json:"ownerId" gorm:"not null;index"`
	Name      string      `json:"name" gorm:"uniqueIndex;not null"`
	Address   string      `json:"address"`
	Status    StoreStatus `json:"status" gorm:"type:varchar(16);default:'close'"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (s *Store) IsOpen() bool {
	return s.Status == StoreOpen
}

func (s *Store) IsOwnedBy(memberID uint64) bool {
	return s.OwnerID == memberID
}

// ToggleStatus flips open<->close. Existing orders are unaffected.
func (s *Store) ToggleStatus() {
	if s.Status == StoreOpen {
		s.Status = StoreClosed
	} else {
		s.Status = StoreOpen
	}
}
