package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// Payment references its owner by username only. The column is a soft
// reference: renaming or deleting a user leaves old payments pointing at
// the stale name, and every filter treats a non-match as an empty result.
type Payment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"column:username;not null;index" json:"user"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Status    string    `gorm:"not null;default:'Pending'" json:"status"`
	Date      string    `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (payment *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.Date == "" {
		payment.Date = time.Now().Format("2006-01-02")
	}
	return
}
