package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MobileUser is a separate identity space from User: the mobile app logs in
// with an email (stored as username) or phone number, never against the
// admin-panel accounts.
type MobileUser struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username    string     `gorm:"unique;not null" json:"username"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	PhoneNumber string     `gorm:"unique;not null" json:"phoneNumber"`
	OTP         *string    `json:"-"`
	OTPExpires  *time.Time `json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`
}

func (user *MobileUser) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}
