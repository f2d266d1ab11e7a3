package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin        = "ADMIN"
	RoleReceptionist = "RECEPTIONIST"
	RoleCustomer     = "CUSTOMER"
)

// User covers both hotel staff (who carry a password hash) and guests
// created lazily on their first booking. IdentityNumber is the natural
// dedup key for guests.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	FullName       string         `gorm:"size:255" json:"fullName"`
	PhoneNumber    string         `gorm:"size:50" json:"phoneNumber"`
	IdentityNumber string         `gorm:"column:identity_number;uniqueIndex;size:64" json:"identityNumber"`
	Address        string         `gorm:"size:255" json:"address"`
	Gender         string         `gorm:"size:16" json:"gender"`
	Nationality    string         `gorm:"size:64" json:"nationality"`
	Role           string         `gorm:"size:32;default:CUSTOMER" json:"role"`
	Password       string         `gorm:"size:255" json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
