package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking is the reservation aggregate root. Details and services reference
// it by foreign key only; the booking never embeds live child objects back
// into them.
type Booking struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	BookingCode string         `gorm:"column:booking_code;uniqueIndex;size:16" json:"bookingCode"`
	CheckIn     time.Time      `gorm:"column:check_in" json:"checkIn"`
	CheckOut    time.Time      `gorm:"column:check_out" json:"checkOut"`
	GuestNum    int            `gorm:"column:guest_num" json:"guestNum"`
	IsPaid      bool           `gorm:"column:is_paid;default:false" json:"isPaid"`
	UserID      uint           `gorm:"index;column:user_id" json:"userId"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User     User            `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Details  []BookingDetail `gorm:"foreignKey:BookingID" json:"details,omitempty"`
	Services []Service       `gorm:"foreignKey:BookingID" json:"services,omitempty"`
}
