package models

import (
	"time"

	"gorm.io/gorm"
)

// Invoice is the recomputed pricing summary for a booking, at most one row
// per booking. Preview calls overwrite it in place; it is not a ledger.
type Invoice struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	BookingID     uint           `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`
	RoomAmount    float64        `gorm:"column:room_amount" json:"roomAmount"`
	ServiceAmount float64        `gorm:"column:service_amount" json:"serviceAmount"`
	TotalAmount   float64        `gorm:"column:total_amount" json:"totalAmount"`
	PaidAt        *time.Time     `gorm:"column:paid_at" json:"paidAt,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
