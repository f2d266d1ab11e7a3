package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingDetail is the per-room line item of a booking: the nightly rate
// snapshot taken at reservation time, the night count, and the flags set at
// check-in. One row per (booking, room) pair.
type BookingDetail struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	BookingID uint    `gorm:"column:booking_id;index:idx_booking_room,unique" json:"bookingId"`
	RoomID    uint    `gorm:"column:room_id;index:idx_booking_room,unique" json:"roomId"`
	Price     float64 `json:"price"`
	Unit      int     `json:"unit"`
	IsForeign bool    `gorm:"column:is_foreign;default:false" json:"isForeign"`
	ExtraFee  float64 `gorm:"column:extra_fee;default:0" json:"extraFee"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
