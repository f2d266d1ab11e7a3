package models

import (
	"time"

	"gorm.io/gorm"
)

// Room statuses. Status is a coarse signal mutated by the booking,
// check-in and payment flows; availability decisions are date-driven and
// only treat MAINTAIN as a hard filter.
const (
	RoomAvailable = "AVAILABLE"
	RoomBooked    = "BOOKED"
	RoomOccupied  = "OCCUPIED"
	RoomMaintain  = "MAINTAIN"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RoomNo    int            `gorm:"column:room_no;uniqueIndex" json:"roomNo"`
	Type      string         `gorm:"size:50" json:"type"`
	Price     float64        `json:"price"`
	MaxNum    int            `gorm:"column:max_num" json:"maxNum"`
	Status    string         `gorm:"size:32;default:AVAILABLE" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
