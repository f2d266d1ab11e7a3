package models

import (
	"time"

	"gorm.io/gorm"
)

// Service records one ancillary purchase against a booking, with the
// product's price snapshotted at purchase time.
type Service struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"column:booking_id;index" json:"bookingId"`
	ProductID uint      `gorm:"column:product_id;index" json:"productId"`
	Price     float64   `json:"price"`
	Amount    int       `json:"amount"`
	BuyDate   time.Time `gorm:"column:buy_date;autoCreateTime" json:"buyDate"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product Product `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
}
