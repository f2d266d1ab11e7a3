package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is the audit row written once per successfully reconciled
// gateway callback. The unique BookingID doubles as a replay guard, and
// GatewayParams keeps the raw callback query for dispute handling.
type Payment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	BookingID     uint           `gorm:"column:booking_id;uniqueIndex" json:"bookingId"`
	TxnRef        string         `gorm:"column:txn_ref;size:64" json:"txnRef"`
	Amount        float64        `json:"amount"`
	BankCode      string         `gorm:"column:bank_code;size:32" json:"bankCode"`
	ResponseCode  string         `gorm:"column:response_code;size:8" json:"responseCode"`
	GatewayParams datatypes.JSON `gorm:"column:gateway_params" json:"gatewayParams,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
