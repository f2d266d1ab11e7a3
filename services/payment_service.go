package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"managehotel/apperrors"
	"managehotel/config"
	"managehotel/models"
	"managehotel/utils"
)

type PaymentService struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewPaymentService(db *gorm.DB, cfg config.Config) *PaymentService {
	return &PaymentService{DB: db, Cfg: cfg}
}

// CreatePayment validates the claimed amount against the stored invoice and
// builds the signed gateway redirect URL. No local state changes.
func (s *PaymentService) CreatePayment(bookingCode string, amount float64, bankCode, clientIP string) (string, error) {
	var booking models.Booking
	err := s.DB.Where("booking_code = ?", bookingCode).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.ErrBookingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve booking: %w", err)
	}

	var invoice models.Invoice
	err = s.DB.Where("booking_id = ?", booking.ID).First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.ErrInvoiceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve invoice: %w", err)
	}

	if amount != invoice.TotalAmount {
		return "", apperrors.ErrTotalMismatch
	}

	params := map[string]string{
		"vnp_Version":      "2.1.0",
		"vnp_Command":      "pay",
		"vnp_TmnCode":      s.Cfg.VNPay.TmnCode,
		"vnp_CurrCode":     "VND",
		"vnp_Locale":       "vn",
		"vnp_OrderType":    "other",
		"vnp_ReturnUrl":    s.Cfg.VNPay.ReturnURL,
		"vnp_CreateDate":   time.Now().Format("20060102150405"),
		utils.VnpAmount:    strconv.FormatInt(int64(amount)*100, 10),
		utils.VnpIPAddr:    clientIP,
		utils.VnpTxnRef:    booking.BookingCode,
		utils.VnpOrderInfo: "Thanh toan don hang:" + booking.BookingCode,
	}
	if bankCode != "" {
		params[utils.VnpBankCode] = bankCode
	}

	return utils.BuildPaymentURL(s.Cfg.VNPay.PayURL, s.Cfg.VNPay.HashSecret, params), nil
}

// CompletePayment reconciles a successful gateway callback: the signature
// is verified before anything else is trusted, the booking is marked paid,
// the invoice stamped, an audit row written and every room of the booking
// released to AVAILABLE. Replays of an already-paid booking are a no-op.
func (s *PaymentService) CompletePayment(params map[string]string) error {
	if !utils.VerifyCallbackSignature(s.Cfg.VNPay.HashSecret, params) {
		return apperrors.ErrInvalidSignature
	}

	txnRef := params[utils.VnpTxnRef]

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := lockForUpdate(tx).Where("booking_code = ?", txnRef).First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve booking: %w", err)
		}

		if booking.IsPaid {
			log.Info().Str("txnRef", txnRef).Msg("callback replay for paid booking, skipping")
			return nil
		}

		var invoice models.Invoice
		err = tx.Where("booking_id = ?", booking.ID).First(&invoice).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvoiceNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve invoice: %w", err)
		}

		if err := tx.Model(&booking).Update("is_paid", true).Error; err != nil {
			return fmt.Errorf("failed to mark booking paid: %w", err)
		}

		now := time.Now()
		if err := tx.Model(&invoice).Update("paid_at", &now).Error; err != nil {
			return fmt.Errorf("failed to stamp invoice: %w", err)
		}

		raw, _ := json.Marshal(params)
		payment := models.Payment{
			BookingID:     booking.ID,
			TxnRef:        txnRef,
			Amount:        invoice.TotalAmount,
			BankCode:      params[utils.VnpBankCode],
			ResponseCode:  params[utils.VnpResponseCode],
			GatewayParams: datatypes.JSON(raw),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}

		var details []models.BookingDetail
		if err := tx.Where("booking_id = ?", booking.ID).Find(&details).Error; err != nil {
			return fmt.Errorf("failed to load details: %w", err)
		}
		for _, detail := range details {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", detail.RoomID).
				Update("status", models.RoomAvailable).Error; err != nil {
				return fmt.Errorf("failed to release room: %w", err)
			}
		}

		return nil
	})
}
