package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managehotel/apperrors"
	"managehotel/models"
)

type ServiceService struct {
	DB *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db}
}

// Buy sells amount units of a product to a booking: stock is checked and
// decremented, and a purchase row with the price snapshot is created, all
// in one transaction.
func (s *ServiceService) Buy(bookingCode string, productID uint, amount int) (models.Service, error) {
	var purchase models.Service

	if amount <= 0 {
		return purchase, apperrors.ErrInvalidRequest
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Where("booking_code = ?", bookingCode).First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve booking: %w", err)
		}

		var product models.Product
		err = lockForUpdate(tx).First(&product, productID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve product: %w", err)
		}

		if product.Amount < amount {
			return apperrors.ErrNotEnoughStock
		}
		if err := tx.Model(&product).Update("amount", product.Amount-amount).Error; err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}

		purchase = models.Service{
			BookingID: booking.ID,
			ProductID: product.ID,
			Price:     product.Price,
			Amount:    amount,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to record purchase: %w", err)
		}
		purchase.Product = product
		return nil
	})
	if txErr != nil {
		return models.Service{}, txErr
	}
	return purchase, nil
}

// ListByBooking returns the ancillary purchases of a booking.
func (s *ServiceService) ListByBooking(bookingCode string) ([]models.Service, error) {
	var booking models.Booking
	err := s.DB.Where("booking_code = ?", bookingCode).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve booking: %w", err)
	}

	var services []models.Service
	if err := s.DB.Preload("Product").Where("booking_id = ?", booking.ID).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
