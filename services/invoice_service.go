package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"managehotel/apperrors"
	"managehotel/models"
)

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

type ServiceLine struct {
	ProductTitle string  `json:"productTitle"`
	Price        float64 `json:"price"`
	Amount       int     `json:"amount"`
	Total        float64 `json:"total"`
}

type InvoiceView struct {
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	CheckIn       time.Time     `json:"checkIn"`
	CheckOut      time.Time     `json:"checkOut"`
	NightCount    int           `json:"nightCount"`
	RoomNo        string        `json:"roomNo"`
	Services      []ServiceLine `json:"services"`
	RoomTotal     float64       `json:"roomTotal"`
	ServiceTotal  float64       `json:"serviceTotal"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus string        `json:"paymentStatus"`
}

// Preview recomputes the priced summary for a booking and upserts the
// stored invoice keyed on the booking. Calling it repeatedly overwrites the
// same row; it never appends.
func (s *InvoiceService) Preview(bookingCode string) (InvoiceView, error) {
	var view InvoiceView

	var booking models.Booking
	err := s.DB.Preload("User").Where("booking_code = ?", bookingCode).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return view, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return view, fmt.Errorf("failed to resolve booking: %w", err)
	}

	var details []models.BookingDetail
	if err := s.DB.Preload("Room").
		Where("booking_id = ?", booking.ID).
		Order("id ASC").
		Find(&details).Error; err != nil {
		return view, fmt.Errorf("failed to load booking details: %w", err)
	}

	var services []models.Service
	if err := s.DB.Preload("Product").
		Where("booking_id = ?", booking.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return view, fmt.Errorf("failed to load services: %w", err)
	}

	roomTotal := 0.0
	seen := map[int]bool{}
	roomNos := make([]string, 0, len(details))
	for _, detail := range details {
		roomTotal += detail.Room.Price * float64(detail.Unit)
		if !seen[detail.Room.RoomNo] {
			seen[detail.Room.RoomNo] = true
			roomNos = append(roomNos, strconv.Itoa(detail.Room.RoomNo))
		}
	}

	lines := make([]ServiceLine, 0, len(services))
	serviceTotal := 0.0
	for _, svc := range services {
		total := float64(svc.Amount) * svc.Product.Price
		serviceTotal += total
		lines = append(lines, ServiceLine{
			ProductTitle: svc.Product.Title,
			Price:        svc.Price,
			Amount:       svc.Amount,
			Total:        total,
		})
	}

	totalAmount := roomTotal + serviceTotal

	invoice := models.Invoice{
		BookingID:     booking.ID,
		RoomAmount:    roomTotal,
		ServiceAmount: serviceTotal,
		TotalAmount:   totalAmount,
	}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"room_amount", "service_amount", "total_amount", "updated_at"}),
	}).Create(&invoice).Error; err != nil {
		return view, fmt.Errorf("failed to upsert invoice: %w", err)
	}

	paymentStatus := "Unpaid"
	if booking.IsPaid {
		paymentStatus = "Paid"
	}

	view = InvoiceView{
		CustomerName:  booking.User.FullName,
		CustomerPhone: booking.User.PhoneNumber,
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		NightCount:    calendarNights(booking.CheckIn, booking.CheckOut),
		RoomNo:        strings.Join(roomNos, ", "),
		Services:      lines,
		RoomTotal:     roomTotal,
		ServiceTotal:  serviceTotal,
		TotalAmount:   totalAmount,
		PaymentStatus: paymentStatus,
	}
	return view, nil
}
