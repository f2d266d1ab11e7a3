package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managehotel/apperrors"
	"managehotel/models"
	"managehotel/services"
)

func TestInvoicePreview_BookingNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInvoiceService(db)

	_, err := svc.Preview("BK-MISSING1")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}

func TestInvoicePreview_RoomTotalOnly(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	bookings := newBookingService(db)
	invoices := services.NewInvoiceService(db)

	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	view, err := invoices.Preview(booking.BookingCode)
	require.NoError(t, err)

	assert.Equal(t, 2, view.NightCount)
	assert.Equal(t, "101", view.RoomNo)
	assert.Equal(t, 300000.0, view.RoomTotal)
	assert.Equal(t, 0.0, view.ServiceTotal)
	assert.Equal(t, 300000.0, view.TotalAmount)
	assert.Equal(t, "Unpaid", view.PaymentStatus)
	assert.Equal(t, "Nguyen Van A", view.CustomerName)
	assert.Empty(t, view.Services)
}

func TestInvoicePreview_WithServices(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	seedRoom(t, db, 102, 250000)
	product := seedProduct(t, db, "Mineral Water", 15000, 10)

	bookings := newBookingService(db)
	invoices := services.NewInvoiceService(db)
	sales := services.NewServiceService(db)

	booking, err := bookings.Create(bookingRequest([]int{101, 102}, "2024-06-01", "2024-06-04"))
	require.NoError(t, err)

	_, err = sales.Buy(booking.BookingCode, product.ID, 3)
	require.NoError(t, err)

	view, err := invoices.Preview(booking.BookingCode)
	require.NoError(t, err)

	// 3 nights: (150000 + 250000) * 3
	assert.Equal(t, 1200000.0, view.RoomTotal)
	assert.Equal(t, "101, 102", view.RoomNo)
	require.Len(t, view.Services, 1)
	assert.Equal(t, "Mineral Water", view.Services[0].ProductTitle)
	assert.Equal(t, 45000.0, view.Services[0].Total)
	assert.Equal(t, 45000.0, view.ServiceTotal)
	assert.Equal(t, view.RoomTotal+view.ServiceTotal, view.TotalAmount)
}

func TestInvoicePreview_UpsertsSingleRow(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	bookings := newBookingService(db)
	invoices := services.NewInvoiceService(db)

	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	_, err = invoices.Preview(booking.BookingCode)
	require.NoError(t, err)
	_, err = invoices.Preview(booking.BookingCode)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var invoice models.Invoice
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&invoice).Error)
	assert.Equal(t, 300000.0, invoice.TotalAmount)
	assert.Equal(t, 300000.0, invoice.RoomAmount)
	assert.Equal(t, 0.0, invoice.ServiceAmount)
}

func TestInvoicePreview_PaidStatus(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	bookings := newBookingService(db)
	invoices := services.NewInvoiceService(db)

	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("is_paid", true).Error)

	view, err := invoices.Preview(booking.BookingCode)
	require.NoError(t, err)
	assert.Equal(t, "Paid", view.PaymentStatus)
}
