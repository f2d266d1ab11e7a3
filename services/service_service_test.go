package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managehotel/apperrors"
	"managehotel/models"
	"managehotel/services"
)

func TestBuyService_Success(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	product := seedProduct(t, db, "Coca Cola", 15000, 10)

	bookings := newBookingService(db)
	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	shop := services.NewServiceService(db)
	purchase, err := shop.Buy(booking.BookingCode, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, booking.ID, purchase.BookingID)
	assert.Equal(t, 3, purchase.Amount)
	assert.Equal(t, 15000.0, purchase.Price, "unit price is snapshotted at purchase time")
	assert.False(t, purchase.BuyDate.IsZero())

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 7, reloaded.Amount)
}

func TestBuyService_NotEnoughStock(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	product := seedProduct(t, db, "Coca Cola", 15000, 2)

	bookings := newBookingService(db)
	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	shop := services.NewServiceService(db)
	_, err = shop.Buy(booking.BookingCode, product.ID, 3)
	assert.ErrorIs(t, err, apperrors.ErrNotEnoughStock)

	// Stock untouched, no purchase row.
	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	assert.Equal(t, 2, reloaded.Amount)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBuyService_Errors(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	product := seedProduct(t, db, "Coca Cola", 15000, 10)

	bookings := newBookingService(db)
	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	shop := services.NewServiceService(db)

	_, err = shop.Buy(booking.BookingCode, product.ID, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

	_, err = shop.Buy("BK-MISSING1", product.ID, 1)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

	_, err = shop.Buy(booking.BookingCode, product.ID+999, 1)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestListByBooking(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)
	beer := seedProduct(t, db, "Beer", 25000, 10)
	water := seedProduct(t, db, "Water", 10000, 10)

	bookings := newBookingService(db)
	booking, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	shop := services.NewServiceService(db)
	_, err = shop.Buy(booking.BookingCode, beer.ID, 2)
	require.NoError(t, err)
	_, err = shop.Buy(booking.BookingCode, water.ID, 1)
	require.NoError(t, err)

	purchases, err := shop.ListByBooking(booking.BookingCode)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, "Beer", purchases[0].Product.Title)
	assert.Equal(t, "Water", purchases[1].Product.Title)

	_, err = shop.ListByBooking("BK-MISSING1")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}
