package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"managehotel/config"
	"managehotel/models"
	"managehotel/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.Migrate(db))
	return db
}

func newBookingService(db *gorm.DB) *services.BookingService {
	return services.NewBookingService(db, services.NewUserService(db))
}

func seedRoom(t *testing.T, db *gorm.DB, roomNo int, price float64) models.Room {
	t.Helper()
	room := models.Room{RoomNo: roomNo, Type: "A", Price: price, MaxNum: 2, Status: models.RoomAvailable}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{Title: title, Price: price, Amount: stock}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func bookingRequest(roomNos []int, checkIn, checkOut string) services.CreateBookingRequest {
	return services.CreateBookingRequest{
		FullName:       "Nguyen Van A",
		PhoneNumber:    "0900000001",
		IdentityNumber: "079123456789",
		Address:        "1 Main St",
		Gender:         "M",
		Nationality:    "VN",
		GuestNum:       2,
		CheckIn:        mustDate(checkIn),
		CheckOut:       mustDate(checkOut),
		RoomNos:        roomNos,
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
