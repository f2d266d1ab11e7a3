package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managehotel/apperrors"
	"managehotel/models"
	"managehotel/services"
)

func TestFindByIdentity(t *testing.T) {
	db := newTestDB(t)
	users := services.NewUserService(db)

	_, err := users.FindByIdentity("079123456789")
	assert.ErrorIs(t, err, apperrors.ErrUserNotExisted)

	seedRoom(t, db, 101, 150000)
	bookings := newBookingService(db)
	_, err = bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	user, err := users.FindByIdentity("079123456789")
	require.NoError(t, err)
	assert.Equal(t, "Nguyen Van A", user.FullName)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestListStaff_ExcludesGuests(t *testing.T) {
	db := newTestDB(t)
	users := services.NewUserService(db)

	seedStaff(t, db, "admin", "s3cret", models.RoleAdmin)
	seedStaff(t, db, "reception", "s3cret", models.RoleReceptionist)

	seedRoom(t, db, 101, 150000)
	bookings := newBookingService(db)
	_, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	staff, err := users.ListStaff()
	require.NoError(t, err)
	require.Len(t, staff, 2)
	for _, u := range staff {
		assert.NotEqual(t, models.RoleCustomer, u.Role)
	}
}
