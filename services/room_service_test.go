package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managehotel/apperrors"
	"managehotel/models"
	"managehotel/services"
)

func TestRoomCreate(t *testing.T) {
	db := newTestDB(t)
	rooms := services.NewRoomService(db)

	created, err := rooms.Create(models.Room{RoomNo: 101, Type: "A", Price: 150000, MaxNum: 2})
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, created.Status, "status defaults to AVAILABLE")

	_, err = rooms.Create(models.Room{RoomNo: 101, Type: "B", Price: 200000, MaxNum: 4})
	assert.ErrorIs(t, err, apperrors.ErrRoomConflict)
}

func TestRoomGetAll_SortedByNumber(t *testing.T) {
	db := newTestDB(t)
	rooms := services.NewRoomService(db)
	for _, no := range []int{301, 101, 202} {
		_, err := rooms.Create(models.Room{RoomNo: no, Type: "A", Price: 100000, MaxNum: 2})
		require.NoError(t, err)
	}

	all, err := rooms.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{101, 202, 301}, []int{all[0].RoomNo, all[1].RoomNo, all[2].RoomNo})
}

func TestRoomUpdate(t *testing.T) {
	db := newTestDB(t)
	rooms := services.NewRoomService(db)
	_, err := rooms.Create(models.Room{RoomNo: 101, Type: "A", Price: 150000, MaxNum: 2})
	require.NoError(t, err)

	_, err = rooms.Update(101, models.Room{Price: 180000, Status: models.RoomMaintain})
	require.NoError(t, err)

	room, err := rooms.GetByNumber(101)
	require.NoError(t, err)
	assert.Equal(t, 180000.0, room.Price)
	assert.Equal(t, models.RoomMaintain, room.Status)
	assert.Equal(t, "A", room.Type, "unset fields stay untouched")

	_, err = rooms.Update(999, models.Room{Price: 1})
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestRoomDelete(t *testing.T) {
	db := newTestDB(t)
	rooms := services.NewRoomService(db)
	_, err := rooms.Create(models.Room{RoomNo: 101, Type: "A", Price: 150000, MaxNum: 2})
	require.NoError(t, err)

	require.NoError(t, rooms.Delete(101))
	_, err = rooms.GetByNumber(101)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)

	assert.ErrorIs(t, rooms.Delete(101), apperrors.ErrRoomNotFound)
}

func TestRoomDelete_RefusesRoomWithBookingHistory(t *testing.T) {
	db := newTestDB(t)
	seedRoom(t, db, 101, 150000)

	bookings := newBookingService(db)
	_, err := bookings.Create(bookingRequest([]int{101}, "2024-06-01", "2024-06-03"))
	require.NoError(t, err)

	rooms := services.NewRoomService(db)
	assert.ErrorIs(t, rooms.Delete(101), apperrors.ErrRoomInUse)
}
