package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"managehotel/apperrors"
	"managehotel/models"
	"managehotel/utils"
)

// ExtraFeeAmount is the flat per-room surcharge applied when requested at
// check-in. Recorded on the booking detail only; invoicing never reads it.
const ExtraFeeAmount = 0.25

const maxCodeRetries = 5

type BookingService struct {
	DB    *gorm.DB
	Users *UserService
}

func NewBookingService(db *gorm.DB, users *UserService) *BookingService {
	return &BookingService{DB: db, Users: users}
}

type CreateBookingRequest struct {
	FullName       string
	PhoneNumber    string
	IdentityNumber string
	Address        string
	Gender         string
	Nationality    string
	GuestNum       int
	CheckIn        time.Time
	CheckOut       time.Time
	RoomNos        []int
}

type CheckinResult struct {
	BookingCode  string      `json:"bookingCode"`
	CustomerName string      `json:"customerName"`
	Room         models.Room `json:"room"`
	CheckInTime  time.Time   `json:"checkInTime"`
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// calendarNights is the whole-day difference between check-in and
// check-out, independent of clock times.
func calendarNights(checkIn, checkOut time.Time) int {
	return int(dateOnly(checkOut).Sub(dateOnly(checkIn)).Hours() / 24)
}

func uniqueInts(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// lockForUpdate takes row locks on MySQL. SQLite (tests) has no FOR UPDATE
// and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// roomsAvailable decides whether every candidate room is free for the
// requested interval. MAINTAIN anywhere fails the whole set; any other
// status is cross-checked against the room's actual date-ranged bookings.
// Intervals touching at a boundary (checkout day == new check-in day) do
// not conflict. Read-only.
func (s *BookingService) roomsAvailable(tx *gorm.DB, rooms []models.Room, checkIn, checkOut time.Time) (bool, error) {
	for _, room := range rooms {
		if strings.EqualFold(room.Status, models.RoomMaintain) {
			return false, nil
		}

		var details []models.BookingDetail
		if err := tx.Where("room_id = ?", room.ID).Find(&details).Error; err != nil {
			return false, fmt.Errorf("failed to load details for room %d: %w", room.RoomNo, err)
		}

		for _, detail := range details {
			var booking models.Booking
			err := tx.First(&booking, detail.BookingID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return false, fmt.Errorf("failed to load booking %d: %w", detail.BookingID, err)
			}

			if booking.CheckOut.After(checkIn) && booking.CheckIn.Before(checkOut) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Create reserves the requested rooms for the stay as one transaction:
// date validation, room resolution, availability, guest resolve-or-create,
// booking + one detail per room with the rate snapshot, rooms to BOOKED.
func (s *BookingService) Create(req CreateBookingRequest) (models.Booking, error) {
	var result models.Booking

	checkIn := dateOnly(req.CheckIn)
	checkOut := dateOnly(req.CheckOut)
	if !checkOut.After(checkIn) {
		return result, apperrors.ErrInvalidDateRange
	}

	// A room listed twice is still one reservation for it.
	roomNos := uniqueInts(req.RoomNos)

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var rooms []models.Room
		if err := lockForUpdate(tx).Where("room_no IN ?", roomNos).Find(&rooms).Error; err != nil {
			return fmt.Errorf("failed to resolve rooms: %w", err)
		}
		if len(rooms) != len(roomNos) {
			return apperrors.ErrRoomNotFound
		}

		ok, err := s.roomsAvailable(tx, rooms, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrRoomInUse
		}

		user, err := s.Users.FindOrCreateGuest(tx, GuestRequest{
			FullName:       req.FullName,
			PhoneNumber:    req.PhoneNumber,
			IdentityNumber: req.IdentityNumber,
			Address:        req.Address,
			Gender:         req.Gender,
			Nationality:    req.Nationality,
		})
		if err != nil {
			return err
		}

		nights := calendarNights(checkIn, checkOut)

		booking := models.Booking{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			GuestNum: req.GuestNum,
			IsPaid:   false,
			UserID:   user.ID,
		}

		var createErr error
		for attempt := 0; attempt < maxCodeRetries; attempt++ {
			code, genErr := utils.GenerateBookingCode()
			if genErr != nil {
				return fmt.Errorf("failed to generate booking code: %w", genErr)
			}
			booking.BookingCode = code

			createErr = tx.Create(&booking).Error
			if createErr == nil {
				break
			}
			lc := strings.ToLower(createErr.Error())
			if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint") {
				log.Warn().Int("attempt", attempt+1).Msg("booking code collision, retrying")
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		if createErr != nil {
			return fmt.Errorf("failed to create booking after retries: %w", createErr)
		}

		for _, room := range rooms {
			detail := models.BookingDetail{
				BookingID: booking.ID,
				RoomID:    room.ID,
				Price:     room.Price,
				Unit:      nights,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("failed to create detail for room %d: %w", room.RoomNo, err)
			}

			if err := tx.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", models.RoomBooked).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", room.RoomNo, err)
			}
		}

		bookingID = booking.ID
		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	if err := s.DB.
		Preload("User").
		Preload("Details").
		Preload("Details.Room").
		First(&result, bookingID).Error; err != nil {
		return result, fmt.Errorf("failed to reload booking: %w", err)
	}
	return result, nil
}

// Delete removes bookings by code. Existence of every code is checked
// before any mutation; then each booking releases its rooms to AVAILABLE,
// drops its detail rows and is deleted.
func (s *BookingService) Delete(codes []string) error {
	codes = uniqueStrings(codes)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var bookings []models.Booking
		if err := tx.Where("booking_code IN ?", codes).Find(&bookings).Error; err != nil {
			return fmt.Errorf("failed to resolve bookings: %w", err)
		}
		if len(bookings) != len(codes) {
			return apperrors.ErrBookingNotFound
		}

		for _, booking := range bookings {
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

			if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookingDetail{}).Error; err != nil {
				return fmt.Errorf("failed to delete details: %w", err)
			}
			if err := tx.Delete(&booking).Error; err != nil {
				return fmt.Errorf("failed to delete booking: %w", err)
			}
		}
		return nil
	})
}

// FindUnpaidByIdentity lists a guest's bookings still awaiting payment.
func (s *BookingService) FindUnpaidByIdentity(identityNumber string) ([]models.Booking, error) {
	var user models.User
	err := s.DB.Where("identity_number = ?", identityNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotExisted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	var bookings []models.Booking
	if err := s.DB.
		Preload("Details").
		Preload("Details.Room").
		Where("user_id = ? AND is_paid = ?", user.ID, false).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load unpaid bookings: %w", err)
	}
	return bookings, nil
}

// CheckIn transitions a reserved room to OCCUPIED, recording the foreign
// guest flag and the flat extra fee on the booking detail. The room must
// currently be BOOKED, matching the reservation-time status flip.
func (s *BookingService) CheckIn(bookingCode string, roomNo int, isForeign, wantsExtraFee bool) (CheckinResult, error) {
	var result CheckinResult

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Preload("User").Where("booking_code = ?", bookingCode).First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve booking: %w", err)
		}

		var room models.Room
		err = lockForUpdate(tx).Where("room_no = ?", roomNo).First(&room).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve room: %w", err)
		}

		var detail models.BookingDetail
		err = tx.Where("booking_id = ? AND room_id = ?", booking.ID, room.ID).First(&detail).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve booking detail: %w", err)
		}

		if isForeign {
			detail.IsForeign = true
		}
		if wantsExtraFee {
			detail.ExtraFee = ExtraFeeAmount
		}
		if err := tx.Save(&detail).Error; err != nil {
			return fmt.Errorf("failed to update booking detail: %w", err)
		}

		if !strings.EqualFold(room.Status, models.RoomBooked) {
			return apperrors.ErrRoomInUse
		}
		room.Status = models.RoomOccupied
		if err := tx.Save(&room).Error; err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		result = CheckinResult{
			BookingCode:  booking.BookingCode,
			CustomerName: booking.User.FullName,
			Room:         room,
			CheckInTime:  time.Now(),
		}
		return nil
	})
	if txErr != nil {
		return CheckinResult{}, txErr
	}
	return result, nil
}
