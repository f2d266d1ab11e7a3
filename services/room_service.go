package services

import (
	"errors"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"managehotel/apperrors"
	"managehotel/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func isDuplicateKeyErr(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}

	var count int64
	if err := s.DB.Model(&models.Room{}).Where("room_no = ?", room.RoomNo).Count(&count).Error; err != nil {
		return room, fmt.Errorf("failed to check room number: %w", err)
	}
	if count > 0 {
		return room, apperrors.ErrRoomConflict
	}

	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return room, apperrors.ErrRoomConflict
		}
		return room, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_no ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByNumber(roomNo int) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_no = ?", roomNo).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, apperrors.ErrRoomNotFound
	}
	if err != nil {
		return room, fmt.Errorf("failed to resolve room: %w", err)
	}
	return room, nil
}

// Update changes rate, type, occupancy or status. Room numbers are
// immutable identifiers and never rewritten here.
func (s *RoomService) Update(roomNo int, updates models.Room) (models.Room, error) {
	room, err := s.GetByNumber(roomNo)
	if err != nil {
		return room, err
	}

	changes := map[string]interface{}{}
	if updates.Type != "" {
		changes["type"] = updates.Type
	}
	if updates.Price > 0 {
		changes["price"] = updates.Price
	}
	if updates.MaxNum > 0 {
		changes["max_num"] = updates.MaxNum
	}
	if updates.Status != "" {
		changes["status"] = updates.Status
	}

	if len(changes) > 0 {
		if err := s.DB.Model(&room).Updates(changes).Error; err != nil {
			return room, fmt.Errorf("failed to update room: %w", err)
		}
	}
	return room, nil
}

// Delete refuses to remove a room that any booking detail still references.
func (s *RoomService) Delete(roomNo int) error {
	room, err := s.GetByNumber(roomNo)
	if err != nil {
		return err
	}

	var detailCount int64
	if err := s.DB.Model(&models.BookingDetail{}).Where("room_id = ?", room.ID).Count(&detailCount).Error; err != nil {
		return fmt.Errorf("failed to check room references: %w", err)
	}
	if detailCount > 0 {
		return apperrors.ErrRoomInUse
	}

	if err := s.DB.Delete(&room).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
