package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managehotel/apperrors"
	"managehotel/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type GuestRequest struct {
	FullName       string
	PhoneNumber    string
	IdentityNumber string
	Address        string
	Gender         string
	Nationality    string
}

// FindOrCreateGuest resolves a guest by identity number, creating one with
// the CUSTOMER role on first booking. Runs inside the caller's transaction.
func (s *UserService) FindOrCreateGuest(tx *gorm.DB, req GuestRequest) (models.User, error) {
	var user models.User
	err := tx.Where("identity_number = ?", req.IdentityNumber).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("failed to look up guest: %w", err)
	}

	user = models.User{
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		IdentityNumber: req.IdentityNumber,
		Address:        req.Address,
		Gender:         req.Gender,
		Nationality:    req.Nationality,
		Role:           models.RoleCustomer,
	}
	if err := tx.Create(&user).Error; err != nil {
		return user, fmt.Errorf("failed to create guest: %w", err)
	}
	return user, nil
}

// ListStaff returns every non-guest account, newest first.
func (s *UserService) ListStaff() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("role <> ?", models.RoleCustomer).Order("id DESC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return users, nil
}

// FindByIdentity resolves a user by identity number.
func (s *UserService) FindByIdentity(identityNumber string) (models.User, error) {
	var user models.User
	err := s.DB.Where("identity_number = ?", identityNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperrors.ErrUserNotExisted
	}
	if err != nil {
		return user, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}
