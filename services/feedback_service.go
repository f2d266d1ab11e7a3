package services

import (
	"fmt"

	"gorm.io/gorm"

	"managehotel/models"
)

type FeedbackService struct {
	DB *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db}
}

func (s *FeedbackService) Create(fb models.Feedback) (models.Feedback, error) {
	if err := s.DB.Create(&fb).Error; err != nil {
		return fb, fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb, nil
}

func (s *FeedbackService) GetAll() ([]models.Feedback, error) {
	var list []models.Feedback
	if err := s.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return list, nil
}
