package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"managehotel/apperrors"
	"managehotel/models"
)

// ProductService is the thin catalog layer the ancillary-sales flow and
// the invoice calculator read from.
type ProductService struct {
	DB *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{DB: db}
}

func (s *ProductService) Create(product models.Product) (models.Product, error) {
	if err := s.DB.Create(&product).Error; err != nil {
		return product, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Order("title ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(id uint) (models.Product, error) {
	var product models.Product
	err := s.DB.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return product, apperrors.ErrProductNotFound
	}
	if err != nil {
		return product, fmt.Errorf("failed to resolve product: %w", err)
	}
	return product, nil
}
