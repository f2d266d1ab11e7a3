package models

import (
	"time"

	"gorm.io/gorm"
)

type Feedback struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FullName  string         `gorm:"size:255" json:"fullName"`
	Email     string         `gorm:"size:150" json:"email"`
	Content   string         `gorm:"type:text" json:"content"`
	Rating    int            `json:"rating"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
