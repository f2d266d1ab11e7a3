package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"managehotel/models"
)

func mysqlDSN(cfg Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DB.User, cfg.DB.Pass, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
	)
}

// ConnectDatabase opens the MySQL connection, runs migrations in
// parent-before-child order and seeds baseline rows.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(mysqlDSN(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	SeedDatabase(db, cfg)
	return db, nil
}

// Migrate runs AutoMigrate for every model. Shared with the test setup,
// which runs it against SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.BookingDetail{},
		&models.Category{},
		&models.Product{},
		&models.Service{},
		&models.Invoice{},
		&models.Payment{},
		&models.Feedback{},
	)
}

// SeedDatabase ensures a default admin and a small room inventory exist.
func SeedDatabase(db *gorm.DB, cfg Config) {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Msg("failed to hash default admin password")
		} else {
			admin := models.User{
				FullName:       "Administrator",
				IdentityNumber: cfg.Auth.AdminUsername,
				Role:           models.RoleAdmin,
				Password:       string(hash),
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Warn().Err(err).Msg("failed to create default admin")
			} else {
				log.Info().Msg("default admin seeded")
			}
		}
	}

	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNo: 101, Type: "A", Price: 150000, MaxNum: 2, Status: models.RoomAvailable},
			{RoomNo: 102, Type: "A", Price: 150000, MaxNum: 2, Status: models.RoomAvailable},
			{RoomNo: 201, Type: "B", Price: 250000, MaxNum: 3, Status: models.RoomAvailable},
			{RoomNo: 202, Type: "B", Price: 250000, MaxNum: 3, Status: models.RoomAvailable},
			{RoomNo: 301, Type: "C", Price: 400000, MaxNum: 4, Status: models.RoomAvailable},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed rooms")
		} else {
			log.Info().Msg("rooms seeded")
		}
	}
}
