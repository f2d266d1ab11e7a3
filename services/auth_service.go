package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"managehotel/apperrors"
	"managehotel/config"
	"managehotel/models"
)

type AuthService struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewAuthService(db *gorm.DB, cfg config.Config) *AuthService {
	return &AuthService{DB: db, Cfg: cfg}
}

type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Login authenticates staff by identity number and password and issues a
// role-scoped JWT.
func (s *AuthService) Login(identityNumber, password string) (string, models.User, error) {
	var user models.User
	err := s.DB.Where("identity_number = ?", identityNumber).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", user, apperrors.ErrUnauthenticated
	}
	if err != nil {
		return "", user, fmt.Errorf("failed to resolve user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", user, apperrors.ErrUnauthenticated
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.IdentityNumber,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.Cfg.Auth.TokenTTLHours) * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Cfg.Auth.JWTSecret))
	if err != nil {
		return "", user, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, user, nil
}

// ParseToken validates a bearer token and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.Cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apperrors.ErrUnauthenticated
	}
	return claims, nil
}
