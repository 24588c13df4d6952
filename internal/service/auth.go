package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/apperr"
	"github.com/healthyrecipehub/backend/internal/models"
	"github.com/healthyrecipehub/backend/internal/types"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	email     IEmailService
}

func NewAuthService(db *gorm.DB, jwtSecret string, email IEmailService) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		email:     email,
	}
}

// Register creates a user record with default role and preferences and
// returns a signed token. The welcome email is best-effort.
func (s *AuthService) Register(ctx context.Context, email, password, displayName string) (*models.User, string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", apperr.New(apperr.InvalidArgument, "user already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to hash password", err)
	}

	if displayName == "" {
		displayName = "New User"
	}

	now := time.Now()
	user := &models.User{
		ID:                 uuid.New(),
		Email:              email,
		PasswordHash:       string(hash),
		DisplayName:        displayName,
		Role:               models.RoleUser,
		IsActive:           true,
		LastLogin:          &now,
		EmailNotifications: true,
		Theme:              "light",
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "failed to create user", err)
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(user.Email, user.DisplayName); err != nil {
			log.Printf("failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.New(apperr.Unauthenticated, "invalid credentials")
		}
		return nil, "", apperr.Wrap(apperr.Internal, "failed to fetch user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.New(apperr.Unauthenticated, "invalid credentials")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("failed to record login time for %s: %v", user.Email, err)
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "failed to sign token", err)
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Unauthenticated, "invalid token", err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, apperr.New(apperr.Unauthenticated, "invalid token claims")
	}
	return claims, nil
}
