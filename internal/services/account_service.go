package services

import (
	"context"
	"errors"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("an account with this email already exists")

type AccountService struct {
	DB *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db}
}

func (s *AccountService) Signup(ctx context.Context, req *dtos.SignupRequest) (*models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	account := &models.Account{
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
	}
	if err := s.DB.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
