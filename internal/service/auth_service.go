package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"student-assist/internal/auth"
	"student-assist/internal/model"
	"student-assist/internal/repository"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.Tokens
}

func NewAuthService(userRepo *repository.UserRepository, tokens *auth.Tokens) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates an account. Usernames are trimmed and lowercased before
// the uniqueness check.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password required")
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return nil, err
	}
	user := model.User{
		Username:     username,
		Salt:         salt,
		PasswordHash: auth.HashPassword(password, salt),
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string, now time.Time) (string, *model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err == gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("invalid credentials")
	}
	if err != nil {
		return "", nil, err
	}
	if !auth.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, now)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// UserByID resolves the authenticated subject of a verified token.
func (s *AuthService) UserByID(ctx context.Context, id uint) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// SetTelegramChat links or unlinks the digest chat for a user.
func (s *AuthService) SetTelegramChat(ctx context.Context, userID uint, chatID *int64) error {
	return s.userRepo.SetTelegramChat(ctx, userID, chatID)
}
