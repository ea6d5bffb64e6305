package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartunibot/unibot-api/internal/constants"
	"github.com/smartunibot/unibot-api/internal/models"
	"github.com/smartunibot/unibot-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("el email ya está registrado")
	ErrInvalidCredentials   = errors.New("credenciales inválidas")
	ErrPasswordTooShort     = errors.New("la contraseña es demasiado corta")
	ErrInvalidSession       = errors.New("sesión inválida")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrFailedToHashPassword = errors.New("no se pudo procesar la contraseña")
)

// AuthService handles registration, login and session lifecycle.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new user account.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials, opens a session and stamps the login time.
func (s *AuthService) Login(input LoginInput) (*models.User, *models.Session, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(strings.ToLower(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(constants.SessionTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Best-effort; a failed stamp must not fail the login
	_ = s.userRepo.StampLastLogin(user.ID, now)

	return user, session, nil
}

// Logout destroys the session for the given token.
func (s *AuthService) Logout(token string) error {
	return s.sessionRepo.Delete(token)
}

// Validate resolves a session token to the owning user's ID. Unknown and
// expired tokens are the same ErrInvalidSession to the caller.
func (s *AuthService) Validate(token string) (uint64, error) {
	session, err := s.sessionRepo.FindValid(token, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrInvalidSession
		}
		return 0, fmt.Errorf("failed to look up session: %w", err)
	}
	return session.UserID, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
