package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"investlion/config"
	"investlion/internal/auth"
	"investlion/internal/domain"
	"investlion/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneExists  = errors.New("phone already registered")
	ErrInvalidPhone = errors.New("enter a valid 10-digit phone number")
	ErrInvalidCreds = errors.New("invalid phone or password")
	ErrUserDisabled = errors.New("account disabled")
)

// AuthUserStore is the subset of the user repository the auth service needs.
type AuthUserStore interface {
	CreateWithInvite(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
}

type AuthService struct {
	cfg   *config.Config
	users AuthUserStore
}

func NewAuthService(cfg *config.Config, users AuthUserStore) *AuthService {
	return &AuthService{cfg: cfg, users: users}
}

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips formatting and returns the bare 10-digit national
// number, e.g. "3001234567". A leading 0 or country prefix is dropped.
func NormalizePhone(s string) (string, error) {
	s = nonDigits.ReplaceAllString(s, "")
	s = strings.TrimPrefix(s, "92")
	s = strings.TrimPrefix(s, "0")
	if len(s) != 10 {
		return "", ErrInvalidPhone
	}
	return s, nil
}

// newInviteCode returns a 6-char uppercase alphanumeric invite code.
func newInviteCode() (string, error) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}

// Register creates the profile and its invite-code mapping atomically and
// returns the user with a token pair. The synthetic email derived from the
// phone is the stored login identifier convention.
func (s *AuthService) Register(phone, password, referredBy string) (*models.User, string, string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return nil, "", "", err
	}
	fullPhone := domain.PhonePrefix + digits
	_, err = s.users.GetByPhone(fullPhone)
	if err == nil {
		return nil, "", "", ErrPhoneExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Phone:        fullPhone,
		Email:        digits + "@" + domain.EmailDomain,
		PasswordHash: string(hash),
		ReferredBy:   strings.ToUpper(strings.TrimSpace(referredBy)),
		Status:       domain.UserStatusActive,
	}
	for i := 0; i < 10; i++ {
		code, err := newInviteCode()
		if err != nil {
			return nil, "", "", err
		}
		u.InviteCode = code
		err = s.users.CreateWithInvite(u)
		if err == nil {
			break
		}
		// only an invite-code collision is worth a fresh code; anything
		// else (store down, constraint on another column) fails outright
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", "", err
		}
		if i == 9 {
			return nil, "", "", fmt.Errorf("failed to register after retries: %w", err)
		}
	}
	access, refresh, err := s.tokens(u)
	if err != nil {
		return u, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(phone, password string) (*models.User, string, string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	u, err := s.users.GetByPhone(domain.PhonePrefix + digits)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if !u.IsActive() {
		return nil, "", "", ErrUserDisabled
	}
	access, refresh, err := s.tokens(u)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) RefreshToken(refreshToken string) (string, string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", err
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return "", "", err
	}
	if !u.IsActive() {
		return "", "", ErrUserDisabled
	}
	return s.tokens(u)
}

func (s *AuthService) tokens(u *models.User) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Phone, u.IsAdmin)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return access, "", err
	}
	return access, refresh, nil
}
