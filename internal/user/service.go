package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/mail"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotVerified        = errors.New("email address not verified")
	ErrAlreadyVerified    = errors.New("user already verified")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidInput       = errors.New("invalid user data")
)

const otpTTL = 10 * time.Minute

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (string, error)
	VerifyOTP(ctx context.Context, email, otp string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error)
	GetByID(ctx context.Context, userID string) (*User, error)
}

type userService struct {
	repo   UserRepository
	mailer mail.Service
	now    func() time.Time
}

func NewService(repo UserRepository, mailer mail.Service) UserService {
	return &userService{
		repo:   repo,
		mailer: mailer,
		now:    time.Now,
	}
}

// Register creates an unverified account and emails a one-time code.
// Re-registering an unverified account updates its details and re-issues the
// code; a verified duplicate is rejected.
func (s *userService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	log := config.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || strings.TrimSpace(req.FirstName) == "" {
		return "", ErrInvalidInput
	}

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.IsVerified {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}
	encryptedOTP, err := config.Encrypt(otp)
	if err != nil {
		return "", fmt.Errorf("encrypt OTP: %w", err)
	}
	expires := s.now().Add(otpTTL)

	role := RoleStudent
	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" && email == strings.ToLower(adminEmail) {
		role = RoleAdmin
	}

	u := existing
	if u == nil {
		u = &User{Email: email}
	}
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.PhoneNumber = req.PhoneNumber
	u.Password = string(hashed)
	u.Role = role
	u.IsVerified = false
	u.OTP = encryptedOTP
	u.OTPExpiresAt = &expires

	if existing == nil {
		err = s.repo.Create(u)
	} else {
		err = s.repo.Update(u)
	}
	if err != nil {
		return "", err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", otp)
	if err := s.mailer.Send(ctx, email, "Your Verification Code", body); err != nil {
		// The account is saved; the user can ask for a fresh code by
		// registering again.
		log.WithError(err).Error("failed to send verification email")
		return "", fmt.Errorf("send verification email: %w", err)
	}

	log.Infof("registered user %s (role %s), verification pending", email, role)
	return email, nil
}

// VerifyOTP checks the submitted code against the stored encrypted one and,
// on success, activates the account and seeds the login streak.
func (s *userService) VerifyOTP(ctx context.Context, email, otp string) (*User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.IsVerified {
		return nil, ErrAlreadyVerified
	}

	stored, err := config.Decrypt(u.OTP)
	if err != nil {
		return nil, ErrInvalidOTP
	}
	if otp == "" || stored != otp || u.OTPExpiresAt == nil || s.now().After(*u.OTPExpiresAt) {
		return nil, ErrInvalidOTP
	}

	now := s.now()
	u.IsVerified = true
	u.OTP = ""
	u.OTPExpiresAt = nil
	u.Streak = 1
	u.LastLoginAt = &now

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login authenticates a verified account and advances the login streak.
func (s *userService) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsVerified {
		return nil, ErrNotVerified
	}

	now := s.now()
	u.Streak = nextStreak(u.Streak, u.LastLoginAt, now)
	u.LastLoginAt = &now

	if err := s.repo.Update(u); err != nil {
		// A failed streak write must not block the login itself.
		config.WithContext(ctx).WithError(err).Error("failed to persist login streak")
	}
	return u, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = string(hashed)
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// nextStreak implements the consecutive-day counter: +1 for a next-day
// login, -1 (floored at zero) after a missed day, unchanged within the same
// day, seeded at 1 on the first login ever.
func nextStreak(current int, lastLogin *time.Time, now time.Time) int {
	if lastLogin == nil {
		return 1
	}

	today := truncateToDay(now)
	lastDay := truncateToDay(*lastLogin)
	diffDays := int(today.Sub(lastDay).Hours() / 24)

	switch {
	case diffDays == 0:
		return current
	case diffDays == 1:
		return current + 1
	default:
		if current-1 < 0 {
			return 0
		}
		return current - 1
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
