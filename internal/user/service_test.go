package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

type fakeUserRepo struct {
	byEmail map[string]*User
	updated int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*User)}
}

func (f *fakeUserRepo) Create(u *User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) Update(u *User) error {
	f.updated++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(f.byEmail)), nil
}

func (f *fakeUserRepo) CountByRole(role string) (int64, error) {
	var count int64
	for _, u := range f.byEmail {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, body)
	return nil
}

func initTestCrypto(t *testing.T) {
	t.Helper()
	t.Setenv("CRYPTO_KEY", "01234567890123456789012345678901")
	config.InitCrypto()
}

func newTestService(repo UserRepository, mailer *fakeMailer, now time.Time) *userService {
	return &userService{
		repo:   repo,
		mailer: mailer,
		now:    func() time.Time { return now },
	}
}

func TestRegisterAndVerify(t *testing.T) {
	initTestCrypto(t)
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, mailer, now)

	email, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "Asha@Example.com",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if email != "asha@example.com" {
		t.Errorf("email should be normalized, got %q", email)
	}

	stored := repo.byEmail["asha@example.com"]
	if stored == nil {
		t.Fatal("user was not persisted")
	}
	if stored.IsVerified {
		t.Error("new account must start unverified")
	}
	if stored.Password == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if stored.OTP == "" {
		t.Fatal("an OTP must be stored")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("verification mail not sent, got %d", len(mailer.sent))
	}

	otp, err := config.Decrypt(stored.OTP)
	if err != nil {
		t.Fatalf("stored OTP should decrypt: %v", err)
	}
	if len(otp) != 6 {
		t.Errorf("OTP should be 6 digits, got %q", otp)
	}

	u, err := svc.VerifyOTP(context.Background(), "asha@example.com", otp)
	if err != nil {
		t.Fatalf("VerifyOTP failed: %v", err)
	}
	if !u.IsVerified {
		t.Error("verification must mark the account verified")
	}
	if u.OTP != "" || u.OTPExpiresAt != nil {
		t.Error("verification must clear the stored OTP")
	}
	if u.Streak != 1 {
		t.Errorf("verification must seed the streak at 1, got %d", u.Streak)
	}
}

func TestRegisterRejectsVerifiedDuplicate(t *testing.T) {
	initTestCrypto(t)
	repo := newFakeUserRepo()
	repo.byEmail["asha@example.com"] = &User{
		ID: uuid.New(), Email: "asha@example.com", IsVerified: true,
	}
	svc := newTestService(repo, &fakeMailer{}, time.Now())

	_, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Asha", Email: "asha@example.com", Password: "pw",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("want ErrUserExists, got %v", err)
	}
}

func TestRegisterReissuesOTPForUnverified(t *testing.T) {
	initTestCrypto(t)
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	now := time.Now()
	svc := newTestService(repo, mailer, now)

	if _, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Asha", Email: "asha@example.com", Password: "pw-one",
	}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	firstOTP := repo.byEmail["asha@example.com"].OTP

	if _, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Asha", Email: "asha@example.com", Password: "pw-two",
	}); err != nil {
		t.Fatalf("second Register failed: %v", err)
	}

	stored := repo.byEmail["asha@example.com"]
	if stored.OTP == firstOTP {
		t.Error("re-registration must issue a fresh OTP")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw-two")); err != nil {
		t.Error("re-registration must update the password")
	}
	if len(mailer.sent) != 2 {
		t.Errorf("want 2 mails, got %d", len(mailer.sent))
	}
}

func TestRegisterAdminRoleFromEnv(t *testing.T) {
	initTestCrypto(t)
	t.Setenv("ADMIN_EMAIL", "Head@School.edu")
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeMailer{}, time.Now())

	if _, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Head", Email: "head@school.edu", Password: "pw",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got := repo.byEmail["head@school.edu"].Role; got != RoleAdmin {
		t.Errorf("admin email must get the admin role, got %q", got)
	}
}

func TestVerifyOTPExpired(t *testing.T) {
	initTestCrypto(t)
	repo := newFakeUserRepo()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeMailer{}, now)

	if _, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Asha", Email: "asha@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	otp, _ := config.Decrypt(repo.byEmail["asha@example.com"].OTP)

	// Time travels past the 10-minute window.
	svc.now = func() time.Time { return now.Add(11 * time.Minute) }

	if _, err := svc.VerifyOTP(context.Background(), "asha@example.com", otp); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("want ErrInvalidOTP for an expired code, got %v", err)
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	initTestCrypto(t)
	repo := newFakeUserRepo()
	svc := newTestService(repo, &fakeMailer{}, time.Now())

	if _, err := svc.Register(context.Background(), RegisterRequest{
		FirstName: "Asha", Email: "asha@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.VerifyOTP(context.Background(), "asha@example.com", "000000"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("want ErrInvalidOTP, got %v", err)
	}
}

func TestLoginChecksAndStreak(t *testing.T) {
	initTestCrypto(t)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	day := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	seed := func(verified bool, streak int, lastLogin *time.Time) *fakeUserRepo {
		repo := newFakeUserRepo()
		repo.byEmail["asha@example.com"] = &User{
			ID: uuid.New(), Email: "asha@example.com", Password: string(hashed),
			IsVerified: verified, Streak: streak, LastLoginAt: lastLogin,
		}
		return repo
	}

	t.Run("WrongPassword", func(t *testing.T) {
		svc := newTestService(seed(true, 0, nil), &fakeMailer{}, day)
		if _, err := svc.Login(context.Background(), "asha@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := newTestService(newFakeUserRepo(), &fakeMailer{}, day)
		if _, err := svc.Login(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("want ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unverified", func(t *testing.T) {
		svc := newTestService(seed(false, 0, nil), &fakeMailer{}, day)
		if _, err := svc.Login(context.Background(), "asha@example.com", "pw"); !errors.Is(err, ErrNotVerified) {
			t.Fatalf("want ErrNotVerified, got %v", err)
		}
	})

	t.Run("FirstLoginSeedsStreak", func(t *testing.T) {
		svc := newTestService(seed(true, 0, nil), &fakeMailer{}, day)
		u, err := svc.Login(context.Background(), "asha@example.com", "pw")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if u.Streak != 1 {
			t.Errorf("want streak 1, got %d", u.Streak)
		}
	})

	t.Run("ConsecutiveDayIncrements", func(t *testing.T) {
		yesterday := day.AddDate(0, 0, -1)
		svc := newTestService(seed(true, 3, &yesterday), &fakeMailer{}, day)
		u, _ := svc.Login(context.Background(), "asha@example.com", "pw")
		if u.Streak != 4 {
			t.Errorf("want streak 4, got %d", u.Streak)
		}
	})

	t.Run("SameDayNoChange", func(t *testing.T) {
		earlier := day.Add(-3 * time.Hour)
		svc := newTestService(seed(true, 3, &earlier), &fakeMailer{}, day)
		u, _ := svc.Login(context.Background(), "asha@example.com", "pw")
		if u.Streak != 3 {
			t.Errorf("want streak 3, got %d", u.Streak)
		}
	})

	t.Run("MissedDayDecrements", func(t *testing.T) {
		lastWeek := day.AddDate(0, 0, -5)
		svc := newTestService(seed(true, 3, &lastWeek), &fakeMailer{}, day)
		u, _ := svc.Login(context.Background(), "asha@example.com", "pw")
		if u.Streak != 2 {
			t.Errorf("want streak 2, got %d", u.Streak)
		}
	})

	t.Run("MissedDayFloorsAtZero", func(t *testing.T) {
		lastWeek := day.AddDate(0, 0, -5)
		svc := newTestService(seed(true, 0, &lastWeek), &fakeMailer{}, day)
		u, _ := svc.Login(context.Background(), "asha@example.com", "pw")
		if u.Streak != 0 {
			t.Errorf("streak must floor at zero, got %d", u.Streak)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	initTestCrypto(t)
	hashed, _ := bcrypt.GenerateFromPassword([]byte("old-pw"), bcrypt.DefaultCost)
	repo := newFakeUserRepo()
	id := uuid.New()
	repo.byEmail["asha@example.com"] = &User{
		ID: id, Email: "asha@example.com", FirstName: "Asha", LastName: "Verma",
		Password: string(hashed), IsVerified: true,
	}
	svc := newTestService(repo, &fakeMailer{}, time.Now())

	u, err := svc.UpdateProfile(context.Background(), id.String(), UpdateProfileRequest{
		FirstName: "Aasha",
		Password:  "new-pw",
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if u.FirstName != "Aasha" {
		t.Errorf("first name not updated: %q", u.FirstName)
	}
	if u.LastName != "Verma" {
		t.Errorf("empty fields must keep their value, got %q", u.LastName)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-pw")); err != nil {
		t.Error("password must be re-hashed on change")
	}
}
