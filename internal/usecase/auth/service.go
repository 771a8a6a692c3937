package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobskills/internal/domain/user"
	"jobskills/internal/infrastructure/mail"
	"jobskills/internal/pkg/googleauth"
	"jobskills/internal/pkg/jwt"
	"jobskills/internal/pkg/otp"
)

var (
	ErrUserExists        = errors.New("user already exists")
	ErrGoogleAccount     = errors.New("email registered with google login")
	ErrLocalAccount      = errors.New("email registered with local login")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyVerified   = errors.New("user already verified")
	ErrNoOTP             = errors.New("no otp found")
	ErrOTPExpired        = errors.New("otp expired")
	ErrOTPMismatch       = errors.New("invalid otp")
	ErrNotVerified       = errors.New("email not verified")
	ErrPasswordlessUser  = errors.New("account has no password")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidInput      = errors.New("invalid input")
	ErrGoogleUnavailable = errors.New("google login not configured")
	ErrInternal          = errors.New("internal error")
)

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type Service struct {
	users  user.Repository
	mailer mail.Sender
	tokens jwt.Service
	google googleauth.Verifier
	logger *log.Logger

	dev bool
	now func() time.Time
}

func NewService(users user.Repository, mailer mail.Sender, tokens jwt.Service, google googleauth.Verifier, logger *log.Logger, dev bool) *Service {
	return &Service{
		users:  users,
		mailer: mailer,
		tokens: tokens,
		google: google,
		logger: logger,
		dev:    dev,
		now:    time.Now,
	}
}

// Signup creates an unverified local account and emails a one-time code.
// The returned code is non-empty only in development mode, where the client
// may show it instead of relying on mail delivery.
func (s *Service) Signup(ctx context.Context, in SignupInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return "", ErrInvalidInput
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if existing.Provider == user.ProviderGoogle {
			return "", ErrGoogleAccount
		}
		return "", ErrUserExists
	}
	if !errors.Is(err, user.ErrNotFound) {
		return "", ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrInternal
	}

	code, err := otp.Generate()
	if err != nil {
		return "", ErrInternal
	}

	u := user.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Provider:     user.ProviderLocal,
		Verified:     false,
		OTP:          code,
		OTPExpiry:    s.now().Add(otp.TTL),
		Skills:       []string{},
		ApplyLogs:    []user.ApplyLog{},
		SentJobKeys:  []string{},
		Settings:     user.DefaultSettings(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", ErrInternal
	}

	s.deliverOTP(ctx, email, code, "Your OTP Code - JobSkills",
		fmt.Sprintf("Welcome to JobSkills! Your OTP is %s. It will expire in 10 minutes.", code))

	if s.dev {
		return code, nil
	}
	return "", nil
}

func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}

	if u.Verified {
		return ErrAlreadyVerified
	}
	if !u.HasOTP() {
		return ErrNoOTP
	}
	if s.now().After(u.OTPExpiry) {
		return ErrOTPExpired
	}
	if u.OTP != code {
		return ErrOTPMismatch
	}

	u.Verified = true
	u.ClearOTP()
	if err := s.users.Update(ctx, u); err != nil {
		return ErrInternal
	}
	return nil
}

// ResendOTP supersedes any pending code with a fresh one.
func (s *Service) ResendOTP(ctx context.Context, email string) (string, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternal
	}

	code, err := otp.Generate()
	if err != nil {
		return "", ErrInternal
	}

	u.OTP = code
	u.OTPExpiry = s.now().Add(otp.TTL)
	if err := s.users.Update(ctx, u); err != nil {
		return "", ErrInternal
	}

	s.deliverOTP(ctx, u.Email, code, "Your New OTP Code - JobSkills",
		fmt.Sprintf("Your new OTP is %s. It will expire in 10 minutes.", code))

	if s.dev {
		return code, nil
	}
	return "", nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, user.User, error) {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", user.User{}, ErrUserNotFound
		}
		return "", user.User{}, ErrInternal
	}

	if !u.Verified {
		return "", user.User{}, ErrNotVerified
	}
	if u.PasswordHash == "" {
		return "", user.User{}, ErrPasswordlessUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", user.User{}, ErrInvalidPassword
	}

	token, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		return "", user.User{}, ErrInternal
	}
	return token, u, nil
}

// GoogleLogin verifies the identity-provider token and reuses or creates the
// account keyed by email. A locally registered email is rejected so the two
// provider types never share an account.
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (string, user.User, error) {
	if s.google == nil {
		return "", user.User{}, ErrGoogleUnavailable
	}

	info, err := s.google.Verify(ctx, idToken)
	if err != nil {
		if errors.Is(err, googleauth.ErrNotConfigured) {
			return "", user.User{}, ErrGoogleUnavailable
		}
		return "", user.User{}, ErrInvalidInput
	}

	email := normalizeEmail(info.Email)
	u, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		u = user.User{
			ID:          uuid.New().String(),
			Name:        info.Name,
			Email:       email,
			Provider:    user.ProviderGoogle,
			Picture:     info.Picture,
			Verified:    true,
			Skills:      []string{},
			ApplyLogs:   []user.ApplyLog{},
			SentJobKeys: []string{},
			Settings:    user.DefaultSettings(),
		}
		if err := s.users.Create(ctx, u); err != nil {
			return "", user.User{}, ErrInternal
		}
	case err != nil:
		return "", user.User{}, ErrInternal
	case u.Provider != user.ProviderGoogle:
		return "", user.User{}, ErrLocalAccount
	}

	token, err := s.tokens.GenerateToken(u.ID)
	if err != nil {
		return "", user.User{}, ErrInternal
	}
	return token, u, nil
}

// deliverOTP logs the code and tries to mail it; delivery failure is logged
// and does not fail the calling operation.
func (s *Service) deliverOTP(ctx context.Context, email, code, subject, body string) {
	if s.logger != nil {
		s.logger.Printf("[Auth] OTP for %s: %s", email, code)
	}
	if err := s.mailer.SendText(ctx, email, subject, body); err != nil && s.logger != nil {
		s.logger.Printf("[Auth] OTP mail failed for %s: %v", email, err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
