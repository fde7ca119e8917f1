package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/email"
	"github.com/ErlanBelekov/job-portal/internal/metrics"
	"github.com/ErlanBelekov/job-portal/internal/repository"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultJWTTTL = 24 * time.Hour
	defaultOTPTTL = 5 * time.Minute

	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt ignores anything past 72 bytes
)

type AuthUsecase struct {
	users  repository.UserRepository
	otps   repository.PasswordResetStore
	email  email.Sender
	jwtKey []byte
	jwtTTL time.Duration
	otpTTL time.Duration
	now    func() time.Time
}

func NewAuthUsecase(users repository.UserRepository, otps repository.PasswordResetStore, emailSender email.Sender, jwtKey []byte, otpTTL time.Duration) *AuthUsecase {
	if otpTTL <= 0 {
		otpTTL = defaultOTPTTL
	}
	return &AuthUsecase{
		users:  users,
		otps:   otps,
		email:  emailSender,
		jwtKey: jwtKey,
		jwtTTL: defaultJWTTTL,
		otpTTL: otpTTL,
		now:    time.Now,
	}
}

// Session is a user together with a freshly signed access token.
type Session struct {
	User  *domain.User
	Token string
}

type RegisterInput struct {
	Email    string
	FullName string
	Password string
	Phone    *string
}

func (u *AuthUsecase) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	user, err := u.users.CreateUser(ctx, domain.NewUser{
		Email:    input.Email,
		FullName: input.FullName,
		Password: input.Password,
		Phone:    input.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u.session(user)
}

func (u *AuthUsecase) Login(ctx context.Context, emailAddr, password string) (*Session, error) {
	user, err := u.users.ValidateUser(ctx, emailAddr, password)
	if err != nil {
		return nil, fmt.Errorf("validate user: %w", err)
	}
	return u.session(user)
}

func (u *AuthUsecase) Me(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := u.users.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ForgotPassword emails a reset code to emailAddr if it belongs to a user. Unknown addresses
// are accepted without error so the endpoint does not reveal which emails are registered.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, emailAddr string) error {
	if _, err := u.users.GetUserByEmail(ctx, emailAddr); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}

	if err = u.otps.StorePasswordResetOTP(ctx, emailAddr, code); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	msg, err := email.PasswordResetMessage(emailAddr, code, u.otpTTL)
	if err != nil {
		return err
	}
	if err = u.email.Send(ctx, msg); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	metrics.PasswordResetCodesIssued.Inc()
	return nil
}

// ResetPassword replaces the password once code is verified, then discards the code.
func (u *AuthUsecase) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	if err := checkPassword(newPassword); err != nil {
		return err
	}

	ok, err := u.otps.VerifyPasswordResetOTP(ctx, emailAddr, code)
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if !ok {
		metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrOTPInvalid
	}

	if err = u.users.UpdateUserPassword(ctx, emailAddr, newPassword); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
			return domain.ErrOTPInvalid
		}
		return fmt.Errorf("update password: %w", err)
	}

	if err = u.otps.ClearPasswordResetOTP(ctx, emailAddr); err != nil {
		return fmt.Errorf("clear otp: %w", err)
	}
	metrics.PasswordResetsTotal.WithLabelValues("succeeded").Inc()
	return nil
}

func (u *AuthUsecase) session(user *domain.User) (*Session, error) {
	now := u.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.jwtTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(u.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign jwt: %w", err)
	}
	return &Session{User: user, Token: signed}, nil
}

func checkPassword(p string) error {
	if len(p) < minPasswordLen || len(p) > maxPasswordLen {
		return domain.ErrInvalidPassword
	}
	return nil
}

var otpSpace = big.NewInt(1_000_000)

// generateOTP returns a uniformly random six-digit code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
