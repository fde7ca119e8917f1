package repository

import (
	"context"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	// CreateUser hashes in.Password before it is stored. Returns domain.ErrDuplicateEmail
	// when the email is already registered.
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	// ValidateUser returns domain.ErrInvalidCredentials for both an unknown email and a
	// wrong password so callers cannot tell the two apart.
	ValidateUser(ctx context.Context, email, password string) (*domain.User, error)
	UpdateUserPassword(ctx context.Context, email, newPassword string) error
}

// PasswordResetStore keeps at most one live reset code per email.
type PasswordResetStore interface {
	// StorePasswordResetOTP overwrites any pending code for email.
	StorePasswordResetOTP(ctx context.Context, email, code string) error
	// VerifyPasswordResetOTP reports whether code matches the live entry. An expired entry
	// is removed and reported as false. A successful match does not consume the entry.
	VerifyPasswordResetOTP(ctx context.Context, email, code string) (bool, error)
	ClearPasswordResetOTP(ctx context.Context, email string) error
}

// OTPPurger is implemented by stores that do not expire entries on their own.
type OTPPurger interface {
	PurgeExpiredPasswordResetOTPs(ctx context.Context) (int, error)
}
