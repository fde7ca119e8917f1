package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrOTPInvalid         = errors.New("reset code is invalid or expired")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidPassword    = errors.New("password must be between 6 and 72 bytes")
)

// User.Password always holds a bcrypt hash, never the plaintext.
type User struct {
	ID        string
	Email     string
	FullName  string
	Phone     *string
	Password  string
	CreatedAt time.Time
}

// Clone returns a copy that shares no pointers with u.
func (u User) Clone() User {
	u.Phone = clone(u.Phone)
	return u
}

type NewUser struct {
	Email    string
	FullName string
	Password string
	Phone    *string
}

// UserPatch carries the fields to merge into an existing user. Nil means "leave as is".
type UserPatch struct {
	Email    *string
	FullName *string
	Phone    *string
}

// PasswordResetOTP is the single live reset code for an email address.
type PasswordResetOTP struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

func (o PasswordResetOTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
