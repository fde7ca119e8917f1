package postgres

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OTPRepository keeps one reset code per email. Expiry is judged by the database clock.
type OTPRepository struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

func NewOTPRepository(pool *pgxpool.Pool, ttl time.Duration) *OTPRepository {
	return &OTPRepository{pool: pool, ttl: ttl}
}

func (r *OTPRepository) StorePasswordResetOTP(ctx context.Context, email, code string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO password_reset_otps (email, code, expires_at)
		VALUES ($1, $2, NOW() + make_interval(secs => $3))
		ON CONFLICT (email) DO UPDATE
		SET code = EXCLUDED.code, expires_at = EXCLUDED.expires_at`,
		email, code, r.ttl.Seconds(),
	)
	if err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	return nil
}

func (r *OTPRepository) VerifyPasswordResetOTP(ctx context.Context, email, code string) (bool, error) {
	var (
		stored  string
		expired bool
	)
	err := r.pool.QueryRow(ctx,
		`SELECT code, NOW() > expires_at FROM password_reset_otps WHERE email = $1`, email,
	).Scan(&stored, &expired)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("load otp: %w", err)
	}

	if expired {
		if _, err := r.pool.Exec(ctx,
			`DELETE FROM password_reset_otps WHERE email = $1 AND NOW() > expires_at`, email,
		); err != nil {
			return false, fmt.Errorf("drop expired otp: %w", err)
		}
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

func (r *OTPRepository) ClearPasswordResetOTP(ctx context.Context, email string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM password_reset_otps WHERE email = $1`, email); err != nil {
		return fmt.Errorf("clear otp: %w", err)
	}
	return nil
}

func (r *OTPRepository) PurgeExpiredPasswordResetOTPs(ctx context.Context) (int, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM password_reset_otps WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("purge otps: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
