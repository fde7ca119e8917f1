package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, full_name, phone, password, created_at`

type UserRepository struct {
	pool   *pgxpool.Pool
	hasher *password.Hasher
}

func NewUserRepository(pool *pgxpool.Pool, hasher *password.Hasher) *UserRepository {
	return &UserRepository{pool: pool, hasher: hasher}
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	hash, err := r.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, full_name, phone, password)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		uuid.NewString(), in.Email, in.FullName, in.Phone, hash,
	)

	u, err := scanUser(row)
	if err != nil {
		if code, _ := pgError(err); code == codeUniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET    email     = COALESCE($2, email),
		       full_name = COALESCE($3, full_name),
		       phone     = COALESCE($4, phone)
		WHERE  id = $1
		RETURNING `+userColumns,
		id, patch.Email, patch.FullName, patch.Phone,
	)

	u, err := scanUser(row)
	if err != nil {
		if code, _ := pgError(err); code == codeUniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) ValidateUser(ctx context.Context, email, plain string) (*domain.User, error) {
	u, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			r.hasher.VerifyMissing(plain)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !r.hasher.Verify(plain, u.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

func (r *UserRepository) UpdateUserPassword(ctx context.Context, email, newPassword string) error {
	hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `UPDATE users SET password = $2 WHERE email = $1`, email, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
