package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/password"
	"github.com/ErlanBelekov/job-portal/internal/repository"
	"github.com/ErlanBelekov/job-portal/internal/seed"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ repository.Storage   = (*Storage)(nil)
	_ repository.OTPPurger = (*Storage)(nil)
)

// Storage is the full storage contract backed by one connection pool.
type Storage struct {
	*UserRepository
	*OTPRepository
	*CompanyRepository
	*JobRepository
	*CourseRepository
	*ApplicationRepository
	*ContactRepository

	pool *pgxpool.Pool
}

func NewStorage(pool *pgxpool.Pool, hasher *password.Hasher, otpTTL time.Duration) *Storage {
	return &Storage{
		UserRepository:        NewUserRepository(pool, hasher),
		OTPRepository:         NewOTPRepository(pool, otpTTL),
		CompanyRepository:     NewCompanyRepository(pool),
		JobRepository:         NewJobRepository(pool),
		CourseRepository:      NewCourseRepository(pool),
		ApplicationRepository: NewApplicationRepository(pool),
		ContactRepository:     NewContactRepository(pool),
		pool:                  pool,
	}
}

// SeedSampleData inserts data in one transaction. Rows whose id already exists are left alone,
// so running it twice is harmless. It reports how many rows were inserted.
func (s *Storage) SeedSampleData(ctx context.Context, data seed.Data) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, c := range data.Companies {
			tag, err := tx.Exec(ctx, `
				INSERT INTO companies (id, name, description, website, linkedin_url, logo, location, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				ON CONFLICT (id) DO NOTHING`,
				c.ID, c.Name, c.Description, c.Website, c.LinkedinURL, c.Logo, c.Location, c.CreatedAt)
			if err != nil {
				return fmt.Errorf("seed company %s: %w", c.ID, err)
			}
			inserted += int(tag.RowsAffected())
		}
		for _, j := range data.Jobs {
			tag, err := tx.Exec(ctx, `
				INSERT INTO jobs (
					id, company_id, title, description, requirements, qualifications, skills,
					experience_level, experience_min, experience_max, location, job_type,
					salary, apply_url, closing_date, batch_eligible, is_active, created_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
				ON CONFLICT (id) DO NOTHING`,
				j.ID, j.CompanyID, j.Title, j.Description, j.Requirements, j.Qualifications, j.Skills,
				j.ExperienceLevel, j.ExperienceMin, j.ExperienceMax, j.Location, j.JobType,
				j.Salary, j.ApplyURL, j.ClosingDate, j.BatchEligible, j.IsActive, j.CreatedAt)
			if err != nil {
				return fmt.Errorf("seed job %s: %w", j.ID, err)
			}
			inserted += int(tag.RowsAffected())
		}
		for _, c := range data.Courses {
			tag, err := tx.Exec(ctx, `
				INSERT INTO courses (id, title, description, instructor, duration, level, category, image_url, course_url, price, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				ON CONFLICT (id) DO NOTHING`,
				c.ID, c.Title, c.Description, c.Instructor, c.Duration, c.Level, c.Category,
				c.ImageURL, c.CourseURL, c.Price, c.CreatedAt)
			if err != nil {
				return fmt.Errorf("seed course %s: %w", c.ID, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Ping reports whether the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
