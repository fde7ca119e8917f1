package postgres

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `a.id, a.user_id, a.job_id, a.status, a.applied_at`

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, in domain.NewApplication) (*domain.Application, error) {
	status := in.Status
	if status == "" {
		status = domain.ApplicationSubmitted
	}

	var a domain.Application
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications AS a (id, user_id, job_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+applicationColumns,
		uuid.NewString(), in.UserID, in.JobID, status,
	).Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt)
	if err != nil {
		if code, constraint := pgError(err); code == codeForeignKeyViolation {
			if constraint == "applications_user_id_fkey" {
				return nil, domain.ErrUserNotFound
			}
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) ListUserApplications(ctx context.Context, userID string) ([]*domain.ApplicationWithJob, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`, `+jobColumns+`, `+joinedCompanyColumns+`
		FROM applications a
		JOIN jobs j      ON j.id = a.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE a.user_id = $1
		ORDER BY a.applied_at, a.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var apps []*domain.ApplicationWithJob
	for rows.Next() {
		var aw domain.ApplicationWithJob
		targets := []any{&aw.ID, &aw.UserID, &aw.JobID, &aw.Status, &aw.AppliedAt}
		targets = append(targets, jobScanTargets(&aw.Job.Job)...)
		targets = append(targets, companyScanTargets(&aw.Job.Company)...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, &aw)
	}
	return apps, rows.Err()
}

// DeleteApplication succeeds whether or not the row existed.
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
