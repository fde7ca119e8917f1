package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `j.id, j.company_id, j.title, j.description, j.requirements, j.qualifications,
	j.skills, j.experience_level, j.experience_min, j.experience_max, j.location, j.job_type,
	j.salary, j.apply_url, j.closing_date, j.batch_eligible, j.is_active, j.created_at`

const joinedCompanyColumns = `c.id, c.name, c.description, c.website, c.linkedin_url, c.logo, c.location, c.created_at`

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func (r *JobRepository) ListJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.JobWithCompany, error) {
	where, args := buildJobFilter(filter)
	query := `
		SELECT ` + jobColumns + `, ` + joinedCompanyColumns + `
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		` + where + `
		ORDER BY j.created_at, j.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.JobWithCompany
	for rows.Next() {
		j, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// buildJobFilter renders the AND-composed predicates of filter as a WHERE clause with
// numbered placeholders. It returns an empty clause when no predicate is set.
func buildJobFilter(filter domain.JobFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	if filter.ExperienceLevel != "" {
		args = append(args, filter.ExperienceLevel)
		where = append(where, fmt.Sprintf("j.experience_level = $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, containsPattern(filter.Location))
		where = append(where, fmt.Sprintf("j.location ILIKE $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, containsPattern(filter.Search))
		n := len(args)
		where = append(where, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d OR j.skills ILIKE $%d)", n, n, n))
	}

	if len(where) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(where, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern that matches s as a plain substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (r *JobRepository) GetJob(ctx context.Context, id string) (*domain.JobWithCompany, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`, `+joinedCompanyColumns+`
		FROM jobs j
		JOIN companies c ON c.id = j.company_id
		WHERE j.id = $1`, id)
	return scanJobWithCompany(row)
}

func (r *JobRepository) CreateJob(ctx context.Context, in domain.NewJob) (*domain.Job, error) {
	j := in.Build()
	if err := j.Validate(); err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO jobs AS j (
			id, company_id, title, description, requirements, qualifications, skills,
			experience_level, experience_min, experience_max, location, job_type,
			salary, apply_url, closing_date, batch_eligible, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+jobColumns,
		uuid.NewString(), j.CompanyID, j.Title, j.Description, j.Requirements, j.Qualifications, j.Skills,
		j.ExperienceLevel, j.ExperienceMin, j.ExperienceMax, j.Location, j.JobType,
		j.Salary, j.ApplyURL, j.ClosingDate, j.BatchEligible, j.IsActive,
	)

	created, err := scanJob(row)
	if err != nil {
		return nil, mapJobWriteError(err)
	}
	return created, nil
}

// UpdateJob locks the row, merges the patch and validates the result before writing it back.
func (r *JobRepository) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existing, err := scanJob(tx.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*existing)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `
		UPDATE jobs AS j
		SET    company_id       = $2,
		       title            = $3,
		       description      = $4,
		       requirements     = $5,
		       qualifications   = $6,
		       skills           = $7,
		       experience_level = $8,
		       experience_min   = $9,
		       experience_max   = $10,
		       location         = $11,
		       job_type         = $12,
		       salary           = $13,
		       apply_url        = $14,
		       closing_date     = $15,
		       batch_eligible   = $16,
		       is_active        = $17
		WHERE  j.id = $1
		RETURNING `+jobColumns,
		id, updated.CompanyID, updated.Title, updated.Description, updated.Requirements, updated.Qualifications,
		updated.Skills, updated.ExperienceLevel, updated.ExperienceMin, updated.ExperienceMax, updated.Location,
		updated.JobType, updated.Salary, updated.ApplyURL, updated.ClosingDate, updated.BatchEligible, updated.IsActive,
	)
	saved, err := scanJob(row)
	if err != nil {
		return nil, mapJobWriteError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return saved, nil
}

func mapJobWriteError(err error) error {
	switch code, _ := pgError(err); code {
	case codeForeignKeyViolation:
		return domain.ErrUnknownCompany
	case codeCheckViolation:
		return fmt.Errorf("%w: %v", domain.ErrInvalidJob, err)
	}
	return err
}

func jobScanTargets(j *domain.Job) []any {
	return []any{
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Requirements, &j.Qualifications,
		&j.Skills, &j.ExperienceLevel, &j.ExperienceMin, &j.ExperienceMax, &j.Location, &j.JobType,
		&j.Salary, &j.ApplyURL, &j.ClosingDate, &j.BatchEligible, &j.IsActive, &j.CreatedAt,
	}
}

func companyScanTargets(c *domain.Company) []any {
	return []any{&c.ID, &c.Name, &c.Description, &c.Website, &c.LinkedinURL, &c.Logo, &c.Location, &c.CreatedAt}
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var j domain.Job
	if err := row.Scan(jobScanTargets(&j)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	return &j, nil
}

func scanJobWithCompany(row rowScanner) (*domain.JobWithCompany, error) {
	var jc domain.JobWithCompany
	targets := append(jobScanTargets(&jc.Job), companyScanTargets(&jc.Company)...)
	if err := row.Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	return &jc, nil
}
