package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, name, description, website, linkedin_url, logo, location, created_at`

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *CompanyRepository) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, in domain.NewCompany) (*domain.Company, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO companies (id, name, description, website, linkedin_url, logo, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+companyColumns,
		uuid.NewString(), in.Name, in.Description, in.Website, in.LinkedinURL, in.Logo, in.Location,
	)
	c, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(companyScanTargets(&c)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &c, nil
}
