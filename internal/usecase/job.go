package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/repository"
)

type JobUsecase struct {
	repo repository.JobRepository
}

func NewJobUsecase(repo repository.JobRepository) *JobUsecase {
	return &JobUsecase{repo: repo}
}

func (u *JobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.JobWithCompany, error) {
	if filter.ExperienceLevel != "" && !filter.ExperienceLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown experience level %q", domain.ErrInvalidJob, filter.ExperienceLevel)
	}
	jobs, err := u.repo.ListJobs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (u *JobUsecase) GetJob(ctx context.Context, id string) (*domain.JobWithCompany, error) {
	job, err := u.repo.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return job, nil
}

func (u *JobUsecase) CreateJob(ctx context.Context, input domain.NewJob) (*domain.Job, error) {
	job, err := u.repo.CreateJob(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

func (u *JobUsecase) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.repo.UpdateJob(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

type CompanyUsecase struct {
	repo repository.CompanyRepository
}

func NewCompanyUsecase(repo repository.CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: repo}
}

func (u *CompanyUsecase) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	companies, err := u.repo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (u *CompanyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.repo.GetCompany(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

func (u *CompanyUsecase) CreateCompany(ctx context.Context, input domain.NewCompany) (*domain.Company, error) {
	company, err := u.repo.CreateCompany(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}
