package repository

import (
	"context"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

type CompanyRepository interface {
	// ListCompanies returns companies in insertion order.
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	CreateCompany(ctx context.Context, in domain.NewCompany) (*domain.Company, error)
}

type JobRepository interface {
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.JobWithCompany, error)
	GetJob(ctx context.Context, id string) (*domain.JobWithCompany, error)
	// CreateJob returns domain.ErrUnknownCompany when in.CompanyID has no company and
	// domain.ErrInvalidJob when the job breaks a field invariant.
	CreateJob(ctx context.Context, in domain.NewJob) (*domain.Job, error)
	UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error)
}

type CourseRepository interface {
	// ListCourses filters by exact category when category is non-empty.
	ListCourses(ctx context.Context, category string) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, in domain.NewCourse) (*domain.Course, error)
}
