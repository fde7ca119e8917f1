package repository

import (
	"context"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

type ApplicationRepository interface {
	// CreateApplication returns domain.ErrJobNotFound, and stores nothing, when in.JobID
	// does not reference an existing job.
	CreateApplication(ctx context.Context, in domain.NewApplication) (*domain.Application, error)
	ListUserApplications(ctx context.Context, userID string) ([]*domain.ApplicationWithJob, error)
	// DeleteApplication is idempotent: unknown ids are not an error.
	DeleteApplication(ctx context.Context, id string) error
}

type ContactRepository interface {
	CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error)
}
