package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/repository"
)

// ApplicationUsecase acts on behalf of an authenticated user. Every method fails with
// domain.ErrUnauthorized when userID is empty.
type ApplicationUsecase struct {
	repo repository.ApplicationRepository
}

func NewApplicationUsecase(repo repository.ApplicationRepository) *ApplicationUsecase {
	return &ApplicationUsecase{repo: repo}
}

func (u *ApplicationUsecase) Apply(ctx context.Context, userID, jobID string) (*domain.Application, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	app, err := u.repo.CreateApplication(ctx, domain.NewApplication{UserID: userID, JobID: jobID})
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

func (u *ApplicationUsecase) ListMine(ctx context.Context, userID string) ([]*domain.ApplicationWithJob, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	apps, err := u.repo.ListUserApplications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// Withdraw deletes an application owned by userID. Applications of other users are
// reported as not found.
func (u *ApplicationUsecase) Withdraw(ctx context.Context, userID, applicationID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	apps, err := u.repo.ListUserApplications(ctx, userID)
	if err != nil {
		return fmt.Errorf("list applications: %w", err)
	}

	owned := false
	for _, a := range apps {
		if a.ID == applicationID {
			owned = true
			break
		}
	}
	if !owned {
		return domain.ErrApplicationNotFound
	}

	if err = u.repo.DeleteApplication(ctx, applicationID); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
