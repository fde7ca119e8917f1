package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/repository"
)

type ContactUsecase struct {
	repo repository.ContactRepository
}

func NewContactUsecase(repo repository.ContactRepository) *ContactUsecase {
	return &ContactUsecase{repo: repo}
}

func (u *ContactUsecase) Submit(ctx context.Context, input domain.NewContact) (*domain.Contact, error) {
	contact, err := u.repo.CreateContact(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}
