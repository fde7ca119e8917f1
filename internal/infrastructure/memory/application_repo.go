package memory

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

func (s *Store) CreateApplication(_ context.Context, in domain.NewApplication) (*domain.Application, error) {
	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()

	if _, ok := s.jobs.get(in.JobID); !ok {
		return nil, domain.ErrJobNotFound
	}

	status := in.Status
	if status == "" {
		status = domain.ApplicationSubmitted
	}

	s.applications.mu.Lock()
	defer s.applications.mu.Unlock()

	a := domain.Application{
		ID:        s.newID(),
		UserID:    in.UserID,
		JobID:     in.JobID,
		Status:    status,
		AppliedAt: s.now(),
	}
	s.applications.put(a.ID, a)
	return &a, nil
}

func (s *Store) ListUserApplications(_ context.Context, userID string) ([]*domain.ApplicationWithJob, error) {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()
	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()
	s.applications.mu.RLock()
	defer s.applications.mu.RUnlock()

	var out []*domain.ApplicationWithJob
	var err error
	s.applications.each(func(a domain.Application) bool {
		if a.UserID != userID {
			return true
		}
		j, ok := s.jobs.get(a.JobID)
		if !ok {
			err = fmt.Errorf("%w: application %s references missing job %s", domain.ErrInconsistentData, a.ID, a.JobID)
			return false
		}
		var jc *domain.JobWithCompany
		if jc, err = s.joinCompanyLocked(j); err != nil {
			return false
		}
		out = append(out, &domain.ApplicationWithJob{Application: a, Job: *jc})
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DeleteApplication(_ context.Context, id string) error {
	s.applications.mu.Lock()
	defer s.applications.mu.Unlock()

	s.applications.remove(id)
	return nil
}
