package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

func (s *Store) ListCompanies(_ context.Context) ([]*domain.Company, error) {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()

	out := make([]*domain.Company, 0, len(s.companies.rows))
	s.companies.each(func(c domain.Company) bool {
		out = append(out, &c)
		return true
	})
	return out, nil
}

func (s *Store) GetCompany(_ context.Context, id string) (*domain.Company, error) {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()

	c, ok := s.companies.get(id)
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return &c, nil
}

func (s *Store) CreateCompany(_ context.Context, in domain.NewCompany) (*domain.Company, error) {
	c := domain.Company{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		LinkedinURL: in.LinkedinURL,
		Logo:        in.Logo,
		Location:    in.Location,
		CreatedAt:   s.now(),
	}

	s.companies.mu.Lock()
	defer s.companies.mu.Unlock()

	s.companies.put(c.ID, c)
	return &c, nil
}

func (s *Store) ListJobs(_ context.Context, filter domain.JobFilter) ([]*domain.JobWithCompany, error) {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()
	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()

	location := strings.ToLower(filter.Location)
	search := strings.ToLower(filter.Search)

	var out []*domain.JobWithCompany
	var err error
	s.jobs.each(func(j domain.Job) bool {
		if !matchJob(j, filter.ExperienceLevel, location, search) {
			return true
		}
		var jc *domain.JobWithCompany
		jc, err = s.joinCompanyLocked(j)
		if err != nil {
			return false
		}
		out = append(out, jc)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// matchJob expects location and search already lower-cased.
func matchJob(j domain.Job, level domain.ExperienceLevel, location, search string) bool {
	if level != "" && j.ExperienceLevel != level {
		return false
	}
	if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
		return false
	}
	if search != "" &&
		!strings.Contains(strings.ToLower(j.Title), search) &&
		!strings.Contains(strings.ToLower(j.Description), search) &&
		!strings.Contains(strings.ToLower(j.Skills), search) {
		return false
	}
	return true
}

func (s *Store) joinCompanyLocked(j domain.Job) (*domain.JobWithCompany, error) {
	c, ok := s.companies.get(j.CompanyID)
	if !ok {
		return nil, fmt.Errorf("%w: job %s references missing company %s", domain.ErrInconsistentData, j.ID, j.CompanyID)
	}
	return &domain.JobWithCompany{Job: j, Company: c}, nil
}

func (s *Store) GetJob(_ context.Context, id string) (*domain.JobWithCompany, error) {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()
	s.jobs.mu.RLock()
	defer s.jobs.mu.RUnlock()

	j, ok := s.jobs.get(id)
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return s.joinCompanyLocked(j)
}

func (s *Store) CreateJob(_ context.Context, in domain.NewJob) (*domain.Job, error) {
	j := in.Build()
	if err := j.Validate(); err != nil {
		return nil, err
	}

	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()

	if _, ok := s.companies.get(j.CompanyID); !ok {
		return nil, domain.ErrUnknownCompany
	}

	s.jobs.mu.Lock()
	defer s.jobs.mu.Unlock()

	j.ID = s.newID()
	j.CreatedAt = s.now()
	s.jobs.put(j.ID, j)
	return &j, nil
}

func (s *Store) UpdateJob(_ context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	s.companies.mu.RLock()
	defer s.companies.mu.RUnlock()
	s.jobs.mu.Lock()
	defer s.jobs.mu.Unlock()

	existing, ok := s.jobs.get(id)
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	updated := patch.Apply(existing)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if updated.CompanyID != existing.CompanyID {
		if _, ok := s.companies.get(updated.CompanyID); !ok {
			return nil, domain.ErrUnknownCompany
		}
	}

	s.jobs.put(id, updated)
	return &updated, nil
}
