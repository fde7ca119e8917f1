package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrJobNotFound = errors.New("job not found")
	ErrInvalidJob  = errors.New("invalid job")

	// ErrInconsistentData means a stored record points at a row that does not exist.
	ErrInconsistentData = errors.New("inconsistent data")
)

type ExperienceLevel string

const (
	ExperienceFresher     ExperienceLevel = "fresher"
	ExperienceExperienced ExperienceLevel = "experienced"
)

func (l ExperienceLevel) Valid() bool {
	return l == ExperienceFresher || l == ExperienceExperienced
}

type Job struct {
	ID              string
	CompanyID       string
	Title           string
	Description     string
	Requirements    string
	Qualifications  string
	Skills          string // free text, e.g. "Java, Python, SQL"
	ExperienceLevel ExperienceLevel
	ExperienceMin   *int
	ExperienceMax   *int
	Location        string
	JobType         string // "full-time", "internship", ...
	Salary          *string
	ApplyURL        *string
	ClosingDate     time.Time
	BatchEligible   *string
	IsActive        bool
	CreatedAt       time.Time
}

// Clone returns a copy that shares no pointers with j.
func (j Job) Clone() Job {
	j.ExperienceMin = clone(j.ExperienceMin)
	j.ExperienceMax = clone(j.ExperienceMax)
	j.Salary = clone(j.Salary)
	j.ApplyURL = clone(j.ApplyURL)
	j.BatchEligible = clone(j.BatchEligible)
	return j
}

// JobWithCompany is a job joined with its owning company.
type JobWithCompany struct {
	Job
	Company Company
}

type NewJob struct {
	CompanyID       string
	Title           string
	Description     string
	Requirements    string
	Qualifications  string
	Skills          string
	ExperienceLevel ExperienceLevel
	ExperienceMin   *int
	ExperienceMax   *int
	Location        string
	JobType         string
	Salary          *string
	ApplyURL        *string
	ClosingDate     time.Time
	BatchEligible   *string
	IsActive        *bool // nil = active
}

// JobPatch carries the fields to merge into an existing job. Nil means "leave as is".
type JobPatch struct {
	CompanyID       *string
	Title           *string
	Description     *string
	Requirements    *string
	Qualifications  *string
	Skills          *string
	ExperienceLevel *ExperienceLevel
	ExperienceMin   *int
	ExperienceMax   *int
	Location        *string
	JobType         *string
	Salary          *string
	ApplyURL        *string
	ClosingDate     *time.Time
	BatchEligible   *string
	IsActive        *bool
}

// JobFilter predicates are AND-composed; empty fields match everything.
type JobFilter struct {
	ExperienceLevel ExperienceLevel // exact match
	Location        string          // case-insensitive substring
	Search          string          // case-insensitive substring of title, description or skills
}

// Validate checks the invariants every stored job must satisfy.
func (j *Job) Validate() error {
	if !j.ExperienceLevel.Valid() {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidJob, j.ExperienceLevel)
	}
	if j.ExperienceMin != nil && j.ExperienceMax != nil && *j.ExperienceMin > *j.ExperienceMax {
		return fmt.Errorf("%w: experience min %d exceeds max %d", ErrInvalidJob, *j.ExperienceMin, *j.ExperienceMax)
	}
	return nil
}

// Build returns an unsaved job with defaults applied. ID and CreatedAt are left to the store.
func (n NewJob) Build() Job {
	active := true
	if n.IsActive != nil {
		active = *n.IsActive
	}
	return Job{
		CompanyID:       n.CompanyID,
		Title:           n.Title,
		Description:     n.Description,
		Requirements:    n.Requirements,
		Qualifications:  n.Qualifications,
		Skills:          n.Skills,
		ExperienceLevel: n.ExperienceLevel,
		ExperienceMin:   clone(n.ExperienceMin),
		ExperienceMax:   clone(n.ExperienceMax),
		Location:        n.Location,
		JobType:         n.JobType,
		Salary:          clone(n.Salary),
		ApplyURL:        clone(n.ApplyURL),
		ClosingDate:     n.ClosingDate,
		BatchEligible:   clone(n.BatchEligible),
		IsActive:        active,
	}
}

// Apply merges the non-nil fields of p into a copy of j.
func (p JobPatch) Apply(j Job) Job {
	if p.CompanyID != nil {
		j.CompanyID = *p.CompanyID
	}
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = *p.Requirements
	}
	if p.Qualifications != nil {
		j.Qualifications = *p.Qualifications
	}
	if p.Skills != nil {
		j.Skills = *p.Skills
	}
	if p.ExperienceLevel != nil {
		j.ExperienceLevel = *p.ExperienceLevel
	}
	if p.ExperienceMin != nil {
		j.ExperienceMin = clone(p.ExperienceMin)
	}
	if p.ExperienceMax != nil {
		j.ExperienceMax = clone(p.ExperienceMax)
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.JobType != nil {
		j.JobType = *p.JobType
	}
	if p.Salary != nil {
		j.Salary = clone(p.Salary)
	}
	if p.ApplyURL != nil {
		j.ApplyURL = clone(p.ApplyURL)
	}
	if p.ClosingDate != nil {
		j.ClosingDate = *p.ClosingDate
	}
	if p.BatchEligible != nil {
		j.BatchEligible = clone(p.BatchEligible)
	}
	if p.IsActive != nil {
		j.IsActive = *p.IsActive
	}
	return j
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
