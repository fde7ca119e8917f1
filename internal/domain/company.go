package domain

import (
	"errors"
	"time"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrUnknownCompany  = errors.New("job references an unknown company")
)

type Company struct {
	ID          string
	Name        string
	Description *string
	Website     *string
	LinkedinURL *string
	Logo        *string
	Location    *string
	CreatedAt   time.Time
}

// Clone returns a copy that shares no pointers with c.
func (c Company) Clone() Company {
	c.Description = clone(c.Description)
	c.Website = clone(c.Website)
	c.LinkedinURL = clone(c.LinkedinURL)
	c.Logo = clone(c.Logo)
	c.Location = clone(c.Location)
	return c
}

type NewCompany struct {
	Name        string
	Description *string
	Website     *string
	LinkedinURL *string
	Logo        *string
	Location    *string
}
