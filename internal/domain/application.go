package domain

import (
	"errors"
	"time"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationStatus string

const ApplicationSubmitted ApplicationStatus = "submitted"

type Application struct {
	ID        string
	UserID    string
	JobID     string
	Status    ApplicationStatus
	AppliedAt time.Time
}

// ApplicationWithJob is an application joined with its job and that job's company.
type ApplicationWithJob struct {
	Application
	Job JobWithCompany
}

type NewApplication struct {
	UserID string
	JobID  string
	Status ApplicationStatus // empty = submitted
}
