package domain

import "time"

// Contact is a contact-form submission. It is never modified after creation.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type NewContact struct {
	Name    string
	Email   string
	Message string
}
