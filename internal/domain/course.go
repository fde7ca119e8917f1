package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseLevel string

const (
	CourseBeginner     CourseLevel = "beginner"
	CourseIntermediate CourseLevel = "intermediate"
	CourseAdvanced     CourseLevel = "advanced"
)

type Course struct {
	ID          string
	Title       string
	Description string
	Instructor  *string
	Duration    *string
	Level       *CourseLevel
	Category    string
	ImageURL    *string
	CourseURL   *string
	Price       *string
	CreatedAt   time.Time
}

// Clone returns a copy that shares no pointers with c.
func (c Course) Clone() Course {
	c.Instructor = clone(c.Instructor)
	c.Duration = clone(c.Duration)
	c.Level = clone(c.Level)
	c.ImageURL = clone(c.ImageURL)
	c.CourseURL = clone(c.CourseURL)
	c.Price = clone(c.Price)
	return c
}

type NewCourse struct {
	Title       string
	Description string
	Instructor  *string
	Duration    *string
	Level       *CourseLevel
	Category    string
	ImageURL    *string
	CourseURL   *string
	Price       *string
}
