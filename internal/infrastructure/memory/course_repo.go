package memory

import (
	"context"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

func (s *Store) ListCourses(_ context.Context, category string) ([]*domain.Course, error) {
	s.courses.mu.RLock()
	defer s.courses.mu.RUnlock()

	var out []*domain.Course
	s.courses.each(func(c domain.Course) bool {
		if category == "" || c.Category == category {
			out = append(out, &c)
		}
		return true
	})
	return out, nil
}

func (s *Store) GetCourse(_ context.Context, id string) (*domain.Course, error) {
	s.courses.mu.RLock()
	defer s.courses.mu.RUnlock()

	c, ok := s.courses.get(id)
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return &c, nil
}

func (s *Store) CreateCourse(_ context.Context, in domain.NewCourse) (*domain.Course, error) {
	c := domain.Course{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Instructor:  in.Instructor,
		Duration:    in.Duration,
		Level:       in.Level,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		CourseURL:   in.CourseURL,
		Price:       in.Price,
		CreatedAt:   s.now(),
	}

	s.courses.mu.Lock()
	defer s.courses.mu.Unlock()

	s.courses.put(c.ID, c)
	return &c, nil
}

func (s *Store) CreateContact(_ context.Context, in domain.NewContact) (*domain.Contact, error) {
	c := domain.Contact{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: s.now(),
	}

	s.contacts.mu.Lock()
	defer s.contacts.mu.Unlock()

	s.contacts.put(c.ID, c)
	return &c, nil
}
