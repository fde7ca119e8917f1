package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/repository"
)

type CourseUsecase struct {
	repo repository.CourseRepository
}

func NewCourseUsecase(repo repository.CourseRepository) *CourseUsecase {
	return &CourseUsecase{repo: repo}
}

func (u *CourseUsecase) ListCourses(ctx context.Context, category string) ([]*domain.Course, error) {
	courses, err := u.repo.ListCourses(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (u *CourseUsecase) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := u.repo.GetCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

func (u *CourseUsecase) CreateCourse(ctx context.Context, input domain.NewCourse) (*domain.Course, error) {
	course, err := u.repo.CreateCourse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}
