package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const courseColumns = `id, title, description, instructor, duration, level, category, image_url, course_url, price, created_at`

type CourseRepository struct {
	pool *pgxpool.Pool
}

func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// ListCourses returns every course, or only those whose category equals category when it is non-empty.
func (r *CourseRepository) ListCourses(ctx context.Context, category string) ([]*domain.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE $1 = '' OR category = $1
		ORDER BY created_at, id`, category)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	return scanCourse(r.pool.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
}

func (r *CourseRepository) CreateCourse(ctx context.Context, in domain.NewCourse) (*domain.Course, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO courses (id, title, description, instructor, duration, level, category, image_url, course_url, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+courseColumns,
		uuid.NewString(), in.Title, in.Description, in.Instructor, in.Duration, in.Level,
		in.Category, in.ImageURL, in.CourseURL, in.Price,
	)
	c, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return c, nil
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Instructor, &c.Duration, &c.Level,
		&c.Category, &c.ImageURL, &c.CourseURL, &c.Price, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}
	return &c, nil
}

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	var c domain.Contact
	err := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, message, created_at`,
		uuid.NewString(), in.Name, in.Email, in.Message,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &c, nil
}
