package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/gin-gonic/gin"
)

type courseUsecaser interface {
	ListCourses(ctx context.Context, category string) ([]*domain.Course, error)
	GetCourse(ctx context.Context, id string) (*domain.Course, error)
	CreateCourse(ctx context.Context, input domain.NewCourse) (*domain.Course, error)
}

type CourseHandler struct {
	courses courseUsecaser
	logger  *slog.Logger
}

func NewCourseHandler(courses courseUsecaser, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{courses: courses, logger: logger.With("component", "course_handler")}
}

type createCourseRequest struct {
	Title       string              `json:"title"       binding:"required"`
	Description string              `json:"description" binding:"required"`
	Instructor  *string             `json:"instructor"`
	Duration    *string             `json:"duration"`
	Level       *domain.CourseLevel `json:"level"       binding:"omitempty,oneof=beginner intermediate advanced"`
	Category    string              `json:"category"    binding:"required"`
	ImageURL    *string             `json:"imageUrl"    binding:"omitempty,url"`
	CourseURL   *string             `json:"courseUrl"   binding:"omitempty,url"`
	Price       *string             `json:"price"`
}

// GET /api/courses?category=
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.ListCourses(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list courses", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, mapSlice(courses, toCourseResponse))
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	course, err := h.courses.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errCourseNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get course", "course_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toCourseResponse(course))
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courses.CreateCourse(c.Request.Context(), domain.NewCourse{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		Level:       req.Level,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CourseURL:   req.CourseURL,
		Price:       req.Price,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create course", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusCreated, toCourseResponse(course))
}
