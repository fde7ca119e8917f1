package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/ErlanBelekov/job-portal/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

type applicationUsecaser interface {
	Apply(ctx context.Context, userID, jobID string) (*domain.Application, error)
	ListMine(ctx context.Context, userID string) ([]*domain.ApplicationWithJob, error)
	Withdraw(ctx context.Context, userID, applicationID string) error
}

type ApplicationHandler struct {
	applications applicationUsecaser
	logger       *slog.Logger
}

func NewApplicationHandler(applications applicationUsecaser, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, logger: logger.With("component", "application_handler")}
}

type applyRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// POST /api/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), c.GetString(middleware.UserIDKey), req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
		default:
			h.logger.ErrorContext(c.Request.Context(), "apply", "job_id", req.JobID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusCreated, toApplicationResponse(app))
}

// GET /api/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applications.ListMine(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "list applications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, mapSlice(apps, toApplicationWithJobResponse))
}

// DELETE /api/applications/:id
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	appID := c.Param("id")

	err := h.applications.Withdraw(c.Request.Context(), c.GetString(middleware.UserIDKey), appID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		case errors.Is(err, domain.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errApplicationNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "withdraw application", "application_id", appID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.Status(http.StatusNoContent)
}
