package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/gin-gonic/gin"
)

type contactUsecaser interface {
	Submit(ctx context.Context, input domain.NewContact) (*domain.Contact, error)
}

type ContactHandler struct {
	contacts contactUsecaser
	logger   *slog.Logger
}

func NewContactHandler(contacts contactUsecaser, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger.With("component", "contact_handler")}
}

type contactRequest struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contacts
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contacts.Submit(c.Request.Context(), domain.NewContact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "submit contact", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, toContactResponse(contact))
}
