package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/gin-gonic/gin"
)

type companyUsecaser interface {
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	CreateCompany(ctx context.Context, input domain.NewCompany) (*domain.Company, error)
}

type CompanyHandler struct {
	companies companyUsecaser
	logger    *slog.Logger
}

func NewCompanyHandler(companies companyUsecaser, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{companies: companies, logger: logger.With("component", "company_handler")}
}

type createCompanyRequest struct {
	Name        string  `json:"name"        binding:"required"`
	Description *string `json:"description"`
	Website     *string `json:"website"     binding:"omitempty,url"`
	LinkedinURL *string `json:"linkedinUrl" binding:"omitempty,url"`
	Logo        *string `json:"logo"        binding:"omitempty,url"`
	Location    *string `json:"location"`
}

func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.ListCompanies(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list companies", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, mapSlice(companies, toCompanyResponse))
}

func (h *CompanyHandler) GetByID(c *gin.Context) {
	company, err := h.companies.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errCompanyNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get company", "company_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companies.CreateCompany(c.Request.Context(), domain.NewCompany{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LinkedinURL: req.LinkedinURL,
		Logo:        req.Logo,
		Location:    req.Location,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create company", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusCreated, toCompanyResponse(company))
}
