package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
	"github.com/gin-gonic/gin"
)

type jobUsecaser interface {
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.JobWithCompany, error)
	GetJob(ctx context.Context, id string) (*domain.JobWithCompany, error)
	CreateJob(ctx context.Context, input domain.NewJob) (*domain.Job, error)
	UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error)
}

type JobHandler struct {
	jobs   jobUsecaser
	logger *slog.Logger
}

func NewJobHandler(jobs jobUsecaser, logger *slog.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, logger: logger.With("component", "job_handler")}
}

type listJobsQuery struct {
	ExperienceLevel domain.ExperienceLevel `form:"experienceLevel" binding:"omitempty,oneof=fresher experienced"`
	Location        string                 `form:"location"`
	Search          string                 `form:"search"`
}

type createJobRequest struct {
	CompanyID       string                 `json:"companyId"       binding:"required"`
	Title           string                 `json:"title"           binding:"required"`
	Description     string                 `json:"description"     binding:"required"`
	Requirements    string                 `json:"requirements"`
	Qualifications  string                 `json:"qualifications"`
	Skills          string                 `json:"skills"`
	ExperienceLevel domain.ExperienceLevel `json:"experienceLevel" binding:"required,oneof=fresher experienced"`
	ExperienceMin   *int                   `json:"experienceMin"   binding:"omitempty,min=0"`
	ExperienceMax   *int                   `json:"experienceMax"   binding:"omitempty,min=0"`
	Location        string                 `json:"location"        binding:"required"`
	JobType         string                 `json:"jobType"         binding:"required"`
	Salary          *string                `json:"salary"`
	ApplyURL        *string                `json:"applyUrl"        binding:"omitempty,url"`
	ClosingDate     time.Time              `json:"closingDate"     binding:"required"`
	BatchEligible   *string                `json:"batchEligible"`
	IsActive        *bool                  `json:"isActive"`
}

type updateJobRequest struct {
	CompanyID       *string                 `json:"companyId"`
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	Requirements    *string                 `json:"requirements"`
	Qualifications  *string                 `json:"qualifications"`
	Skills          *string                 `json:"skills"`
	ExperienceLevel *domain.ExperienceLevel `json:"experienceLevel" binding:"omitempty,oneof=fresher experienced"`
	ExperienceMin   *int                    `json:"experienceMin"   binding:"omitempty,min=0"`
	ExperienceMax   *int                    `json:"experienceMax"   binding:"omitempty,min=0"`
	Location        *string                 `json:"location"`
	JobType         *string                 `json:"jobType"`
	Salary          *string                 `json:"salary"`
	ApplyURL        *string                 `json:"applyUrl"        binding:"omitempty,url"`
	ClosingDate     *time.Time              `json:"closingDate"`
	BatchEligible   *string                 `json:"batchEligible"`
	IsActive        *bool                   `json:"isActive"`
}

// GET /api/jobs?experienceLevel=&location=&search=
func (h *JobHandler) List(c *gin.Context) {
	var q listJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobs, err := h.jobs.ListJobs(c.Request.Context(), domain.JobFilter{
		ExperienceLevel: q.ExperienceLevel,
		Location:        q.Location,
		Search:          q.Search,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidJob) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "list jobs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, mapSlice(jobs, toJobWithCompanyResponse))
}

func (h *JobHandler) GetByID(c *gin.Context) {
	jobID := c.Param("id")

	job, err := h.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get job by id", "job_id", jobID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toJobWithCompanyResponse(job))
}

func (h *JobHandler) Create(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), domain.NewJob{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Qualifications:  req.Qualifications,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		ExperienceMin:   req.ExperienceMin,
		ExperienceMax:   req.ExperienceMax,
		Location:        req.Location,
		JobType:         req.JobType,
		Salary:          req.Salary,
		ApplyURL:        req.ApplyURL,
		ClosingDate:     req.ClosingDate,
		BatchEligible:   req.BatchEligible,
		IsActive:        req.IsActive,
	})
	if err != nil {
		h.writeJobError(c, "create job", err)
		return
	}

	c.JSON(http.StatusCreated, toJobResponse(job))
}

func (h *JobHandler) Update(c *gin.Context) {
	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.UpdateJob(c.Request.Context(), c.Param("id"), domain.JobPatch{
		CompanyID:       req.CompanyID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Qualifications:  req.Qualifications,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		ExperienceMin:   req.ExperienceMin,
		ExperienceMax:   req.ExperienceMax,
		Location:        req.Location,
		JobType:         req.JobType,
		Salary:          req.Salary,
		ApplyURL:        req.ApplyURL,
		ClosingDate:     req.ClosingDate,
		BatchEligible:   req.BatchEligible,
		IsActive:        req.IsActive,
	})
	if err != nil {
		h.writeJobError(c, "update job", err)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

func (h *JobHandler) writeJobError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errJobNotFound})
	case errors.Is(err, domain.ErrUnknownCompany):
		c.JSON(http.StatusBadRequest, gin.H{"error": errUnknownCompany})
	case errors.Is(err, domain.ErrInvalidJob):
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidJob})
	default:
		h.logger.ErrorContext(c.Request.Context(), op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}
