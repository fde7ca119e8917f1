package handler

import (
	"time"

	"github.com/ErlanBelekov/job-portal/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// toUserResponse never includes the password hash.
func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

type companyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Website     *string   `json:"website"`
	LinkedinURL *string   `json:"linkedinUrl"`
	Logo        *string   `json:"logo"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		LinkedinURL: c.LinkedinURL,
		Logo:        c.Logo,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
	}
}

type jobResponse struct {
	ID              string                 `json:"id"`
	CompanyID       string                 `json:"companyId"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Requirements    string                 `json:"requirements"`
	Qualifications  string                 `json:"qualifications"`
	Skills          string                 `json:"skills"`
	ExperienceLevel domain.ExperienceLevel `json:"experienceLevel"`
	ExperienceMin   *int                   `json:"experienceMin"`
	ExperienceMax   *int                   `json:"experienceMax"`
	Location        string                 `json:"location"`
	JobType         string                 `json:"jobType"`
	Salary          *string                `json:"salary"`
	ApplyURL        *string                `json:"applyUrl"`
	ClosingDate     time.Time              `json:"closingDate"`
	BatchEligible   *string                `json:"batchEligible"`
	IsActive        bool                   `json:"isActive"`
	CreatedAt       time.Time              `json:"createdAt"`
	Company         *companyResponse       `json:"company,omitempty"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:              j.ID,
		CompanyID:       j.CompanyID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Qualifications:  j.Qualifications,
		Skills:          j.Skills,
		ExperienceLevel: j.ExperienceLevel,
		ExperienceMin:   j.ExperienceMin,
		ExperienceMax:   j.ExperienceMax,
		Location:        j.Location,
		JobType:         j.JobType,
		Salary:          j.Salary,
		ApplyURL:        j.ApplyURL,
		ClosingDate:     j.ClosingDate,
		BatchEligible:   j.BatchEligible,
		IsActive:        j.IsActive,
		CreatedAt:       j.CreatedAt,
	}
}

func toJobWithCompanyResponse(j *domain.JobWithCompany) jobResponse {
	resp := toJobResponse(&j.Job)
	company := toCompanyResponse(&j.Company)
	resp.Company = &company
	return resp
}

type courseResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Instructor  *string             `json:"instructor"`
	Duration    *string             `json:"duration"`
	Level       *domain.CourseLevel `json:"level"`
	Category    string              `json:"category"`
	ImageURL    *string             `json:"imageUrl"`
	CourseURL   *string             `json:"courseUrl"`
	Price       *string             `json:"price"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		Duration:    c.Duration,
		Level:       c.Level,
		Category:    c.Category,
		ImageURL:    c.ImageURL,
		CourseURL:   c.CourseURL,
		Price:       c.Price,
		CreatedAt:   c.CreatedAt,
	}
}

type applicationResponse struct {
	ID        string                   `json:"id"`
	UserID    string                   `json:"userId"`
	JobID     string                   `json:"jobId"`
	Status    domain.ApplicationStatus `json:"status"`
	AppliedAt time.Time                `json:"appliedAt"`
	Job       *jobResponse             `json:"job,omitempty"`
}

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		JobID:     a.JobID,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	}
}

func toApplicationWithJobResponse(a *domain.ApplicationWithJob) applicationResponse {
	resp := toApplicationResponse(&a.Application)
	job := toJobWithCompanyResponse(&a.Job)
	resp.Job = &job
	return resp
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

// mapSlice converts every element with f. It never returns nil so empty lists encode as [].
func mapSlice[T, R any](in []*T, f func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
