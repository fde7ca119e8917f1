package httptransport

import (
	"log/slog"

	"github.com/ErlanBelekov/job-portal/internal/transport/http/handler"
	"github.com/ErlanBelekov/job-portal/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

type Handlers struct {
	Auth        *handler.AuthHandler
	Company     *handler.CompanyHandler
	Job         *handler.JobHandler
	Course      *handler.CourseHandler
	Application *handler.ApplicationHandler
	Contact     *handler.ContactHandler
}

type Options struct {
	JWTKey         []byte
	AdminAPIKey    string // empty disables catalog writes
	AllowedOrigins []string
	HSTS           bool
}

func NewRouter(logger *slog.Logger, h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security(opts.HSTS))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/", handler.Status)
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	api.GET("/health", handler.Health)

	authMW := middleware.Auth(opts.JWTKey)

	auth := api.Group("/auth", middleware.NoStore())
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)
	auth.GET("/me", authMW, h.Auth.Me)
	auth.PATCH("/me", authMW, h.Auth.UpdateMe)

	api.GET("/companies", h.Company.List)
	api.GET("/companies/:id", h.Company.GetByID)
	api.GET("/jobs", h.Job.List)
	api.GET("/jobs/:id", h.Job.GetByID)
	api.GET("/courses", h.Course.List)
	api.GET("/courses/:id", h.Course.GetByID)

	if opts.AdminAPIKey != "" {
		admin := api.Group("", middleware.AdminKey(opts.AdminAPIKey))
		admin.POST("/companies", h.Company.Create)
		admin.POST("/jobs", h.Job.Create)
		admin.PATCH("/jobs/:id", h.Job.Update)
		admin.POST("/courses", h.Course.Create)
	}

	applications := api.Group("/applications", middleware.NoStore(), authMW)
	applications.POST("", h.Application.Apply)
	applications.GET("", h.Application.List)
	applications.DELETE("/:id", h.Application.Withdraw)

	api.POST("/contacts", h.Contact.Submit)
	api.POST("/contact", h.Contact.Submit) // singular path used by older frontends

	return r
}
