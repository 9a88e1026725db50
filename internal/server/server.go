package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lastminute/internal/auth"
	"lastminute/internal/service"
)

// timeNow is swapped out in tests that pin "today".
var timeNow = time.Now

// Server provides HTTP handlers for the portal backend.
type Server struct {
	engine         *gin.Engine
	logger         *slog.Logger
	tokens         *auth.TokenManager
	userSvc        *service.UserService
	categorySvc    *service.CategoryService
	taskSvc        *service.TaskService
	documentSvc    *service.DocumentService
	testimonialSvc *service.TestimonialService
}

// New constructs the HTTP server with routes and middleware configured.
func New(
	logger *slog.Logger,
	tokens *auth.TokenManager,
	userSvc *service.UserService,
	categorySvc *service.CategoryService,
	taskSvc *service.TaskService,
	documentSvc *service.DocumentService,
	testimonialSvc *service.TestimonialService,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine:         router,
		logger:         logger,
		tokens:         tokens,
		userSvc:        userSvc,
		categorySvc:    categorySvc,
		taskSvc:        taskSvc,
		documentSvc:    documentSvc,
		testimonialSvc: testimonialSvc,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", s.handleSignup)
			authGroup.POST("/login", s.handleLogin)
			authGroup.GET("/me", s.requireAuth, s.handleMe)
			authGroup.PUT("/me", s.requireAuth, s.handleUpdateProfile)
		}

		plannerGroup := api.Group("/planner", s.requireAuth)
		{
			plannerGroup.GET("/categories", s.handleListCategories)
			plannerGroup.POST("/categories", s.handleCreateCategory)
			plannerGroup.DELETE("/categories/:id", s.handleDeleteCategory)

			plannerGroup.GET("/tasks", s.handleListTasks)
			plannerGroup.POST("/tasks", s.handleCreateTask)
			plannerGroup.PUT("/tasks/:id", s.handleUpdateTask)
			plannerGroup.DELETE("/tasks/:id", s.handleDeleteTask)
			plannerGroup.POST("/tasks/:id/toggle", s.handleToggleTask)

			plannerGroup.GET("/view", s.handlePlannerView)
		}

		api.GET("/documents", s.handleBrowseDocuments)
		api.POST("/documents", s.requireAuth, s.handleSubmitDocument)
		api.POST("/documents/:id/download", s.handleDownloadDocument)

		api.GET("/testimonials", s.handleListTestimonials)
		api.POST("/testimonials", s.requireAuth, s.handleSubmitTestimonial)

		admin := api.Group("/admin", s.requireAuth, s.requireAdmin)
		{
			admin.GET("/documents", s.handleAdminListDocuments)
			admin.PUT("/documents/:id/status", s.handleSetDocumentStatus)
			admin.DELETE("/documents/:id", s.handleDeleteDocument)

			admin.GET("/testimonials", s.handleAdminListTestimonials)
			admin.PUT("/testimonials/:id/approve", s.handleApproveTestimonial)
			admin.DELETE("/testimonials/:id", s.handleDeleteTestimonial)
		}
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseID converts a path parameter to uint with error handling.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid identifier"})
		return 0, false
	}
	return uint(id), true
}

// respondError logs the error and returns a JSON payload, mapping missing
// records to 404.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = http.StatusNotFound
	}
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
