package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/config"
	"github.com/healthyrecipehub/backend/internal/api"
	"github.com/healthyrecipehub/backend/internal/middleware"
	"github.com/healthyrecipehub/backend/internal/service"
)

// reportInterval is how often the daily activity report is regenerated.
const reportInterval = time.Hour

// Server represents the HTTP server
type Server struct {
	router  *gin.Engine
	http    *http.Server
	db      *gorm.DB
	reports *service.ReportService
	cancel  context.CancelFunc
}

// New wires services, middleware and routes into a runnable server.
func New(cfg *config.Config, db *gorm.DB) *Server {
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	emailService := service.NewEmailService()
	authService := service.NewAuthService(db, cfg.JWTSecret, emailService)

	var exportService service.IExportService
	if s3Config, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("Warning: S3 unavailable, recipe export disabled: %v", err)
	} else {
		exportService = service.NewExportService(db, s3Config)
	}

	api.RegisterRoutes(router, db, authService, exportService, cfg)

	return &Server{
		router:  router,
		db:      db,
		reports: service.NewReportService(db),
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start begins serving requests and launches the report generator. It
// blocks until the listener stops.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.reports.Run(ctx, reportInterval)

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and background tasks.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
