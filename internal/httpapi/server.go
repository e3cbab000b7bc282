// Package httpapi exposes the timecard services over HTTP with gin.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/timecard/internal/service"
)

// CallerHeader carries the authenticated employee ID. Credential checks
// happen upstream of this service.
const CallerHeader = "X-Employee-ID"

type Config struct {
	Logger   *slog.Logger
	LogLevel *slog.LevelVar
	// EmployeeDeleteCompleted lets employees delete their own completed
	// timecards.
	EmployeeDeleteCompleted bool
}

type Server struct {
	timecards               service.TimecardService
	employees               service.EmployeeService
	logger                  *slog.Logger
	logLevel                *slog.LevelVar
	employeeDeleteCompleted bool
}

func NewServer(timecards service.TimecardService, employees service.EmployeeService, cfg Config) *Server {
	if cfg.LogLevel == nil {
		cfg.LogLevel = new(slog.LevelVar)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Server{
		timecards:               timecards,
		employees:               employees,
		logger:                  cfg.Logger,
		logLevel:                cfg.LogLevel,
		employeeDeleteCompleted: cfg.EmployeeDeleteCompleted,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "healthy"})
	})
	router.GET("/logLevel", s.getLogLevel)
	router.PUT("/logLevel/:level", s.setLogLevel)

	api := router.Group("/api", s.requireCaller())
	api.GET("/auth/me", s.me)

	own := api.Group("/timecard")
	own.GET("", s.listOwn)
	own.POST("", s.createOwn)
	own.GET("/check-current-week", s.checkCurrentWeek)
	own.GET("/:id", s.getOwn)
	own.PUT("/:id", s.replaceEntries)
	own.DELETE("/:id", s.deleteOwn)
	own.POST("/:id/entries", s.addEntry)
	own.DELETE("/:id/entries/:entryId", s.removeEntry)
	own.PUT("/:id/complete", s.completeOwn)

	managed := api.Group("/employees", requireManager())
	managed.GET("", s.listEmployees)
	managed.GET("/:employeeId/timecards", s.listEmployeeTimecards)
	managed.GET("/:employeeId/timecards/export", s.exportEmployeeTimecards)
	managed.PUT("/:employeeId/timecards/:id/complete", s.completeEmployeeTimecard)
	managed.DELETE("/:employeeId/timecards/:id", s.deleteEmployeeTimecard)

	return router
}

// NewHTTPServer wraps the router for ListenAndServe with conservative
// timeouts.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1024 * 10,
	}
}
