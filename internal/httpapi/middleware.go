package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/timecard/internal/contract"
	"github.com/alexanderramin/timecard/internal/domain"
)

const callerKey = "caller"

// requireCaller resolves CallerHeader into a domain.Caller stored on the
// context. Unknown employees are treated as unauthenticated.
func (s *Server) requireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(CallerHeader))
		if id == "" {
			s.fail(c, fmt.Errorf("%w: missing %s header", contract.ErrUnauthenticated, CallerHeader))
			return
		}
		caller, err := s.employees.Caller(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				err = fmt.Errorf("%w: unknown employee %s", contract.ErrUnauthenticated, id)
			}
			s.fail(c, err)
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

func requireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !callerFrom(c).IsManager() {
			resp, status := contract.NewErrorResponse(fmt.Errorf("%w: manager role required", domain.ErrForbidden))
			c.AbortWithStatusJSON(status, resp)
			return
		}
		c.Next()
	}
}

func callerFrom(c *gin.Context) domain.Caller {
	v, ok := c.Get(callerKey)
	if !ok {
		return domain.Caller{}
	}
	caller, _ := v.(domain.Caller)
	return caller
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if caller := callerFrom(c); caller.EmployeeID != "" {
			attrs = append(attrs, "employee_id", caller.EmployeeID)
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			s.logger.ErrorContext(c.Request.Context(), "http_request", attrs...)
		case c.Writer.Status() >= http.StatusBadRequest:
			s.logger.WarnContext(c.Request.Context(), "http_request", attrs...)
		default:
			s.logger.DebugContext(c.Request.Context(), "http_request", attrs...)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+CallerHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// fail writes the error response for err and aborts the chain. Internal
// errors are logged with their detail, which the client does not see.
func (s *Server) fail(c *gin.Context, err error) {
	resp, status := contract.NewErrorResponse(err)
	if resp.Error.Code == contract.ErrCodeInternal {
		s.logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, resp)
}
