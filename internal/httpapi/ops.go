package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/timecard/internal/config"
)

func (s *Server) getLogLevel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"current logLevel": s.logLevel.Level().String()})
}

func (s *Server) setLogLevel(c *gin.Context) {
	level, err := config.ParseLogLevel(c.Param("level"))
	if err != nil {
		s.logger.Error("can not set log level", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.logLevel.Set(level)
	c.JSON(http.StatusOK, gin.H{"current logLevel": level.String()})
}
