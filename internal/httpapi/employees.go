package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/timecard/internal/contract"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// listEmployees returns every employee with their most recent timecards.
// ?limit defaults to 3, matching the dashboard overview.
func (s *Server) listEmployees(c *gin.Context) {
	limit := 3
	if c.Query("limit") != "" {
		n, err := parseLimit(c)
		if err != nil {
			s.fail(c, err)
			return
		}
		limit = n
	}
	summaries, err := s.employees.ListWithRecent(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromSummaries(summaries))
}

// managedEmployee loads the :employeeId path target.
func (s *Server) managedEmployee(c *gin.Context) (*domain.Employee, bool) {
	emp, err := s.employees.Get(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return emp, true
}

func (s *Server) listEmployeeTimecards(c *gin.Context) {
	emp, ok := s.managedEmployee(c)
	if !ok {
		return
	}
	s.listFor(c, emp.ID)
}

func (s *Server) completeEmployeeTimecard(c *gin.Context) {
	emp, ok := s.managedEmployee(c)
	if !ok {
		return
	}
	s.completeFor(c, emp.ID)
}

func (s *Server) deleteEmployeeTimecard(c *gin.Context) {
	emp, ok := s.managedEmployee(c)
	if !ok {
		return
	}
	if err := s.timecards.Delete(c.Request.Context(), emp.ID, c.Param("id"), true); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) exportEmployeeTimecards(c *gin.Context) {
	emp, ok := s.managedEmployee(c)
	if !ok {
		return
	}
	cards, err := s.timecards.List(c.Request.Context(), emp.ID, 0)
	if err != nil {
		s.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTimecards(&buf, emp, cards); err != nil {
		s.fail(c, fmt.Errorf("exporting timecards: %w", err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(emp)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
