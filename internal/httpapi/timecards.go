package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/timecard/internal/contract"
	"github.com/alexanderramin/timecard/internal/domain"
)

// parseLimit reads the optional ?limit= query parameter. Absent means 0,
// which lists everything.
func parseLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", contract.ErrInvalidRequest)
	}
	return n, nil
}

func (s *Server) me(c *gin.Context) {
	emp, err := s.employees.Get(c.Request.Context(), callerFrom(c).EmployeeID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromEmployee(emp))
}

func (s *Server) listOwn(c *gin.Context) {
	s.listFor(c, callerFrom(c).EmployeeID)
}

func (s *Server) listFor(c *gin.Context, employeeID string) {
	limit, err := parseLimit(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	cards, err := s.timecards.List(c.Request.Context(), employeeID, limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromTimecards(cards))
}

func (s *Server) createOwn(c *gin.Context) {
	var req contract.CreateTimecardRequest
	// An empty body means the current week.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		s.fail(c, fmt.Errorf("%w: %v", contract.ErrInvalidRequest, err))
		return
	}

	ctx := c.Request.Context()
	caller := callerFrom(c)
	var tc *domain.Timecard
	var err error
	if req.WeekStartDate == "" {
		tc, err = s.timecards.CreateCurrentWeek(ctx, caller.EmployeeID)
	} else {
		week, perr := domain.ParseWeekKey(req.WeekStartDate, s.timecards.CurrentWeek().Location())
		if perr != nil {
			s.fail(c, perr)
			return
		}
		tc, err = s.timecards.Create(ctx, caller.EmployeeID, week)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract.FromTimecard(tc))
}

func (s *Server) checkCurrentWeek(c *gin.Context) {
	exists, week, err := s.timecards.HasCurrentWeek(c.Request.Context(), callerFrom(c).EmployeeID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.CurrentWeekResponse{Exists: exists, WeekStartDate: domain.WeekKey(week)})
}

func (s *Server) getOwn(c *gin.Context) {
	tc, err := s.timecards.Get(c.Request.Context(), callerFrom(c).EmployeeID, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromTimecard(tc))
}

func (s *Server) replaceEntries(c *gin.Context) {
	var req contract.UpdateTimecardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", contract.ErrInvalidRequest, err))
		return
	}
	if req.Entries == nil {
		s.fail(c, fmt.Errorf("%w: entries is required", contract.ErrInvalidRequest))
		return
	}
	tc, err := s.timecards.ReplaceEntries(c.Request.Context(), callerFrom(c).EmployeeID, c.Param("id"), req.Drafts())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromTimecard(tc))
}

func (s *Server) addEntry(c *gin.Context) {
	var req contract.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", contract.ErrInvalidRequest, err))
		return
	}
	tc, _, err := s.timecards.AddEntry(c.Request.Context(), callerFrom(c).EmployeeID, c.Param("id"), req.Draft())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract.FromTimecard(tc))
}

func (s *Server) removeEntry(c *gin.Context) {
	tc, err := s.timecards.RemoveEntry(c.Request.Context(), callerFrom(c).EmployeeID, c.Param("id"), c.Param("entryId"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromTimecard(tc))
}

func (s *Server) completeOwn(c *gin.Context) {
	s.completeFor(c, callerFrom(c).EmployeeID)
}

func (s *Server) completeFor(c *gin.Context, employeeID string) {
	tc, err := s.timecards.Complete(c.Request.Context(), employeeID, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contract.FromTimecard(tc))
}

func (s *Server) deleteOwn(c *gin.Context) {
	err := s.timecards.Delete(c.Request.Context(), callerFrom(c).EmployeeID, c.Param("id"), s.employeeDeleteCompleted)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
