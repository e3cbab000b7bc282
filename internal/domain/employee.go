package domain

import (
	"fmt"
	"strings"
	"time"
)

type Employee struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Notes     string
	Role      Role
	CreatedAt time.Time
}

// FirstName returns the first word of Name, for greetings.
func (e *Employee) FirstName() string {
	fields := strings.Fields(e.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Validate checks the fields required to store an employee.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(e.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if !ValidRoles[string(e.Role)] {
		return fmt.Errorf("role %q must be employee or manager", e.Role)
	}
	return nil
}

// Caller is the authenticated identity on whose behalf an operation runs.
type Caller struct {
	EmployeeID string
	Role       Role
}

// IsManager reports whether the caller holds the manager role.
func (c Caller) IsManager() bool {
	return c.Role == RoleManager
}

// CanAccess reports whether the caller may act on employeeID's timecards.
func (c Caller) CanAccess(employeeID string) bool {
	return c.IsManager() || c.EmployeeID == employeeID
}
