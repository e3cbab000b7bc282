package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Ada", (&Employee{Name: "Ada Lovelace"}).FirstName())
	assert.Equal(t, "Cher", (&Employee{Name: "  Cher "}).FirstName())
	assert.Equal(t, "", (&Employee{}).FirstName())
}

func TestEmployeeValidate(t *testing.T) {
	e := &Employee{Name: "Ada", Email: "ada@example.com", Role: RoleEmployee}
	assert.NoError(t, e.Validate())

	e.Email = ""
	assert.ErrorIs(t, e.Validate(), ErrMissingField)

	e.Email = "ada@example.com"
	e.Role = "boss"
	assert.Error(t, e.Validate())
}

func TestCallerCanAccess(t *testing.T) {
	emp := Caller{EmployeeID: "e1", Role: RoleEmployee}
	mgr := Caller{EmployeeID: "m1", Role: RoleManager}

	assert.True(t, emp.CanAccess("e1"))
	assert.False(t, emp.CanAccess("e2"))
	assert.True(t, mgr.CanAccess("e2"))
	assert.False(t, emp.IsManager())
	assert.True(t, mgr.IsManager())
}
