package domain

import "strings"

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// DaysOfWeek is the canonical Monday-first ordering.
var DaysOfWeek = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday matches a day name case-insensitively.
func ParseWeekday(s string) (Weekday, bool) {
	s = strings.TrimSpace(s)
	for _, d := range DaysOfWeek {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"employee": true, "manager": true,
}
