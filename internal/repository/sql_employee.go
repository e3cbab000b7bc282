package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/domain"
)

// SQLEmployeeRepo implements EmployeeRepo on SQLite or PostgreSQL.
type SQLEmployeeRepo struct {
	db db.DBTX
}

// NewSQLEmployeeRepo creates a new SQLEmployeeRepo.
func NewSQLEmployeeRepo(conn db.DBTX) *SQLEmployeeRepo {
	return &SQLEmployeeRepo{db: conn}
}

const employeeColumns = `id, name, email, phone, notes, role, created_at`

func (r *SQLEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Name,
		strings.ToLower(e.Email),
		e.Phone,
		e.Notes,
		string(e.Role),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", e.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	return r.scanEmployee(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = ?`
	return r.scanEmployee(r.db.QueryRowContext(ctx, query, strings.ToLower(email)))
}

func (r *SQLEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := populateEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

func (r *SQLEmployeeRepo) scanEmployee(row *sql.Row) (*domain.Employee, error) {
	e, err := populateEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func populateEmployee(s scanner) (*domain.Employee, error) {
	var e domain.Employee
	var role, createdStr string
	if err := s.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Notes, &role, &createdStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	created, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.CreatedAt = created
	e.Role = domain.Role(role)
	return &e, nil
}
