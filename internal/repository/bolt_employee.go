package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/domain"
)

// BoltEmployeeRepo implements EmployeeRepo inside one bbolt transaction.
type BoltEmployeeRepo struct {
	tx *bolt.Tx
}

type boltEmployee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (rec boltEmployee) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Notes:     rec.Notes,
		Role:      domain.Role(rec.Role),
		CreatedAt: rec.CreatedAt,
	}
}

func (r *BoltEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	people, err := bucket(r.tx, db.BucketEmployees)
	if err != nil {
		return err
	}
	emails, err := bucket(r.tx, db.BucketEmployeeEmails)
	if err != nil {
		return err
	}

	email := strings.ToLower(e.Email)
	if emails.Get([]byte(email)) != nil {
		return fmt.Errorf("%s: %w", e.Email, ErrDuplicateEmail)
	}
	rec := boltEmployee{
		ID: e.ID, Name: e.Name, Email: email, Phone: e.Phone,
		Notes: e.Notes, Role: string(e.Role), CreatedAt: e.CreatedAt.UTC(),
	}
	if err := putJSON(people, e.ID, rec); err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return emails.Put([]byte(email), []byte(e.ID))
}

func (r *BoltEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	people, err := bucket(r.tx, db.BucketEmployees)
	if err != nil {
		return nil, err
	}
	var rec boltEmployee
	found, err := getJSON(people, id, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("employee: %w", ErrNotFound)
	}
	return rec.toDomain(), nil
}

func (r *BoltEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	emails, err := bucket(r.tx, db.BucketEmployeeEmails)
	if err != nil {
		return nil, err
	}
	id := emails.Get([]byte(strings.ToLower(email)))
	if id == nil {
		return nil, fmt.Errorf("employee: %w", ErrNotFound)
	}
	return r.GetByID(ctx, string(id))
}

func (r *BoltEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	people, err := bucket(r.tx, db.BucketEmployees)
	if err != nil {
		return nil, err
	}
	var employees []*domain.Employee
	err = people.ForEach(func(k, _ []byte) error {
		var rec boltEmployee
		if _, err := getJSON(people, string(k), &rec); err != nil {
			return err
		}
		employees = append(employees, rec.toDomain())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}
