package ports

import (
	"context"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

// EmployeeInput carries all mutable fields of an employee record. Dates are
// YYYY-MM-DD strings, matching the wire format. Nil pointers mean the field
// was not supplied and persist as NULL.
type EmployeeInput struct {
	Name          string
	Email         *string
	DateOfJoining *string
	Status        string
	DOB           *string
	Country       string
	State         string
	City          string
}

type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id uint, in EmployeeInput) error
	Delete(ctx context.Context, id uint) error
}
