package ports

import (
	"context"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id uint) error
}
