package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	res := r.db.WithContext(ctx).Model(&domain.Employee{ID: e.ID}).Updates(map[string]any{
		"name":            e.Name,
		"email":           e.Email,
		"date_of_joining": e.DateOfJoining,
		"status":          e.Status,
		"dob":             e.DOB,
		"country":         e.Country,
		"state":           e.State,
		"city":            e.City,
	})
	if res.Error != nil {
		return fmt.Errorf("update employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
