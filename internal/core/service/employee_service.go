package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/opsdesk/backoffice/internal/core/domain"
	"github.com/opsdesk/backoffice/internal/core/ports"
)

type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Employee{
		Name:          in.Name,
		Email:         in.Email,
		DateOfJoining: in.DateOfJoining,
		Status:        in.Status,
		DOB:           in.DOB,
		Country:       in.Country,
		State:         in.State,
		City:          in.City,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("id", created.ID).Str("name", created.Name).Msg("employee created")
	return created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uint, in ports.EmployeeInput) error {
	if id == 0 || in.Name == "" {
		return domain.ErrInvalidInput
	}

	err := s.repo.Update(ctx, &domain.Employee{
		ID:            id,
		Name:          in.Name,
		Email:         in.Email,
		DateOfJoining: in.DateOfJoining,
		Status:        in.Status,
		DOB:           in.DOB,
		Country:       in.Country,
		State:         in.State,
		City:          in.City,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Uint("id", id).Msg("employee updated")
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return domain.ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("id", id).Msg("employee deleted")
	return nil
}
