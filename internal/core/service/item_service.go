package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/opsdesk/backoffice/internal/core/domain"
	"github.com/opsdesk/backoffice/internal/core/ports"
)

type ItemService struct {
	repo   ports.ItemRepository
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemService) Create(ctx context.Context, in ports.ItemInput) (*domain.Item, error) {
	if in.Name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Item{
		Name:     in.Name,
		SKU:      in.SKU,
		Quantity: in.Quantity,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("id", created.ID).Str("sku", created.SKU).Msg("item created")
	return created, nil
}

func (s *ItemService) Update(ctx context.Context, id uint, in ports.ItemInput) error {
	if id == 0 || in.Name == "" || in.Quantity < 0 {
		return domain.ErrInvalidInput
	}

	err := s.repo.Update(ctx, &domain.Item{
		ID:       id,
		Name:     in.Name,
		SKU:      in.SKU,
		Quantity: in.Quantity,
	})
	if err != nil {
		return err
	}

	s.logger.Info().Uint("id", id).Msg("item updated")
	return nil
}

func (s *ItemService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return domain.ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("id", id).Msg("item deleted")
	return nil
}
