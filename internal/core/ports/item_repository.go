package ports

import (
	"context"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

// ItemRepository defines persistence operations for item master rows.
type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, i *domain.Item) (*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id uint) error
}
