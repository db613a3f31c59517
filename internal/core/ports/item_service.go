package ports

import (
	"context"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

// ItemInput carries the mutable fields of an item master row.
type ItemInput struct {
	Name     string
	SKU      string
	Quantity int
}

type ItemService interface {
	List(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, in ItemInput) (*domain.Item, error)
	Update(ctx context.Context, id uint, in ItemInput) error
	Delete(ctx context.Context, id uint) error
}
