package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk/backoffice/internal/core/domain"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, i *domain.Item) (*domain.Item, error) {
	if err := r.db.WithContext(ctx).Create(i).Error; err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return i, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domain.Item) error {
	res := r.db.WithContext(ctx).Model(&domain.Item{ID: i.ID}).Updates(map[string]any{
		"name":     i.Name,
		"sku":      i.SKU,
		"quantity": i.Quantity,
	})
	if res.Error != nil {
		return fmt.Errorf("update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
