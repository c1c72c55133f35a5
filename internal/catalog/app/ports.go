package app

import (
	"context"

	"github.com/uaifood/client-go/internal/catalog/domain"
)

// Directory reads the published menu from the backend.
type Directory interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}

// Editor is the administrative write surface of the catalog.
type Editor interface {
	CreateCategory(ctx context.Context, description string) (domain.Category, error)
	UpdateCategory(ctx context.Context, id, description string) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
