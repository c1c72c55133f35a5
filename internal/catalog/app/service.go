package app

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	cartdomain "github.com/uaifood/client-go/internal/cart/domain"
	"github.com/uaifood/client-go/internal/catalog/domain"
)

var ErrInvalidInput = errors.New("catalog: invalid input")

type Service struct {
	dir    Directory
	editor Editor
}

func NewService(dir Directory, editor Editor) *Service {
	return &Service{dir: dir, editor: editor}
}

// Menu loads categories and items concurrently and groups items under
// their category, preserving the backend's category order. Items without a
// known category are dropped, as in the hosted client.
func (s *Service) Menu(ctx context.Context) ([]domain.MenuSection, error) {
	var (
		categories []domain.Category
		items      []domain.Item
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.dir.ListCategories(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.dir.ListItems(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byCategory := make(map[string][]domain.Item, len(categories))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}

	sections := make([]domain.MenuSection, 0, len(categories))
	for _, cat := range categories {
		sections = append(sections, domain.MenuSection{
			Category: cat,
			Items:    byCategory[cat.ID],
		})
	}
	return sections, nil
}

// CartLine converts a menu item into a quantity-1 cart line, the shape the
// cart store accepts from the menu's add action.
func CartLine(it domain.Item) cartdomain.LineItem {
	return cartdomain.LineItem{
		ID:          it.ID,
		Description: it.Description,
		UnitPrice:   it.UnitPrice,
		Quantity:    1,
	}
}

// Administrative operations. Validation failures never reach the network;
// server-side conflicts (e.g. deleting a category with items) pass through
// untouched for the caller to surface.

func (s *Service) CreateCategory(ctx context.Context, description string) (domain.Category, error) {
	if strings.TrimSpace(description) == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.editor.CreateCategory(ctx, description)
}

func (s *Service) UpdateCategory(ctx context.Context, id, description string) (domain.Category, error) {
	if id == "" || strings.TrimSpace(description) == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.editor.UpdateCategory(ctx, id, description)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.editor.DeleteCategory(ctx, id)
}

func (s *Service) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}
	return s.editor.CreateItem(ctx, item)
}

func (s *Service) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.ID == "" {
		return domain.Item{}, ErrInvalidInput
	}
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}
	return s.editor.UpdateItem(ctx, item)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.editor.DeleteItem(ctx, id)
}

func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.Description) == "" {
		return ErrInvalidInput
	}
	if item.CategoryID == "" {
		return ErrInvalidInput
	}
	if item.UnitPrice.Sign() <= 0 {
		return ErrInvalidInput
	}
	return nil
}
