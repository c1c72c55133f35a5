package adapter

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/uaifood/client-go/internal/api"
	"github.com/uaifood/client-go/internal/catalog/domain"
)

// APICatalog satisfies the catalog Directory and Editor ports over the
// backend client, translating the wire types (string prices) into domain
// values.
type APICatalog struct {
	client *api.Client
}

func NewAPICatalog(client *api.Client) *APICatalog {
	return &APICatalog{client: client}
}

func (a *APICatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := a.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(categories))
	for i, c := range categories {
		out[i] = domain.Category{ID: c.ID, Description: c.Description}
	}
	return out, nil
}

func (a *APICatalog) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := a.client.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Item, len(items))
	for i, it := range items {
		mapped, err := mapItem(it)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}
	return out, nil
}

func (a *APICatalog) CreateCategory(ctx context.Context, description string) (domain.Category, error) {
	c, err := a.client.CreateCategory(ctx, api.CategoryInput{Description: description})
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: c.ID, Description: c.Description}, nil
}

func (a *APICatalog) UpdateCategory(ctx context.Context, id, description string) (domain.Category, error) {
	c, err := a.client.UpdateCategory(ctx, id, api.CategoryInput{Description: description})
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: c.ID, Description: c.Description}, nil
}

func (a *APICatalog) DeleteCategory(ctx context.Context, id string) error {
	return a.client.DeleteCategory(ctx, id)
}

func (a *APICatalog) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := a.client.CreateItem(ctx, itemInput(item))
	if err != nil {
		return domain.Item{}, err
	}
	return mapItem(created)
}

func (a *APICatalog) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := a.client.UpdateItem(ctx, item.ID, itemInput(item))
	if err != nil {
		return domain.Item{}, err
	}
	return mapItem(updated)
}

func (a *APICatalog) DeleteItem(ctx context.Context, id string) error {
	return a.client.DeleteItem(ctx, id)
}

func itemInput(item domain.Item) api.ItemInput {
	return api.ItemInput{
		Description: item.Description,
		UnitPrice:   item.UnitPrice.String(),
		CategoryID:  item.CategoryID,
	}
}

func mapItem(it api.Item) (domain.Item, error) {
	price, err := decimal.NewFromString(it.UnitPrice)
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %s: bad unit price %q: %w", it.ID, it.UnitPrice, err)
	}
	return domain.Item{
		ID:          it.ID,
		Description: it.Description,
		CategoryID:  it.CategoryID,
		UnitPrice:   price,
	}, nil
}
