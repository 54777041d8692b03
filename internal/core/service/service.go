package service

import (
	"context"
	"fmt"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/internal/core/port"
)

var _ port.ProductSearcher = (*Service)(nil)
var _ port.ProductSuggester = (*Service)(nil)
var _ port.BulkMutator = (*Service)(nil)
var _ port.CategoryLister = (*Service)(nil)

// Service is the catalog engine: search, suggestions, bulk mutation
// and category listing over one products storage.
type Service struct {
	products   port.ProductsStorage
	categories port.CategoriesStorage
	events     port.EventsProducer
}

// New builds the engine. The events producer may be nil; applied bulk
// mutations are then not published.
func New(
	products port.ProductsStorage,
	categories port.CategoriesStorage,
	events port.EventsProducer,
) Service {
	return Service{products, categories, events}
}

// Search resolves one criteria value to a result page. The composed
// predicate is evaluated once over the full snapshot: the total count
// and the page derive from the same instance.
func (s Service) Search(
	ctx context.Context, c domain.Criteria,
) (domain.SearchResult, error) {
	const op = "Service.Search"

	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	c = c.Normalized()

	all, err := s.products.FetchAll(ctx)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	matched := filterProducts(all, composePredicate(c))
	totalCount := len(matched)

	sortProducts(matched, c.SortBy, c.SortDir)

	return domain.SearchResult{
		Items:      paginatePage(matched, c.Page, c.PageSize),
		TotalCount: totalCount,
		Page:       c.Page,
		PageSize:   c.PageSize,
		TotalPages: totalPages(totalCount, c.PageSize),
	}, nil
}

// ListCategories returns the active categories for default listings.
func (s Service) ListCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "Service.ListCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}
