package port

import (
	"context"

	"github.com/serael/catalog/internal/core/domain"
)

// Inbound ports: the engine as its callers see it.

type ProductSearcher interface {
	Search(context.Context, domain.Criteria) (domain.SearchResult, error)
}

type ProductSuggester interface {
	Suggest(ctx context.Context, query string) ([]domain.Suggestion, error)
}

type BulkMutator interface {
	ApplyBulk(context.Context, domain.BulkRequest) (domain.BulkResult, error)
}

type CategoryLister interface {
	ListCategories(context.Context) ([]domain.Category, error)
}

// Outbound ports: collaborators the engine drives.

// ProductsStorage is the record source and mutation sink. FetchAll
// returns a snapshot of the whole catalog; Find reports
// [domain.ErrProductNotFound] for missing ids.
type ProductsStorage interface {
	FetchAll(context.Context) ([]domain.Product, error)
	Find(ctx context.Context, id int64) (domain.Product, error)
	Save(context.Context, domain.Product) error
	Delete(ctx context.Context, id int64) error
}

// CategoriesStorage lists category entities. ListActive excludes
// deactivated categories.
type CategoriesStorage interface {
	ListActive(context.Context) ([]domain.Category, error)
}

// EventsProducer publishes applied catalog mutations.
type EventsProducer interface {
	ProduceEvents(context.Context, []domain.CatalogEvent) error
}
