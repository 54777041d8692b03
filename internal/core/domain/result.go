package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrAlreadyInState   = errors.New("product already in requested state")
	ErrUnknownAction    = errors.New("unknown bulk action")
	ErrEmptyBatch       = errors.New("empty id batch")
	ErrBatchTooLarge    = errors.New("id batch exceeds limit")
	ErrCategoryNotFound = errors.New("category not found")
)

// SearchResult is one page of a filtered, sorted catalog listing.
// TotalCount and Items derive from one predicate instance evaluated
// over the same snapshot.
type SearchResult struct {
	Items      []Product
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// Bulk mutation actions.
const (
	ActionArchive   = "archive"
	ActionUnarchive = "unarchive"
	ActionDelete    = "delete"
)

// BulkRequest names one action and the ids to apply it to. Size limits
// are validated by the caller before the engine runs.
type BulkRequest struct {
	Action     string
	ProductIDs []int64
}

// Validate rejects malformed batches. Per-id failures are not errors;
// they land in [BulkResult.FailCount].
func (r BulkRequest) Validate() error {
	switch r.Action {
	case ActionArchive, ActionUnarchive, ActionDelete:
	default:
		return ErrUnknownAction
	}
	if len(r.ProductIDs) == 0 {
		return ErrEmptyBatch
	}
	if len(r.ProductIDs) > MaxBulkIDs {
		return ErrBatchTooLarge
	}
	return nil
}

// BulkResult reports the per-id accounting of a batch. The two
// counters always sum to the batch size.
type BulkResult struct {
	SuccessCount int
	FailCount    int
}

// Suggestion kinds.
const (
	SuggestionProduct = "product"
	SuggestionBrand   = "brand"
)

// A Suggestion is one autocomplete candidate. Highlight carries the
// text with the matched span wrapped in <strong> tags.
type Suggestion struct {
	Text      string
	Kind      string
	Highlight string
}

// A CatalogEvent records one applied bulk mutation for downstream
// consumers.
type CatalogEvent struct {
	ProductID  int64
	Action     string
	OccurredAt time.Time
}
