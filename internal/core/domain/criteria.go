package domain

// Archival scope of a search. An empty or unrecognized value is
// treated as [StatusActive]: omitting a criterion never widens the
// default listing to archived records.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
	StatusAll      = "all"
)

// Sort keys accepted by the engine.
const (
	SortByName     = "name"
	SortByBrand    = "brand"
	SortByCategory = "category"
	SortBySKU      = "sku"
	SortByWeight   = "weight"
	SortByDesi     = "desi"
	SortByWarranty = "warranty"
	SortByCreated  = "created"
	SortByUpdated  = "updated"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
	MaxBulkIDs      = 500
)

// Criteria is the full set of caller-supplied filter, sort and paging
// parameters for one query. Every zero-valued field means "no
// constraint"; tri-state flags use nil for "no constraint".
type Criteria struct {
	SearchText string
	Category   string
	Brand      string
	Status     string
	Material   string
	Color      string
	EANCode    string

	MinWeight   *float64
	MaxWeight   *float64
	MinDesi     *float64
	MaxDesi     *float64
	MinWarranty *int
	MaxWarranty *int

	HasImage   *bool
	HasEAN     *bool
	HasBarcode *bool

	BarcodeType string

	SortBy   string
	SortDir  string
	Page     int
	PageSize int
}

// Normalized returns a copy with paging and sort defaults applied:
// page 1, page size 50, sort by updated descending.
func (c Criteria) Normalized() Criteria {
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.SortBy == "" {
		c.SortBy = SortByUpdated
	}
	if c.SortDir == "" {
		if c.SortBy == SortByUpdated {
			c.SortDir = SortDesc
		} else {
			c.SortDir = SortAsc
		}
	}
	return c
}
