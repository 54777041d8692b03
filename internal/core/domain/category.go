package domain

import "time"

// A Category groups products. Deactivated categories are excluded from
// default listings; their historical products keep referring to them.
type Category struct {
	ID          int64
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
