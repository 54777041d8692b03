package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/pkg/textnorm"
)

// sortProducts orders the filtered set by the requested key with
// creation-timestamp and id tie-breaks, all in the requested
// direction. The three-level chain yields a strict total order, so
// page boundaries stay stable under duplicate primary values.
func sortProducts(ps []domain.Product, sortBy, dir string) {
	desc := dir == domain.SortDesc
	slices.SortStableFunc(ps, func(a, b domain.Product) int {
		c := compareProducts(&a, &b, sortBy)
		if desc {
			return -c
		}
		return c
	})
}

func compareProducts(a, b *domain.Product, key string) int {
	if c := comparePrimary(a, b, key); c != 0 {
		return c
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func comparePrimary(a, b *domain.Product, key string) int {
	switch key {
	case domain.SortByName:
		return compareFolded(a.Name, b.Name)
	case domain.SortByBrand:
		return compareFolded(a.Brand, b.Brand)
	case domain.SortByCategory:
		return compareFolded(a.DisplayCategory(), b.DisplayCategory())
	case domain.SortBySKU:
		return compareFolded(a.SKU, b.SKU)
	case domain.SortByWeight:
		return cmp.Compare(a.Weight, b.Weight)
	case domain.SortByDesi:
		return cmp.Compare(a.Desi, b.Desi)
	case domain.SortByWarranty:
		return cmp.Compare(a.WarrantyMonths, b.WarrantyMonths)
	case domain.SortByCreated:
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		// SortByUpdated and unrecognized keys.
		return a.SortableUpdatedAt().Compare(b.SortableUpdatedAt())
	}
}

// Text keys compare on the folded form so locale letter variants of
// the same word collate together.
func compareFolded(a, b string) int {
	return strings.Compare(textnorm.Fold(a), textnorm.Fold(b))
}
