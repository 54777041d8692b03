package service

import (
	"log/slog"
	"strings"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/pkg/textnorm"
)

// A Predicate is one boolean test over a product. Predicates compose
// with [and] and [or]; one composed instance serves both the total
// count and the page fetch of a request.
type Predicate func(*domain.Product) bool

func and(ps ...Predicate) Predicate {
	return func(p *domain.Product) bool {
		for _, pred := range ps {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

func or(ps ...Predicate) Predicate {
	return func(p *domain.Product) bool {
		for _, pred := range ps {
			if pred(p) {
				return true
			}
		}
		return false
	}
}

// searchFields are the candidate fields a search token may match,
// the short and free-text attributes first, then every marketplace
// barcode field.
var searchFields = func() []func(*domain.Product) string {
	fields := []func(*domain.Product) string{
		func(p *domain.Product) string { return p.Name },
		func(p *domain.Product) string { return p.SKU },
		func(p *domain.Product) string { return p.Brand },
		func(p *domain.Product) string { return p.EANCode },
		func(p *domain.Product) string { return p.Description },
		func(p *domain.Product) string { return p.Features },
		func(p *domain.Product) string { return p.Material },
		func(p *domain.Product) string { return p.Color },
		func(p *domain.Product) string { return p.Notes },
		func(p *domain.Product) string { return p.DisplayCategory() },
	}
	for _, bf := range domain.BarcodeFields() {
		fields = append(fields, bf.Get)
	}
	return fields
}()

// fieldMatchesToken is the dual containment test: the raw token or its
// folded form must be a substring of the raw field or its folded form.
func fieldMatchesToken(field, token, foldedToken string) bool {
	if field == "" {
		return false
	}
	folded := textnorm.Fold(field)
	return strings.Contains(field, token) ||
		strings.Contains(field, foldedToken) ||
		strings.Contains(folded, token) ||
		strings.Contains(folded, foldedToken)
}

// tokenPredicate matches a product when any candidate field satisfies
// the token.
func tokenPredicate(token string) Predicate {
	folded := textnorm.Fold(token)
	return func(p *domain.Product) bool {
		for _, get := range searchFields {
			if fieldMatchesToken(get(p), token, folded) {
				return true
			}
		}
		return false
	}
}

func statusPredicate(status string) Predicate {
	// Unrecognized values fall back to the default active-only scope.
	archived := status == domain.StatusArchived
	return func(p *domain.Product) bool {
		return p.Archived == archived
	}
}

func categoryPredicate(name string) Predicate {
	return func(p *domain.Product) bool {
		if p.CategoryName == name {
			return true
		}
		return p.Category != nil && p.Category.Name == name
	}
}

func barcodeFieldPredicate(get func(*domain.Product) string, want bool) Predicate {
	return func(p *domain.Product) bool {
		return (get(p) != "") == want
	}
}

// composePredicate builds the composite predicate for one criteria
// value. Absent criteria contribute nothing, so omission never narrows
// the result set.
//
// Each search token is an OR across the candidate fields and the
// tokens are ANDed: different tokens may be satisfied by different
// fields of the same record.
func composePredicate(c domain.Criteria) Predicate {
	var ps []Predicate

	if c.Status != domain.StatusAll {
		ps = append(ps, statusPredicate(c.Status))
	}

	for _, token := range strings.Fields(c.SearchText) {
		ps = append(ps, tokenPredicate(token))
	}

	if c.Category != "" {
		ps = append(ps, categoryPredicate(c.Category))
	}
	if brand := c.Brand; brand != "" {
		ps = append(ps, func(p *domain.Product) bool { return p.Brand == brand })
	}
	if material := c.Material; material != "" {
		ps = append(ps, func(p *domain.Product) bool { return p.Material == material })
	}
	if color := c.Color; color != "" {
		ps = append(ps, func(p *domain.Product) bool { return p.Color == color })
	}
	if ean := c.EANCode; ean != "" {
		ps = append(ps, func(p *domain.Product) bool {
			return strings.Contains(p.EANCode, ean)
		})
	}

	ps = appendRange(ps, c.MinWeight, c.MaxWeight,
		func(p *domain.Product) float64 { return p.Weight })
	ps = appendRange(ps, c.MinDesi, c.MaxDesi,
		func(p *domain.Product) float64 { return p.Desi })
	ps = appendRange(ps, c.MinWarranty, c.MaxWarranty,
		func(p *domain.Product) int { return p.WarrantyMonths })

	if want := c.HasImage; want != nil {
		ps = append(ps, func(p *domain.Product) bool {
			return p.HasImage() == *want
		})
	}
	if want := c.HasEAN; want != nil {
		ps = append(ps, func(p *domain.Product) bool {
			return (p.EANCode != "") == *want
		})
	}
	if want := c.HasBarcode; want != nil {
		ps = append(ps, func(p *domain.Product) bool {
			return p.HasAnyBarcode() == *want
		})
	}

	if pred, ok := barcodeTypePredicate(c.BarcodeType); ok {
		ps = append(ps, pred)
	}

	return and(ps...)
}

// barcodeTypePredicate dispatches a marketplace tag through the
// barcode registry. The reserved "any" tag ORs every field's non-empty
// test; an unrecognized tag is a no-op pass-through.
func barcodeTypePredicate(tag string) (Predicate, bool) {
	if tag == "" {
		return nil, false
	}
	if tag == domain.BarcodeTagAny {
		var anyOf []Predicate
		for _, bf := range domain.BarcodeFields() {
			anyOf = append(anyOf, barcodeFieldPredicate(bf.Get, true))
		}
		return or(anyOf...), true
	}
	get, ok := domain.BarcodeAccessor(tag)
	if !ok {
		slog.Debug("ignoring unknown barcode type", "tag", tag)
		return nil, false
	}
	return barcodeFieldPredicate(get, true), true
}

func appendRange[T int | float64](
	ps []Predicate, min, max *T, get func(*domain.Product) T,
) []Predicate {
	if min != nil {
		lo := *min
		ps = append(ps, func(p *domain.Product) bool { return get(p) >= lo })
	}
	if max != nil {
		hi := *max
		ps = append(ps, func(p *domain.Product) bool { return get(p) <= hi })
	}
	return ps
}

func filterProducts(ps []domain.Product, pred Predicate) []domain.Product {
	var out []domain.Product
	for i := range ps {
		if pred(&ps[i]) {
			out = append(out, ps[i])
		}
	}
	return out
}
