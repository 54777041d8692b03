package service

import "github.com/serael/catalog/internal/core/domain"

// paginatePage slices the sorted, filtered sequence. The total count
// is taken from the full sequence before slicing, never from the page.
func paginatePage(ps []domain.Product, page, pageSize int) []domain.Product {
	offset := (page - 1) * pageSize
	if offset >= len(ps) {
		return nil
	}
	end := offset + pageSize
	if end > len(ps) {
		end = len(ps)
	}
	return ps[offset:end]
}

func totalPages(totalCount, pageSize int) int {
	return (totalCount + pageSize - 1) / pageSize
}
