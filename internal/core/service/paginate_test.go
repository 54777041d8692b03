package service

import (
	"testing"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginatePage(t *testing.T) {
	ps := make([]domain.Product, 7)
	for i := range ps {
		ps[i].ID = int64(i + 1)
	}

	t.Run("FirstPage", func(t *testing.T) {
		got := paginatePage(ps, 1, 3)
		assert.Equal(t, []int64{1, 2, 3}, ids(got))
	})

	t.Run("LastPageIsShort", func(t *testing.T) {
		got := paginatePage(ps, 3, 3)
		assert.Equal(t, []int64{7}, ids(got))
	})

	t.Run("BeyondEnd", func(t *testing.T) {
		assert.Empty(t, paginatePage(ps, 4, 3))
	})

	t.Run("PagesAreDisjointAndComplete", func(t *testing.T) {
		seen := make(map[int64]bool)
		var concat []int64
		for page := 1; page <= 3; page++ {
			for _, id := range ids(paginatePage(ps, page, 3)) {
				require.False(t, seen[id], "id %d appeared twice", id)
				seen[id] = true
				concat = append(concat, id)
			}
		}
		assert.Equal(t, ids(ps), concat)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 50))
	assert.Equal(t, 1, totalPages(1, 50))
	assert.Equal(t, 1, totalPages(50, 50))
	assert.Equal(t, 2, totalPages(51, 50))
	assert.Equal(t, 3, totalPages(7, 3))
}
