package service

import (
	"testing"
	"time"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func ids(ps []domain.Product) []int64 {
	out := make([]int64, len(ps))
	for i := range ps {
		out[i] = ps[i].ID
	}
	return out
}

func TestSortProducts(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	t.Run("NameTiesBreakByCreatedThenID", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 3, Name: "Klozet", CreatedAt: t2},
			{ID: 2, Name: "Klozet", CreatedAt: t1},
			{ID: 1, Name: "Klozet", CreatedAt: t2},
			{ID: 4, Name: "Batarya", CreatedAt: t3},
		}
		sortProducts(ps, domain.SortByName, domain.SortAsc)
		assert.Equal(t, []int64{4, 2, 1, 3}, ids(ps))
	})

	t.Run("DescendingFlipsWholeChain", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "Klozet", CreatedAt: t2},
			{ID: 2, Name: "Klozet", CreatedAt: t1},
			{ID: 4, Name: "Batarya", CreatedAt: t3},
			{ID: 3, Name: "Klozet", CreatedAt: t2},
		}
		sortProducts(ps, domain.SortByName, domain.SortDesc)
		assert.Equal(t, []int64{3, 1, 2, 4}, ids(ps))
	})

	t.Run("FoldedTextCollation", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Name: "istif rafı", CreatedAt: t1},
			{ID: 2, Name: "İstif sepeti", CreatedAt: t1},
			{ID: 3, Name: "ızgara", CreatedAt: t1},
		}
		sortProducts(ps, domain.SortByName, domain.SortAsc)
		// All fold onto the same leading "i".
		assert.Equal(t, []int64{1, 2, 3}, ids(ps))
	})

	t.Run("UpdatedFallsBackToCreated", func(t *testing.T) {
		updated := t3.Add(time.Hour)
		ps := []domain.Product{
			{ID: 1, CreatedAt: t1, UpdatedAt: &updated},
			{ID: 2, CreatedAt: t3},
			{ID: 3, CreatedAt: t2},
		}
		sortProducts(ps, domain.SortByUpdated, domain.SortDesc)
		assert.Equal(t, []int64{1, 2, 3}, ids(ps))
	})

	t.Run("NumericKeys", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, Weight: 25, CreatedAt: t1},
			{ID: 2, Weight: 2, CreatedAt: t1},
			{ID: 3, Weight: 12, CreatedAt: t1},
		}
		sortProducts(ps, domain.SortByWeight, domain.SortAsc)
		assert.Equal(t, []int64{2, 3, 1}, ids(ps))
	})

	t.Run("UnknownKeySortsLikeUpdated", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, CreatedAt: t1},
			{ID: 2, CreatedAt: t3},
			{ID: 3, CreatedAt: t2},
		}
		sortProducts(ps, "relevance", domain.SortDesc)
		assert.Equal(t, []int64{2, 3, 1}, ids(ps))
	})

	t.Run("CategoryKeyUsesLinkedName", func(t *testing.T) {
		ps := []domain.Product{
			{ID: 1, CategoryName: "Zzz", CreatedAt: t1,
				Category: &domain.Category{Name: "Aaa"}},
			{ID: 2, CategoryName: "Bbb", CreatedAt: t1},
		}
		sortProducts(ps, domain.SortByCategory, domain.SortAsc)
		assert.Equal(t, []int64{1, 2}, ids(ps))
	})
}
