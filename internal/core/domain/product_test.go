package domain_test

import (
	"testing"
	"time"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcodeRegistry(t *testing.T) {

	t.Run("TwentyMarketplaces", func(t *testing.T) {
		assert.Len(t, domain.BarcodeFields(), 20)
	})

	t.Run("AccessorResolvesTag", func(t *testing.T) {
		get, ok := domain.BarcodeAccessor("hepsiburada")
		require.True(t, ok)

		p := domain.Product{BarcodeHepsiburada: "HB-1"}
		assert.Equal(t, "HB-1", get(&p))
	})

	t.Run("UnknownTag", func(t *testing.T) {
		_, ok := domain.BarcodeAccessor("alibaba")
		assert.False(t, ok)
	})

	t.Run("AnyTagIsReserved", func(t *testing.T) {
		_, ok := domain.BarcodeAccessor(domain.BarcodeTagAny)
		assert.False(t, ok)
	})

	t.Run("HasAnyBarcode", func(t *testing.T) {
		p := domain.Product{}
		assert.False(t, p.HasAnyBarcode())

		p.BarcodeFlo = "FLO-9"
		assert.True(t, p.HasAnyBarcode())
	})
}

func TestProductImages(t *testing.T) {
	p := domain.Product{}
	assert.False(t, p.HasImage())

	p.ImageURL4 = "https://img.example/4.jpg"
	assert.True(t, p.HasImage())
}

func TestDisplayCategory(t *testing.T) {
	p := domain.Product{CategoryName: "Klozetler"}
	assert.Equal(t, "Klozetler", p.DisplayCategory())

	p.Category = &domain.Category{Name: "Klozet ve Rezervuar"}
	assert.Equal(t, "Klozet ve Rezervuar", p.DisplayCategory())
}

func TestSortableUpdatedAt(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	p := domain.Product{CreatedAt: created}
	assert.Equal(t, created, p.SortableUpdatedAt())

	updated := created.Add(48 * time.Hour)
	p.UpdatedAt = &updated
	assert.Equal(t, updated, p.SortableUpdatedAt())
}

func TestCriteriaNormalized(t *testing.T) {

	t.Run("Defaults", func(t *testing.T) {
		c := domain.Criteria{}.Normalized()
		assert.Equal(t, domain.DefaultPage, c.Page)
		assert.Equal(t, domain.DefaultPageSize, c.PageSize)
		assert.Equal(t, domain.SortByUpdated, c.SortBy)
		assert.Equal(t, domain.SortDesc, c.SortDir)
	})

	t.Run("ExplicitKeyDefaultsAscending", func(t *testing.T) {
		c := domain.Criteria{SortBy: domain.SortByName}.Normalized()
		assert.Equal(t, domain.SortAsc, c.SortDir)
	})

	t.Run("KeepsCallerValues", func(t *testing.T) {
		c := domain.Criteria{Page: 3, PageSize: 25}.Normalized()
		assert.Equal(t, 3, c.Page)
		assert.Equal(t, 25, c.PageSize)
	})
}

func TestBulkRequestValidate(t *testing.T) {
	ids := func(n int) []int64 {
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(i + 1)
		}
		return out
	}

	t.Run("Valid", func(t *testing.T) {
		req := domain.BulkRequest{Action: domain.ActionArchive, ProductIDs: ids(3)}
		assert.NoError(t, req.Validate())
	})

	t.Run("UnknownAction", func(t *testing.T) {
		req := domain.BulkRequest{Action: "purge", ProductIDs: ids(1)}
		assert.ErrorIs(t, req.Validate(), domain.ErrUnknownAction)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		req := domain.BulkRequest{Action: domain.ActionDelete}
		assert.ErrorIs(t, req.Validate(), domain.ErrEmptyBatch)
	})

	t.Run("BatchTooLarge", func(t *testing.T) {
		req := domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: ids(domain.MaxBulkIDs + 1),
		}
		assert.ErrorIs(t, req.Validate(), domain.ErrBatchTooLarge)
	})
}
