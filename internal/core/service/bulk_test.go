package service_test

import (
	"testing"

	"github.com/serael/catalog/internal/core/domain"
	"github.com/serael/catalog/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBulkArchive(t *testing.T) {

	t.Run("MissingIDCountsAsFailure", func(t *testing.T) {
		st := newMemStorage(catalogFixture()...)
		svc := service.New(st, stubCategories{}, nil)

		res, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: []int64{1, 9999999},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.SuccessCount)
		assert.Equal(t, 1, res.FailCount)

		a, err := st.Find(t.Context(), 1)
		require.NoError(t, err)
		assert.True(t, a.Archived)
		require.NotNil(t, a.UpdatedAt)

		// The flip touches nothing else.
		assert.Equal(t, "Klozet A", a.Name)
		assert.Equal(t, "Serel", a.Brand)
		assert.Equal(t, createdA, a.CreatedAt)
	})

	t.Run("AlreadyArchivedCountsAsFailure", func(t *testing.T) {
		ps := catalogFixture()
		ps[0].Archived = true
		st := newMemStorage(ps...)
		svc := service.New(st, stubCategories{}, nil)

		res, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: []int64{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.SuccessCount)
		assert.Equal(t, 1, res.FailCount)
	})

	t.Run("PersistenceFaultDoesNotAbortBatch", func(t *testing.T) {
		st := newMemStorage(catalogFixture()...)
		st.saveErrIDs[2] = true
		svc := service.New(st, stubCategories{}, nil)

		res, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: []int64{1, 2, 3},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, res.SuccessCount)
		assert.Equal(t, 1, res.FailCount)
	})
}

func TestApplyBulkUnarchive(t *testing.T) {
	ps := catalogFixture()
	ps[0].Archived = true
	st := newMemStorage(ps...)
	svc := service.New(st, stubCategories{}, nil)

	res, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
		Action:     domain.ActionUnarchive,
		ProductIDs: []int64{1, 2},
	})
	require.NoError(t, err)
	// 2 was never archived, so unarchive fails for it.
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.FailCount)

	a, err := st.Find(t.Context(), 1)
	require.NoError(t, err)
	assert.False(t, a.Archived)
}

func TestApplyBulkDelete(t *testing.T) {
	st := newMemStorage(catalogFixture()...)
	svc := service.New(st, stubCategories{}, nil)

	res, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
		Action:     domain.ActionDelete,
		ProductIDs: []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 0, res.FailCount)

	_, err = st.Find(t.Context(), 3)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestApplyBulkValidation(t *testing.T) {
	svc := service.New(newMemStorage(), stubCategories{}, nil)

	t.Run("UnknownAction", func(t *testing.T) {
		_, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action: "purge", ProductIDs: []int64{1},
		})
		assert.ErrorIs(t, err, domain.ErrUnknownAction)
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		_, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action: domain.ActionArchive,
		})
		assert.ErrorIs(t, err, domain.ErrEmptyBatch)
	})
}

func TestApplyBulkEvents(t *testing.T) {

	t.Run("EmitsOneEventPerSuccess", func(t *testing.T) {
		st := newMemStorage(catalogFixture()...)
		rec := new(eventsRecorder)
		svc := service.New(st, stubCategories{}, rec)

		_, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: []int64{1, 2, 9999999},
		})
		require.NoError(t, err)

		require.Len(t, rec.events, 2)
		assert.Equal(t, int64(1), rec.events[0].ProductID)
		assert.Equal(t, domain.ActionArchive, rec.events[0].Action)
		assert.Equal(t, int64(2), rec.events[1].ProductID)
	})

	t.Run("TransientProducerFaultIsRetried", func(t *testing.T) {
		st := newMemStorage(catalogFixture()...)
		rec := &eventsRecorder{failN: 2}
		svc := service.New(st, stubCategories{}, rec)

		_, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: []int64{1},
		})
		require.NoError(t, err)

		assert.Equal(t, 3, rec.calls)
		require.Len(t, rec.events, 1)
		assert.Equal(t, int64(1), rec.events[0].ProductID)
	})

	t.Run("ProducerFaultKeepsAccounting", func(t *testing.T) {
		st := newMemStorage(catalogFixture()...)
		rec := &eventsRecorder{err: assert.AnError}
		svc := service.New(st, stubCategories{}, rec)

		res, err := svc.ApplyBulk(t.Context(), domain.BulkRequest{
			Action:     domain.ActionArchive,
			ProductIDs: []int64{1},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, res.SuccessCount)
	})
}
