package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msetrainings/nutrition/models"
)

func TestLogDateCreate_Canonicalizes(t *testing.T) {
	f := newFixture(t)

	created, err := f.dates.Create(f.ctx, "2024-06-05")
	require.NoError(t, err)
	assert.True(t, created)

	ld, err := f.dates.Get(f.ctx, "20240605")
	require.NoError(t, err)
	assert.Equal(t, "20240605", ld.EntryDate)
}

func TestLogDateCreate_InvalidFormat(t *testing.T) {
	f := newFixture(t)

	for _, raw := range []string{"", "06/05/2024", "2024-02-30", "20240605"} {
		_, err := f.dates.Create(f.ctx, raw)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, raw)
	}

	var n int64
	require.NoError(t, f.db.Model(&models.LogDate{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestLogDateCreate_DuplicateIgnored(t *testing.T) {
	f := newFixture(t)

	_, err := f.dates.Create(f.ctx, "2024-06-05")
	require.NoError(t, err)
	created, err := f.dates.Create(f.ctx, "2024-06-05")
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	require.NoError(t, f.db.Model(&models.LogDate{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestLogDateGet_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.dates.Get(f.ctx, "20240101")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWithTotals(t *testing.T) {
	f := newFixture(t)

	for _, d := range []string{"2024-06-04", "2024-06-06", "2024-06-05"} {
		_, err := f.dates.Create(f.ctx, d)
		require.NoError(t, err)
	}
	_, err := f.foods.Create(f.ctx, FoodInput{Name: "chicken", Protein: 30, Fat: 5})
	require.NoError(t, err)
	_, err = f.foods.Create(f.ctx, FoodInput{Name: "rice", Protein: 3, Carbohydrates: 28})
	require.NoError(t, err)

	chicken, err := f.foods.Get(f.ctx, "chicken")
	require.NoError(t, err)
	rice, err := f.foods.Get(f.ctx, "rice")
	require.NoError(t, err)
	day, err := f.dates.Get(f.ctx, "20240605")
	require.NoError(t, err)

	_, err = f.entries.Add(f.ctx, chicken.ID, day.ID)
	require.NoError(t, err)
	_, err = f.entries.Add(f.ctx, rice.ID, day.ID)
	require.NoError(t, err)

	rows, err := f.dates.ListWithTotals(f.ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"20240606", "20240605", "20240604"},
		[]string{rows[0].EntryDate, rows[1].EntryDate, rows[2].EntryDate})

	assert.Equal(t, "June 05, 2024", rows[1].PrettyDate)
	assert.Equal(t, 33.0, rows[1].Protein)
	assert.Equal(t, 28.0, rows[1].Carbohydrates)
	assert.Equal(t, 5.0, rows[1].Fat)
	assert.Equal(t, 165.0+124.0, rows[1].Calories)

	assert.Zero(t, rows[0].Protein)
	assert.Zero(t, rows[0].Calories)
}

func TestLogDateDelete_CascadesEntries(t *testing.T) {
	f := newFixture(t)

	_, err := f.dates.Create(f.ctx, "2024-06-05")
	require.NoError(t, err)
	_, err = f.foods.Create(f.ctx, FoodInput{Name: "egg", Protein: 6, Fat: 5})
	require.NoError(t, err)
	egg, _ := f.foods.Get(f.ctx, "egg")
	day, _ := f.dates.Get(f.ctx, "20240605")
	_, err = f.entries.Add(f.ctx, egg.ID, day.ID)
	require.NoError(t, err)

	require.NoError(t, f.dates.Delete(f.ctx, "20240605"))

	_, err = f.dates.Get(f.ctx, "20240605")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := f.entries.ListForDate(f.ctx, "20240605")
	require.NoError(t, err)
	assert.Empty(t, entries)

	var links int64
	require.NoError(t, f.db.Model(&models.FoodDate{}).Count(&links).Error)
	assert.Zero(t, links)

	// the food itself survives
	_, err = f.foods.Get(f.ctx, "egg")
	assert.NoError(t, err)
}

func TestLogDateDelete_UnknownIsNoop(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.dates.Delete(f.ctx, "19990101"))
}

func TestLogDateCreate_LostRaceIsIgnored(t *testing.T) {
	f := newFixture(t)
	onceBeforeCreate(t, f, "log_date", func() {
		require.NoError(t, f.db.Exec("INSERT INTO log_date (entry_date) VALUES (?)", "20240605").Error)
	})

	created, err := f.dates.Create(f.ctx, "2024-06-05")
	require.NoError(t, err)
	assert.False(t, created)

	var n int64
	require.NoError(t, f.db.Model(&models.LogDate{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestLogDateCreate_FailedRecheckReturnsInsertError(t *testing.T) {
	f := newFixture(t)
	onceBeforeCreate(t, f, "log_date", func() {
		require.NoError(t, f.db.Exec("DROP TABLE food_date").Error)
		require.NoError(t, f.db.Exec("DROP TABLE log_date").Error)
	})

	created, err := f.dates.Create(f.ctx, "2024-06-05")
	require.Error(t, err)
	assert.False(t, created)
	assert.Contains(t, err.Error(), "create log date 20240605")
}
