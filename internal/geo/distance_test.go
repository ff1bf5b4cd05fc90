package geo_test

import (
	"testing"

	"github.com/UnknownOlympus/compass/internal/geo"
	"github.com/UnknownOlympus/compass/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	t.Run("known value - one degree of longitude on the equator", func(t *testing.T) {
		t.Parallel()

		got := geo.Distance(0, 0, 0, 1)

		assert.InDelta(t, 111.19, got, 0.1)
	})

	t.Run("identical points have zero distance", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, geo.Distance(50.45, 30.52, 50.45, 30.52))
	})

	t.Run("symmetric under swapping the points", func(t *testing.T) {
		t.Parallel()

		forward := geo.Distance(28.61, 77.21, 19.08, 72.88)
		backward := geo.Distance(19.08, 72.88, 28.61, 77.21)

		assert.InDelta(t, forward, backward, 1e-9)
	})
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 111.19, geo.Round2(111.19492664), 1e-9)
	assert.InDelta(t, 0.01, geo.Round2(0.005), 1e-9)
	assert.Zero(t, geo.Round2(0))
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	origin := models.Coordinates{Latitude: 0, Longitude: 0}
	schools := []models.School{
		{ID: 1, Name: "North", Latitude: 1, Longitude: 0},
		{ID: 2, Name: "Origin", Latitude: 0, Longitude: 0},
	}

	annotated := geo.Annotate(origin, schools)

	require.Len(t, annotated, 2)
	assert.Equal(t, 1, annotated[0].ID)
	assert.InDelta(t, 111.19, annotated[0].Distance, 0.1)
	assert.Zero(t, annotated[1].Distance)
}

func TestSortByDistance(t *testing.T) {
	t.Parallel()

	t.Run("orders schools by ascending distance", func(t *testing.T) {
		t.Parallel()

		schools := []models.SchoolDistance{
			{School: models.School{ID: 1}, Distance: 12.5},
			{School: models.School{ID: 2}, Distance: 3.1},
			{School: models.School{ID: 3}, Distance: 7.42},
		}

		geo.SortByDistance(schools)

		require.Len(t, schools, 3)
		assert.Equal(t, []int{2, 3, 1}, []int{schools[0].ID, schools[1].ID, schools[2].ID})
		for i := 1; i < len(schools); i++ {
			assert.LessOrEqual(t, schools[i-1].Distance, schools[i].Distance)
		}
	})

	t.Run("stable - ties keep retrieval order", func(t *testing.T) {
		t.Parallel()

		schools := []models.SchoolDistance{
			{School: models.School{ID: 10}, Distance: 5},
			{School: models.School{ID: 11}, Distance: 5},
			{School: models.School{ID: 12}, Distance: 1},
		}

		geo.SortByDistance(schools)

		assert.Equal(t, []int{12, 10, 11}, []int{schools[0].ID, schools[1].ID, schools[2].ID})
	})

	t.Run("idempotent - sorting twice yields identical order", func(t *testing.T) {
		t.Parallel()

		schools := []models.SchoolDistance{
			{School: models.School{ID: 1}, Distance: 2.2},
			{School: models.School{ID: 2}, Distance: 2.2},
			{School: models.School{ID: 3}, Distance: 0.5},
		}

		geo.SortByDistance(schools)
		first := []int{schools[0].ID, schools[1].ID, schools[2].ID}

		geo.SortByDistance(schools)
		second := []int{schools[0].ID, schools[1].ID, schools[2].ID}

		assert.Equal(t, first, second)
	})
}
