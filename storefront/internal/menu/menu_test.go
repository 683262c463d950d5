package menu

import (
	"context"
	"errors"
	"testing"

	"bytebite/mealapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	meals []mealapi.Meal
	err   error
	calls int
}

func (s *stubSource) MealsByArea(ctx context.Context, area string) ([]mealapi.Meal, error) {
	s.calls++
	return s.meals, s.err
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	source := &stubSource{meals: []mealapi.Meal{
		{MealID: "a1", RestaurantName: "R", DishName: "A", Price: 12.99, PrepTime: 10, Area: "Central"},
		{MealID: "b2", RestaurantName: "R", DishName: "B", Price: 14.99, PrepTime: 15, Area: "Central"},
		{MealID: "x", RestaurantName: "Elsewhere", DishName: "X", Price: 5, PrepTime: 5, Area: "North"},
	}}
	fetcher := NewHTTPFetcher(source)

	meals, err := fetcher.Fetch(context.Background(), "Central")

	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "A", meals[0].DishName)
	assert.Equal(t, "12.99", meals[0].Price.String())
	assert.Equal(t, PlaceholderImage("a1"), meals[0].ImageURL)
	assert.Contains(t, meals[1].ImageURL, "sig=b2")
}

func TestHTTPFetcher_NoCaching(t *testing.T) {
	source := &stubSource{meals: []mealapi.Meal{}}
	fetcher := NewHTTPFetcher(source)

	_, _ = fetcher.Fetch(context.Background(), "North")
	_, _ = fetcher.Fetch(context.Background(), "North")

	assert.Equal(t, 2, source.calls)
}

func TestHTTPFetcher_Errors(t *testing.T) {
	t.Run("source failure", func(t *testing.T) {
		fetcher := NewHTTPFetcher(&stubSource{err: errors.New("connection refused")})

		meals, err := fetcher.Fetch(context.Background(), "South")

		assert.Nil(t, meals)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "South", fetchErr.Area)
	})

	t.Run("unknown area never reaches the source", func(t *testing.T) {
		source := &stubSource{}
		fetcher := NewHTTPFetcher(source)

		_, err := fetcher.Fetch(context.Background(), "Atlantis")

		assert.ErrorIs(t, err, ErrUnknownArea)
		assert.Zero(t, source.calls)
	})
}

func TestStaticFetcher_Fetch(t *testing.T) {
	fetcher := NewStaticFetcher()

	first, err := fetcher.Fetch(context.Background(), "North")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := fetcher.Fetch(context.Background(), "North")
	require.NoError(t, err)

	for i, m := range first {
		assert.Equal(t, "North", m.Area)
		assert.NotEmpty(t, m.ImageURL)
		assert.Equal(t, second[i].ID, m.ID, "ids are deterministic")
	}
}

func TestStaticFetcher_Errors(t *testing.T) {
	fetcher := NewStaticFetcher()

	_, err := fetcher.Fetch(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnknownArea)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fetcher.Fetch(ctx, "Central")
	assert.ErrorIs(t, err, context.Canceled)
}
