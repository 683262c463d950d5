package menu

import (
	"context"

	"bytebite/catalog"
	"bytebite/mealapi"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type MealSource interface {
	MealsByArea(ctx context.Context, area string) ([]mealapi.Meal, error)
}

// HTTPFetcher loads meals from the meal service on every call.
type HTTPFetcher struct {
	source MealSource
}

func NewHTTPFetcher(source MealSource) *HTTPFetcher {
	return &HTTPFetcher{source: source}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, area string) ([]Meal, error) {
	if !catalog.IsArea(area) {
		return nil, &FetchError{Area: area, Err: ErrUnknownArea}
	}

	remote, err := f.source.MealsByArea(ctx, area)
	if err != nil {
		log.Warn().Err(err).Str("area", area).Msg("meal fetch failed")
		return nil, &FetchError{Area: area, Err: err}
	}

	meals := make([]Meal, 0, len(remote))
	for _, m := range remote {
		if m.Area != area {
			continue
		}
		meals = append(meals, Meal{
			ID:             m.MealID,
			RestaurantName: m.RestaurantName,
			DishName:       m.DishName,
			Description:    m.Description,
			Price:          decimal.NewFromFloat(m.Price),
			PrepTime:       m.PrepTime,
			Area:           m.Area,
			ImageURL:       PlaceholderImage(m.MealID),
		})
	}

	log.Debug().Str("area", area).Int("meals", len(meals)).Msg("fetched meals")
	return meals, nil
}
