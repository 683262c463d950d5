package menu

import (
	"context"

	"bytebite/catalog"

	"github.com/google/uuid"
)

// StaticFetcher serves the built-in catalog, for running without a meal service.
type StaticFetcher struct{}

func NewStaticFetcher() *StaticFetcher {
	return &StaticFetcher{}
}

func (f *StaticFetcher) Fetch(ctx context.Context, area string) ([]Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Area: area, Err: err}
	}
	if !catalog.IsArea(area) {
		return nil, &FetchError{Area: area, Err: ErrUnknownArea}
	}

	dishes := catalog.Meals(area)
	meals := make([]Meal, 0, len(dishes))
	for _, d := range dishes {
		id := staticMealID(d)
		image := d.ImageURL
		if image == "" {
			image = PlaceholderImage(id)
		}
		meals = append(meals, Meal{
			ID:             id,
			RestaurantName: d.RestaurantName,
			DishName:       d.DishName,
			Description:    d.Description,
			Price:          d.Price,
			PrepTime:       d.PrepTime,
			Area:           d.Area,
			ImageURL:       image,
		})
	}
	return meals, nil
}

func staticMealID(d catalog.Dish) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(d.Area+"/"+d.RestaurantName+"/"+d.DishName)).String()
}
