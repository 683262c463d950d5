// Package menu fetches the meals available in a delivery area, either from the
// meal service or from the built-in catalog.
package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	placeholderImageBase = "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&sig="

	// FallbackImageURL replaces a meal image that fails to load in the browser.
	FallbackImageURL = "https://via.placeholder.com/400x200?text=No+Image"
)

var ErrUnknownArea = errors.New("unknown delivery area")

type Meal struct {
	ID             string
	RestaurantName string
	DishName       string
	Description    string
	Price          decimal.Decimal
	PrepTime       int
	Area           string
	ImageURL       string
}

type Fetcher interface {
	Fetch(ctx context.Context, area string) ([]Meal, error)
}

// FetchError reports that the meals for Area could not be retrieved.
type FetchError struct {
	Area string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch meals for %q: %v", e.Area, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PlaceholderImage derives a stable image URL from a meal identifier.
func PlaceholderImage(mealID string) string {
	return placeholderImageBase + mealID
}
