// Package registration validates restaurant and meal registrations before
// handing them to the meal service.
package registration

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"bytebite/catalog"
	"bytebite/mealapi"
	"bytebite/storefront/internal/checkout"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const InvalidFormMessage = "Please fill in all required fields correctly."

var ErrOffline = errors.New("registration requires the meal service")

type Registrar interface {
	RegisterMeal(ctx context.Context, meal mealapi.MealRegistration) (*mealapi.RegistrationResult, error)
	RegisterRestaurant(ctx context.Context, rest mealapi.RestaurantRegistration) (*mealapi.RestaurantResult, error)
}

// Form is the raw registration input as typed by the restaurant.
type Form struct {
	RestaurantName string
	DishName       string
	Description    string
	Price          string
	PrepTime       string
	Area           string
}

// Parse checks every field and converts the form into a registration request.
func (f Form) Parse() (mealapi.MealRegistration, error) {
	invalid := &checkout.ValidationError{Reason: InvalidFormMessage}

	reg := mealapi.MealRegistration{
		RestaurantName: strings.TrimSpace(f.RestaurantName),
		DishName:       strings.TrimSpace(f.DishName),
		Description:    strings.TrimSpace(f.Description),
		Area:           strings.TrimSpace(f.Area),
	}
	if reg.RestaurantName == "" || reg.DishName == "" || reg.Description == "" {
		return mealapi.MealRegistration{}, invalid
	}
	if !catalog.IsArea(reg.Area) {
		return mealapi.MealRegistration{}, invalid
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || !price.IsPositive() {
		return mealapi.MealRegistration{}, invalid
	}
	prepTime, err := strconv.Atoi(strings.TrimSpace(f.PrepTime))
	if err != nil || prepTime <= 0 {
		return mealapi.MealRegistration{}, invalid
	}

	reg.Price = price.InexactFloat64()
	reg.PrepTime = prepTime
	return reg, nil
}

type Service struct {
	registrar Registrar
}

func NewService(registrar Registrar) *Service {
	return &Service{registrar: registrar}
}

func (s *Service) RegisterMeal(ctx context.Context, form Form) (*mealapi.RegistrationResult, error) {
	reg, err := form.Parse()
	if err != nil {
		return nil, err
	}

	result, err := s.registrar.RegisterMeal(ctx, reg)
	if err != nil {
		log.Warn().Err(err).Str("dish", reg.DishName).Msg("meal registration failed")
		return nil, submissionError(err, "Failed to register meal. Please try again.")
	}

	log.Info().Str("meal_id", result.MealID).Str("area", reg.Area).Msg("meal registered")
	return result, nil
}

func (s *Service) RegisterRestaurant(ctx context.Context, name, area string) (*mealapi.RestaurantResult, error) {
	reg := mealapi.RestaurantRegistration{
		RestaurantName: strings.TrimSpace(name),
		DeliveryArea:   strings.TrimSpace(area),
	}
	if reg.RestaurantName == "" || !catalog.IsArea(reg.DeliveryArea) {
		return nil, &checkout.ValidationError{Reason: InvalidFormMessage}
	}

	result, err := s.registrar.RegisterRestaurant(ctx, reg)
	if err != nil {
		log.Warn().Err(err).Str("restaurant", reg.RestaurantName).Msg("restaurant registration failed")
		return nil, submissionError(err, "Failed to register restaurant. Please try again.")
	}
	return result, nil
}

func submissionError(err error, fallback string) error {
	var apiErr *mealapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &checkout.SubmissionError{Message: apiErr.Message, Err: err}
	}
	return &checkout.SubmissionError{Message: fallback, Err: err}
}

// OfflineRegistrar refuses every registration; the built-in catalog is read-only.
type OfflineRegistrar struct{}

func (OfflineRegistrar) RegisterMeal(ctx context.Context, meal mealapi.MealRegistration) (*mealapi.RegistrationResult, error) {
	return nil, ErrOffline
}

func (OfflineRegistrar) RegisterRestaurant(ctx context.Context, rest mealapi.RestaurantRegistration) (*mealapi.RestaurantResult, error) {
	return nil, ErrOffline
}
