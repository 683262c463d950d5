package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bytebite/catalog"
	"bytebite/meal-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type MealService struct {
	repo  MealRepository
	cache MealCache
}

// NewMealService builds the meal service. cache may be nil.
func NewMealService(repo MealRepository, cache MealCache) *MealService {
	return &MealService{repo: repo, cache: cache}
}

func (s *MealService) Register(ctx context.Context, reg domain.MealRegistration) (*domain.Meal, error) {
	meal, err := parseRegistration(reg)
	if err != nil {
		return nil, err
	}

	meal.ID = uuid.NewString()
	if err := s.repo.CreateMeal(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, meal.Area); err != nil {
			log.Warn().Err(err).Str("area", meal.Area).Msg("failed to invalidate meal cache")
		}
	}

	log.Info().Str("meal_id", meal.ID).Str("area", meal.Area).Str("dish", meal.DishName).Msg("meal registered")
	return meal, nil
}

func parseRegistration(reg domain.MealRegistration) (*domain.Meal, error) {
	meal := &domain.Meal{
		RestaurantName: strings.TrimSpace(reg.RestaurantName),
		DishName:       strings.TrimSpace(reg.DishName),
		Description:    strings.TrimSpace(reg.Description),
		Area:           strings.TrimSpace(reg.Area),
	}
	if meal.RestaurantName == "" || meal.DishName == "" || meal.Description == "" ||
		meal.Area == "" || reg.Price == "" || reg.PrepTime == "" {
		return nil, ErrMissingFields
	}

	price, err := decimal.NewFromString(reg.Price.String())
	if err != nil {
		return nil, ErrInvalidMeal
	}
	// Prices are stored with two decimals.
	price = price.Round(2)
	if price.IsZero() {
		return nil, ErrMissingFields
	}
	prepTime, err := strconv.Atoi(reg.PrepTime.String())
	if err != nil {
		return nil, ErrInvalidMeal
	}
	if prepTime == 0 {
		return nil, ErrMissingFields
	}
	if price.IsNegative() || prepTime < 0 {
		return nil, ErrInvalidMeal
	}
	if !catalog.IsArea(meal.Area) {
		return nil, ErrUnknownArea
	}

	meal.Price = price.InexactFloat64()
	meal.PrepTime = prepTime
	return meal, nil
}

// ListByArea serves meals from the cache when possible and refills it on a miss.
func (s *MealService) ListByArea(ctx context.Context, area string) ([]domain.Meal, error) {
	if !catalog.IsArea(area) {
		return nil, ErrUnknownArea
	}

	if s.cache != nil {
		meals, ok, err := s.cache.GetMeals(ctx, area)
		if err != nil {
			log.Warn().Err(err).Str("area", area).Msg("meal cache read failed")
		} else if ok {
			log.Debug().Str("area", area).Int("meals", len(meals)).Msg("meal cache hit")
			return meals, nil
		}
	}

	meals, err := s.repo.ListMealsByArea(ctx, area)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	if meals == nil {
		meals = []domain.Meal{}
	}

	if s.cache != nil {
		if err := s.cache.SetMeals(ctx, area, meals); err != nil {
			log.Warn().Err(err).Str("area", area).Msg("failed to cache meals")
		}
	}
	return meals, nil
}
