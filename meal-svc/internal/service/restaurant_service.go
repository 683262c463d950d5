package service

import (
	"context"
	"strings"

	"bytebite/catalog"
	"bytebite/meal-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type RestaurantService struct {
	repo RestaurantRepository
}

func NewRestaurantService(repo RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) Register(ctx context.Context, rest *domain.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	rest.DeliveryArea = strings.TrimSpace(rest.DeliveryArea)
	if rest.Name == "" || rest.DeliveryArea == "" {
		return ErrMissingFields
	}
	if !catalog.IsArea(rest.DeliveryArea) {
		return ErrUnknownArea
	}

	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return err
	}
	log.Info().Int64("restaurant_id", rest.ID).Str("area", rest.DeliveryArea).Msg("restaurant registered")
	return nil
}
