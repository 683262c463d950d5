package service

import (
	"context"
	"encoding/json"
	"errors"

	"bytebite/catalog"
	"bytebite/meal-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

const defaultPopularLimit = 5

// Consumer folds order events into per-area dish popularity.
type Consumer struct {
	Reader MessageReader
	Store  PopularityStore
}

func NewConsumer(reader MessageReader, store PopularityStore) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Info().Msg("starting popularity consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info().Msg("popularity consumer stopped")
				return
			}
			log.Error().Err(err).Msg("error reading message")
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Error().Err(err).Msg("error unmarshaling message")
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.OrderPlacedEvent {
		return
	}
	for _, l := range event.Lines {
		if err := c.Store.IncrementDish(ctx, event.Area, l.DishName, l.Quantity); err != nil {
			log.Error().Err(err).Int64("order_id", event.OrderID).Str("dish", l.DishName).Msg("error updating popularity")
			return
		}
	}
	log.Debug().Int64("order_id", event.OrderID).Str("area", event.Area).Msg("processed order event")
}

// LocalPublisher hands events straight to a consumer when no broker is configured.
type LocalPublisher struct {
	Consumer *Consumer
}

func (p LocalPublisher) PublishOrder(ctx context.Context, event domain.OrderEvent) error {
	p.Consumer.ProcessOrder(ctx, event)
	return nil
}

type PopularityService struct {
	store PopularityStore
}

func NewPopularityService(store PopularityStore) *PopularityService {
	return &PopularityService{store: store}
}

func (s *PopularityService) Top(ctx context.Context, area string, limit int) ([]domain.PopularMeal, error) {
	if !catalog.IsArea(area) {
		return nil, ErrUnknownArea
	}
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	meals, err := s.store.TopDishes(ctx, area, limit)
	if err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []domain.PopularMeal{}
	}
	return meals, nil
}
