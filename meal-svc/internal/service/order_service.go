package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bytebite/catalog"
	"bytebite/meal-svc/internal/domain"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
	now       func() time.Time
}

// NewOrderService wires the order workflow. publisher and qr may be nil.
func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr, now: time.Now}
}

func validateOrder(order *domain.Order) error {
	order.CustomerName = strings.TrimSpace(order.CustomerName)
	order.CustomerAddress = strings.TrimSpace(order.CustomerAddress)
	order.CustomerPhone = strings.TrimSpace(order.CustomerPhone)
	order.DeliveryArea = strings.TrimSpace(order.DeliveryArea)

	if order.CustomerName == "" || order.CustomerAddress == "" || order.CustomerPhone == "" || order.DeliveryArea == "" {
		return ErrMissingFields
	}
	if !catalog.IsArea(order.DeliveryArea) {
		return ErrUnknownArea
	}
	if len(order.Lines) == 0 {
		return ErrEmptyOrder
	}
	for _, l := range order.Lines {
		if strings.TrimSpace(l.DishName) == "" || l.Quantity <= 0 || l.Price <= 0 || l.PrepTime < 0 {
			return ErrInvalidMeal
		}
	}
	return nil
}

// Place prices, estimates and stores the order, then attaches a QR code and
// announces it. QR and publish failures are logged, not returned.
func (s *OrderService) Place(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	total := decimal.Zero
	prepTimes := make([]int, 0, len(order.Lines))
	for _, l := range order.Lines {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
		prepTimes = append(prepTimes, l.PrepTime)
	}
	order.TotalPrice = total.Round(2).InexactFloat64()
	order.EstimatedDeliveryTime = catalog.EstimateDeliveryMinutes(order.DeliveryArea, prepTimes, order.TotalItems())

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err != nil {
			log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to generate QR code")
		} else if err := s.repo.SaveQRCode(ctx, order.ID, qr); err != nil {
			log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to save QR code")
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(ctx, orderEvent(order, s.now())); err != nil {
			log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to publish order event")
		}
	}

	log.Info().
		Int64("order_id", order.ID).
		Str("area", order.DeliveryArea).
		Float64("total", order.TotalPrice).
		Int("estimate_min", order.EstimatedDeliveryTime).
		Msg("order placed")
	return nil
}

func orderEvent(order *domain.Order, at time.Time) domain.OrderEvent {
	lines := make([]domain.EventLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, domain.EventLine{DishName: l.DishName, Quantity: l.Quantity})
	}
	return domain.OrderEvent{
		Type:       domain.OrderPlacedEvent,
		OrderID:    order.ID,
		Area:       order.DeliveryArea,
		Lines:      lines,
		TotalPrice: order.TotalPrice,
		Timestamp:  at,
	}
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetQRCode returns the stored QR code, regenerating it when none was saved.
func (s *OrderService) GetQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	qr, err := s.repo.GetQRCode(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			log.Warn().Err(err).Int64("order_id", orderID).Msg("failed to regenerate QR code")
			return qr, nil
		}
		if err := s.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
			log.Warn().Err(err).Int64("order_id", orderID).Msg("failed to save QR code")
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int64) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
