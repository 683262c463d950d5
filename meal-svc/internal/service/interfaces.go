package service

import (
	"context"

	"bytebite/meal-svc/internal/domain"
	"bytebite/meal-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MealRepository interface {
	CreateMeal(ctx context.Context, meal *domain.Meal) error
	ListMealsByArea(ctx context.Context, area string) ([]domain.Meal, error)
}

type MealCache interface {
	GetMeals(ctx context.Context, area string) ([]domain.Meal, bool, error)
	SetMeals(ctx context.Context, area string, meals []domain.Meal) error
	Invalidate(ctx context.Context, area string) error
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	SaveQRCode(ctx context.Context, orderID int64, qr []byte) error
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID int64) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type PopularityStore interface {
	IncrementDish(ctx context.Context, area, dishName string, quantity int) error
	TopDishes(ctx context.Context, area string, limit int) ([]domain.PopularMeal, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type MealServiceInterface interface {
	Register(ctx context.Context, reg domain.MealRegistration) (*domain.Meal, error)
	ListByArea(ctx context.Context, area string) ([]domain.Meal, error)
}

type RestaurantServiceInterface interface {
	Register(ctx context.Context, rest *domain.Restaurant) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, orderID int64) (*domain.Order, error)
	GetQRCode(ctx context.Context, orderID int64) ([]byte, error)
	QRLink(orderID int64) string
}

type PopularityServiceInterface interface {
	Top(ctx context.Context, area string, limit int) ([]domain.PopularMeal, error)
}

var (
	_ MealServiceInterface       = (*MealService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
	_ PopularityServiceInterface = (*PopularityService)(nil)
)

var (
	_ MealRepository       = (*storage.PostgresRepository)(nil)
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ MealCache            = (*storage.RedisCache)(nil)
	_ PopularityStore      = (*storage.RedisPopularity)(nil)
	_ OrderPublisher       = (*storage.KafkaPublisher)(nil)
	_ OrderPublisher       = LocalPublisher{}
)
