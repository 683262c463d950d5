package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"bytebite/meal-svc/internal/domain"
	"bytebite/meal-svc/internal/mocks"
	"bytebite/meal-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRegistration() domain.MealRegistration {
	return domain.MealRegistration{
		RestaurantName: "Bella Italia",
		DishName:       "Lasagna",
		Description:    "Layers of pasta",
		Price:          json.Number("13.50"),
		PrepTime:       json.Number("20"),
		Area:           "Central",
	}
}

func TestMealService_Register(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*domain.MealRegistration)
		setupMock func(*mocks.MealRepository, *mocks.MealCache)
		wantErr   error
	}{
		{
			name:   "valid meal",
			modify: func(*domain.MealRegistration) {},
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				repo.On("CreateMeal", mock.Anything, mock.MatchedBy(func(m *domain.Meal) bool {
					return m.ID != "" && m.Price == 13.5 && m.PrepTime == 20 && m.Area == "Central"
				})).Return(nil).Once()
				cache.On("Invalidate", mock.Anything, "Central").Return(nil).Once()
			},
		},
		{
			name:   "cache invalidation failure is not fatal",
			modify: func(*domain.MealRegistration) {},
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				repo.On("CreateMeal", mock.Anything, mock.AnythingOfType("*domain.Meal")).Return(nil).Once()
				cache.On("Invalidate", mock.Anything, "Central").Return(errors.New("redis down")).Once()
			},
		},
		{
			name:      "missing dish name",
			modify:    func(r *domain.MealRegistration) { r.DishName = "  " },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrMissingFields,
		},
		{
			name:      "zero price counts as missing",
			modify:    func(r *domain.MealRegistration) { r.Price = "0" },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrMissingFields,
		},
		{
			name:      "price rounding to zero counts as missing",
			modify:    func(r *domain.MealRegistration) { r.Price = "0.004" },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrMissingFields,
		},
		{
			name:   "price rounded to cents",
			modify: func(r *domain.MealRegistration) { r.Price = "0.005" },
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				repo.On("CreateMeal", mock.Anything, mock.MatchedBy(func(m *domain.Meal) bool {
					return m.Price == 0.01
				})).Return(nil).Once()
				cache.On("Invalidate", mock.Anything, "Central").Return(nil).Once()
			},
		},
		{
			name:      "negative prep time",
			modify:    func(r *domain.MealRegistration) { r.PrepTime = "-5" },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrInvalidMeal,
		},
		{
			name:      "non numeric price",
			modify:    func(r *domain.MealRegistration) { r.Price = "cheap" },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrInvalidMeal,
		},
		{
			name:      "fractional prep time",
			modify:    func(r *domain.MealRegistration) { r.PrepTime = "12.5" },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrInvalidMeal,
		},
		{
			name:      "unknown area",
			modify:    func(r *domain.MealRegistration) { r.Area = "Harbour" },
			setupMock: func(*mocks.MealRepository, *mocks.MealCache) {},
			wantErr:   service.ErrUnknownArea,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMealRepository(t)
			cache := mocks.NewMealCache(t)
			testCase.setupMock(repo, cache)
			svc := service.NewMealService(repo, cache)

			reg := validRegistration()
			testCase.modify(&reg)
			meal, err := svc.Register(context.Background(), reg)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Nil(t, meal)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, meal.ID)
		})
	}
}

func TestMealService_RegisterRepositoryError(t *testing.T) {
	repo := mocks.NewMealRepository(t)
	repo.On("CreateMeal", mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
	svc := service.NewMealService(repo, nil)

	_, err := svc.Register(context.Background(), validRegistration())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidMeal)
}

func TestMealService_ListByArea(t *testing.T) {
	cached := []domain.Meal{{ID: "c", DishName: "Cached", Area: "North"}}
	stored := []domain.Meal{{ID: "s", DishName: "Stored", Area: "North"}}

	tests := []struct {
		name      string
		setupMock func(*mocks.MealRepository, *mocks.MealCache)
		want      []domain.Meal
	}{
		{
			name: "cache hit skips repository",
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				cache.On("GetMeals", mock.Anything, "North").Return(cached, true, nil).Once()
			},
			want: cached,
		},
		{
			name: "cache miss fills cache",
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				cache.On("GetMeals", mock.Anything, "North").Return(nil, false, nil).Once()
				repo.On("ListMealsByArea", mock.Anything, "North").Return(stored, nil).Once()
				cache.On("SetMeals", mock.Anything, "North", stored).Return(nil).Once()
			},
			want: stored,
		},
		{
			name: "cache error falls back to repository",
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				cache.On("GetMeals", mock.Anything, "North").Return(nil, false, errors.New("timeout")).Once()
				repo.On("ListMealsByArea", mock.Anything, "North").Return(stored, nil).Once()
				cache.On("SetMeals", mock.Anything, "North", stored).Return(errors.New("timeout")).Once()
			},
			want: stored,
		},
		{
			name: "empty area yields empty slice",
			setupMock: func(repo *mocks.MealRepository, cache *mocks.MealCache) {
				cache.On("GetMeals", mock.Anything, "North").Return(nil, false, nil).Once()
				repo.On("ListMealsByArea", mock.Anything, "North").Return(nil, nil).Once()
				cache.On("SetMeals", mock.Anything, "North", []domain.Meal{}).Return(nil).Once()
			},
			want: []domain.Meal{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMealRepository(t)
			cache := mocks.NewMealCache(t)
			testCase.setupMock(repo, cache)
			svc := service.NewMealService(repo, cache)

			meals, err := svc.ListByArea(context.Background(), "North")

			require.NoError(t, err)
			assert.Equal(t, testCase.want, meals)
		})
	}
}

func TestMealService_ListByAreaUnknownArea(t *testing.T) {
	svc := service.NewMealService(mocks.NewMealRepository(t), nil)

	_, err := svc.ListByArea(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, service.ErrUnknownArea)
}

func TestRestaurantService_Register(t *testing.T) {
	tests := []struct {
		name    string
		rest    domain.Restaurant
		repoErr error
		callDB  bool
		wantErr error
	}{
		{name: "valid", rest: domain.Restaurant{Name: " Sushi Zen ", DeliveryArea: "South"}, callDB: true},
		{name: "missing name", rest: domain.Restaurant{DeliveryArea: "South"}, wantErr: service.ErrMissingFields},
		{name: "unknown area", rest: domain.Restaurant{Name: "Sushi Zen", DeliveryArea: "East"}, wantErr: service.ErrUnknownArea},
		{name: "database error", rest: domain.Restaurant{Name: "Sushi Zen", DeliveryArea: "South"}, callDB: true, repoErr: errors.New("db error")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			if testCase.callDB {
				repo.On("CreateRestaurant", mock.Anything, mock.MatchedBy(func(r *domain.Restaurant) bool {
					return r.Name == "Sushi Zen"
				})).Return(testCase.repoErr).Once()
			}
			svc := service.NewRestaurantService(repo)

			rest := testCase.rest
			err := svc.Register(context.Background(), &rest)

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.repoErr != nil:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		CustomerName:    "Ann",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "555-0100",
		DeliveryArea:    "Central",
		Lines: []domain.OrderLine{
			{DishName: "Margherita", RestaurantName: "Bella Italia", Price: 12.99, PrepTime: 10, Quantity: 2},
			{DishName: "Carbonara", RestaurantName: "Bella Italia", Price: 14.99, PrepTime: 15, Quantity: 1},
		},
	}
}

func TestOrderService_Place(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	qr := mocks.NewQRGenerator(t)

	repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 7 }).
		Return(nil).Once()
	qr.On("Generate", int64(7)).Return([]byte("png"), nil).Once()
	repo.On("SaveQRCode", mock.Anything, int64(7), []byte("png")).Return(nil).Once()
	publisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == domain.OrderPlacedEvent && e.OrderID == 7 && e.Area == "Central" &&
			len(e.Lines) == 2 && e.Lines[0] == domain.EventLine{DishName: "Margherita", Quantity: 2}
	})).Return(nil).Once()

	svc := service.NewOrderService(repo, publisher, qr)
	order := sampleOrder()

	require.NoError(t, svc.Place(context.Background(), order))

	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, 40.97, order.TotalPrice)
	assert.Equal(t, 30, order.EstimatedDeliveryTime)
	assert.Equal(t, "/api/orders/7/qrcode", svc.QRLink(order.ID))
}

func TestOrderService_PlaceSideEffectFailures(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	qr := mocks.NewQRGenerator(t)

	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
	qr.On("Generate", mock.Anything).Return(nil, errors.New("encode failed")).Once()
	publisher.On("PublishOrder", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	svc := service.NewOrderService(repo, publisher, qr)

	assert.NoError(t, svc.Place(context.Background(), sampleOrder()))
}

func TestOrderService_PlaceValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*domain.Order)
		wantErr error
	}{
		{name: "missing phone", modify: func(o *domain.Order) { o.CustomerPhone = " " }, wantErr: service.ErrMissingFields},
		{name: "unknown area", modify: func(o *domain.Order) { o.DeliveryArea = "East" }, wantErr: service.ErrUnknownArea},
		{name: "no meals", modify: func(o *domain.Order) { o.Lines = nil }, wantErr: service.ErrEmptyOrder},
		{name: "zero quantity", modify: func(o *domain.Order) { o.Lines[0].Quantity = 0 }, wantErr: service.ErrInvalidMeal},
		{name: "free dish", modify: func(o *domain.Order) { o.Lines[1].Price = 0 }, wantErr: service.ErrInvalidMeal},
		{name: "negative prep time", modify: func(o *domain.Order) { o.Lines[0].PrepTime = -1 }, wantErr: service.ErrInvalidMeal},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := service.NewOrderService(mocks.NewOrderRepository(t), nil, nil)
			order := sampleOrder()
			testCase.modify(order)

			assert.ErrorIs(t, svc.Place(context.Background(), order), testCase.wantErr)
		})
	}
}

func TestOrderService_Get(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", mock.Anything, int64(1)).Return(&domain.Order{ID: 1}, nil).Once()
	repo.On("GetOrder", mock.Anything, int64(2)).Return(nil, domain.ErrNotFound).Once()
	svc := service.NewOrderService(repo, nil, nil)

	order, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderService_GetQRCode(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetQRCode", mock.Anything, int64(3)).Return([]byte("stored"), nil).Once()
		svc := service.NewOrderService(repo, nil, mocks.NewQRGenerator(t))

		qr, err := svc.GetQRCode(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, []byte("stored"), qr)
	})

	t.Run("regenerated when empty", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		gen := mocks.NewQRGenerator(t)
		repo.On("GetQRCode", mock.Anything, int64(3)).Return(nil, nil).Once()
		gen.On("Generate", int64(3)).Return([]byte("fresh"), nil).Once()
		repo.On("SaveQRCode", mock.Anything, int64(3), []byte("fresh")).Return(nil).Once()
		svc := service.NewOrderService(repo, nil, gen)

		qr, err := svc.GetQRCode(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})

	t.Run("regenerated even when saving fails", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		gen := mocks.NewQRGenerator(t)
		repo.On("GetQRCode", mock.Anything, int64(3)).Return(nil, nil).Once()
		gen.On("Generate", int64(3)).Return([]byte("fresh"), nil).Once()
		repo.On("SaveQRCode", mock.Anything, int64(3), []byte("fresh")).Return(errors.New("connection refused")).Once()
		svc := service.NewOrderService(repo, nil, gen)

		qr, err := svc.GetQRCode(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, []byte("fresh"), qr)
	})

	t.Run("generator failure returns empty code", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		gen := mocks.NewQRGenerator(t)
		repo.On("GetQRCode", mock.Anything, int64(3)).Return(nil, nil).Once()
		gen.On("Generate", int64(3)).Return(nil, errors.New("payload too large")).Once()
		svc := service.NewOrderService(repo, nil, gen)

		qr, err := svc.GetQRCode(context.Background(), 3)

		require.NoError(t, err)
		assert.Empty(t, qr)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetQRCode", mock.Anything, int64(4)).Return(nil, domain.ErrNotFound).Once()
		svc := service.NewOrderService(repo, nil, nil)

		_, err := svc.GetQRCode(context.Background(), 4)

		assert.ErrorIs(t, err, service.ErrOrderNotFound)
	})
}

func TestDefaultQRGenerator(t *testing.T) {
	png, err := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}.Generate(12)

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestConsumer_ProcessOrder(t *testing.T) {
	store := mocks.NewPopularityStore(t)
	store.On("IncrementDish", mock.Anything, "South", "Tacos", 3).Return(nil).Once()
	store.On("IncrementDish", mock.Anything, "South", "Burrito", 1).Return(nil).Once()
	consumer := service.NewConsumer(nil, store)

	consumer.ProcessOrder(context.Background(), domain.OrderEvent{
		Type:  domain.OrderPlacedEvent,
		Area:  "South",
		Lines: []domain.EventLine{{DishName: "Tacos", Quantity: 3}, {DishName: "Burrito", Quantity: 1}},
	})
	consumer.ProcessOrder(context.Background(), domain.OrderEvent{
		Type:  "order_cancelled",
		Area:  "South",
		Lines: []domain.EventLine{{DishName: "Tacos", Quantity: 3}},
	})
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.OrderEvent{
		Type:  domain.OrderPlacedEvent,
		Area:  "North",
		Lines: []domain.EventLine{{DishName: "Pho", Quantity: 2}},
	})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	store := mocks.NewPopularityStore(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: payload}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()
	store.On("IncrementDish", mock.Anything, "North", "Pho", 2).Return(nil).Once()

	service.NewConsumer(reader, store).Start(ctx)

	assert.Error(t, ctx.Err())
}

func TestLocalPublisher(t *testing.T) {
	store := mocks.NewPopularityStore(t)
	store.On("IncrementDish", mock.Anything, "Central", "Ramen", 1).Return(nil).Once()
	publisher := service.LocalPublisher{Consumer: service.NewConsumer(nil, store)}

	err := publisher.PublishOrder(context.Background(), domain.OrderEvent{
		Type:  domain.OrderPlacedEvent,
		Area:  "Central",
		Lines: []domain.EventLine{{DishName: "Ramen", Quantity: 1}},
	})

	assert.NoError(t, err)
}

func TestPopularityService_Top(t *testing.T) {
	store := mocks.NewPopularityStore(t)
	store.On("TopDishes", mock.Anything, "Central", 5).Return(nil, nil).Once()
	store.On("TopDishes", mock.Anything, "Central", 2).
		Return([]domain.PopularMeal{{DishName: "Ramen", Ordered: 4}}, nil).Once()
	svc := service.NewPopularityService(store)

	top, err := svc.Top(context.Background(), "Central", 0)
	require.NoError(t, err)
	assert.Equal(t, []domain.PopularMeal{}, top)

	top, err = svc.Top(context.Background(), "Central", 2)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	_, err = svc.Top(context.Background(), "Nowhere", 2)
	assert.ErrorIs(t, err, service.ErrUnknownArea)
}
