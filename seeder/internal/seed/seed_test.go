package seed

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"bytebite/catalog"
	"bytebite/mealapi"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistrar struct {
	restaurants []mealapi.RestaurantRegistration
	meals       []mealapi.MealRegistration
	failDish    string
	onMeal      func()
}

func (f *fakeRegistrar) RegisterRestaurant(ctx context.Context, rest mealapi.RestaurantRegistration) (*mealapi.RestaurantResult, error) {
	f.restaurants = append(f.restaurants, rest)
	return &mealapi.RestaurantResult{OK: true, RestaurantID: int64(len(f.restaurants))}, nil
}

func (f *fakeRegistrar) RegisterMeal(ctx context.Context, meal mealapi.MealRegistration) (*mealapi.RegistrationResult, error) {
	if f.onMeal != nil {
		f.onMeal()
	}
	if meal.DishName == f.failDish {
		return nil, &mealapi.APIError{StatusCode: 400, Message: "Invalid data format"}
	}
	f.meals = append(f.meals, meal)
	return &mealapi.RegistrationResult{Success: true, MealID: "id"}, nil
}

func TestBuildPlan_CatalogOnly(t *testing.T) {
	plan := BuildPlan([]string{catalog.North}, 0, faker.New())

	assert.Len(t, plan.Restaurants, len(catalog.Restaurants(catalog.North)))
	assert.Len(t, plan.Meals, len(catalog.Meals(catalog.North)))
	for _, m := range plan.Meals {
		assert.Equal(t, catalog.North, m.Area)
		assert.Greater(t, m.Price, 0.0)
		assert.Greater(t, m.PrepTime, 0)
	}
	assert.Equal(t, len(plan.Restaurants)+len(plan.Meals), plan.Steps())
}

func TestBuildPlan_GeneratedMeals(t *testing.T) {
	areas := []string{catalog.Central, catalog.South}
	plan := BuildPlan(areas, 3, faker.NewWithSeed(rand.NewSource(7)))

	catalogMeals := len(catalog.Meals(catalog.Central)) + len(catalog.Meals(catalog.South))
	assert.Len(t, plan.Meals, catalogMeals+6)

	generated := 0
	for _, m := range plan.Meals {
		if !strings.Contains(m.DishName, "#") {
			continue
		}
		generated++
		assert.NotEmpty(t, m.RestaurantName)
		assert.NotEmpty(t, m.Description)
		assert.GreaterOrEqual(t, m.Price, 4.0)
		assert.LessOrEqual(t, m.Price, 30.0)
		assert.GreaterOrEqual(t, m.PrepTime, 5)
		assert.LessOrEqual(t, m.PrepTime, 40)
	}
	assert.Equal(t, 6, generated)
}

func TestRun(t *testing.T) {
	plan := BuildPlan([]string{catalog.Central}, 0, faker.New())
	reg := &fakeRegistrar{failDish: plan.Meals[0].DishName}

	report, err := Run(context.Background(), reg, plan, NewProgressBar(plan.Steps(), nil))

	require.NoError(t, err)
	assert.Equal(t, len(plan.Restaurants), report.Restaurants)
	assert.Equal(t, len(plan.Meals)-1, report.Meals)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, plan.Restaurants, reg.restaurants)
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	plan := BuildPlan([]string{catalog.Central}, 0, faker.New())
	reg := &fakeRegistrar{onMeal: cancel}

	report, err := Run(ctx, reg, plan, NewProgressBar(plan.Steps(), nil))

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, report.Meals)
}
