// Package seed loads the demo catalog, optionally padded with generated
// meals, into a running meal service.
package seed

import (
	"context"
	"fmt"
	"io"

	"bytebite/catalog"
	"bytebite/mealapi"

	"github.com/jaswdr/faker"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

type Registrar interface {
	RegisterRestaurant(ctx context.Context, rest mealapi.RestaurantRegistration) (*mealapi.RestaurantResult, error)
	RegisterMeal(ctx context.Context, meal mealapi.MealRegistration) (*mealapi.RegistrationResult, error)
}

var _ Registrar = (*mealapi.Client)(nil)

var generatedDishes = []string{
	"Chicken Curry", "Veggie Burger", "Pepperoni Pizza", "Pad Thai", "Beef Burrito",
	"Falafel Wrap", "Mushroom Risotto", "Fish and Chips", "Pho Bo", "Greek Salad",
}

// Plan is the ordered list of registrations a run performs.
type Plan struct {
	Restaurants []mealapi.RestaurantRegistration
	Meals       []mealapi.MealRegistration
}

func (p Plan) Steps() int {
	return len(p.Restaurants) + len(p.Meals)
}

// BuildPlan lists every catalog restaurant and meal for areas, then adds
// generated meals per area when generated > 0.
func BuildPlan(areas []string, generated int, fake faker.Faker) Plan {
	var plan Plan
	for _, area := range areas {
		for _, name := range catalog.Restaurants(area) {
			plan.Restaurants = append(plan.Restaurants, mealapi.RestaurantRegistration{RestaurantName: name, DeliveryArea: area})
		}
		for _, dish := range catalog.Meals(area) {
			plan.Meals = append(plan.Meals, mealapi.MealRegistration{
				RestaurantName: dish.RestaurantName,
				DishName:       dish.DishName,
				Description:    dish.Description,
				Price:          dish.Price.InexactFloat64(),
				PrepTime:       dish.PrepTime,
				Area:           area,
			})
		}

		if generated <= 0 {
			continue
		}
		restaurant := fake.Company().Name()
		plan.Restaurants = append(plan.Restaurants, mealapi.RestaurantRegistration{RestaurantName: restaurant, DeliveryArea: area})
		for i := 0; i < generated; i++ {
			plan.Meals = append(plan.Meals, mealapi.MealRegistration{
				RestaurantName: restaurant,
				DishName:       fmt.Sprintf("%s #%d", fake.RandomStringElement(generatedDishes), i+1),
				Description:    fake.Lorem().Sentence(8),
				Price:          fake.Float64(2, 4, 30),
				PrepTime:       fake.IntBetween(5, 40),
				Area:           area,
			})
		}
	}
	return plan
}

type Report struct {
	Restaurants int
	Meals       int
	Failed      int
}

// NewProgressBar renders to w; a nil writer disables output.
func NewProgressBar(steps int, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("seeding"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// Run registers the plan in order. Individual failures are counted and
// logged; only cancellation stops the run early.
func Run(ctx context.Context, reg Registrar, plan Plan, bar *progressbar.ProgressBar) (Report, error) {
	var report Report
	defer func() { _ = bar.Finish() }()

	for _, rest := range plan.Restaurants {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if _, err := reg.RegisterRestaurant(ctx, rest); err != nil {
			report.Failed++
			log.Warn().Err(err).Str("restaurant", rest.RestaurantName).Str("area", rest.DeliveryArea).Msg("restaurant not registered")
		} else {
			report.Restaurants++
		}
		_ = bar.Add(1)
	}

	for _, meal := range plan.Meals {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		result, err := reg.RegisterMeal(ctx, meal)
		if err != nil {
			report.Failed++
			log.Warn().Err(err).Str("dish", meal.DishName).Str("area", meal.Area).Msg("meal not registered")
		} else {
			report.Meals++
			log.Debug().Str("meal_id", result.MealID).Str("dish", meal.DishName).Msg("meal registered")
		}
		_ = bar.Add(1)
	}
	return report, nil
}
