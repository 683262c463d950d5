package catalog

import "github.com/shopspring/decimal"

// Dish is one seed meal offered by a restaurant in an area.
type Dish struct {
	RestaurantName string
	DishName       string
	Description    string
	Price          decimal.Decimal
	PrepTime       int
	Area           string
	ImageURL       string
}

type seedDish struct {
	name, description, price string
	prepTime                 int
}

type seedRestaurant struct {
	name   string
	dishes []seedDish
}

var seed = map[string][]seedRestaurant{
	Central: {
		{"Pasta Paradise", []seedDish{
			{"Spaghetti Carbonara", "Creamy pasta with bacon and parmesan", "12.50", 15},
			{"Margherita Pizza", "Classic tomato, mozzarella, and basil", "10.00", 20},
			{"Lasagna", "Layered pasta with meat sauce and cheese", "14.00", 25},
			{"Caesar Salad", "Fresh romaine with caesar dressing", "8.50", 10},
		}},
		{"Burger House", []seedDish{
			{"Classic Cheeseburger", "Beef patty with cheese, lettuce, tomato", "9.50", 12},
			{"BBQ Bacon Burger", "Burger with bacon and BBQ sauce", "11.00", 15},
			{"Chicken Burger", "Grilled chicken breast with mayo", "10.00", 12},
			{"Sweet Potato Fries", "Crispy sweet potato fries", "5.00", 8},
		}},
		{"Sushi Express", []seedDish{
			{"Salmon Sashimi", "Fresh salmon slices", "15.00", 8},
			{"California Roll", "Crab, avocado, cucumber", "8.50", 10},
			{"Dragon Roll", "Eel and cucumber with avocado", "13.00", 12},
			{"Miso Soup", "Traditional Japanese soup", "4.00", 5},
		}},
		{"Curry Corner", []seedDish{
			{"Chicken Tikka Masala", "Creamy tomato curry with chicken", "13.50", 20},
			{"Vegetable Biryani", "Spiced rice with mixed vegetables", "11.00", 25},
			{"Butter Naan", "Buttery Indian flatbread", "3.50", 5},
			{"Samosas (2pc)", "Fried pastries with spiced potatoes", "5.00", 8},
		}},
		{"Ramen House", []seedDish{
			{"Tonkotsu Ramen", "Pork bone broth with chashu", "14.00", 15},
			{"Miso Ramen", "Miso-based broth with vegetables", "12.50", 12},
			{"Gyoza (6pc)", "Pan-fried pork dumplings", "7.00", 10},
		}},
	},
	North: {
		{"Northern Pizzeria", []seedDish{
			{"Meat Lovers Pizza", "Pepperoni, sausage, ham, bacon", "13.00", 20},
			{"Margherita Pizza", "Tomato, mozzarella, basil", "10.00", 18},
			{"Four Cheese Pizza", "Mozzarella, cheddar, gorgonzola, parmesan", "12.00", 18},
		}},
		{"BBQ Smokehouse", []seedDish{
			{"Pulled Pork Sandwich", "Slow-cooked pork with BBQ sauce", "11.50", 15},
			{"BBQ Ribs", "Full rack of ribs", "18.00", 30},
			{"Brisket Plate", "Smoked brisket with sides", "16.00", 25},
		}},
		{"Seafood Shack", []seedDish{
			{"Fish & Chips", "Beer-battered fish with fries", "13.50", 15},
			{"Grilled Salmon", "Atlantic salmon with vegetables", "16.00", 18},
			{"Shrimp Scampi", "Garlic butter shrimp with pasta", "15.00", 12},
		}},
		{"Thai Garden", []seedDish{
			{"Pad Thai", "Stir-fried noodles with shrimp", "13.00", 15},
			{"Green Curry", "Coconut curry with chicken", "12.50", 18},
			{"Spring Rolls (4pc)", "Fresh vegetable spring rolls", "6.00", 8},
		}},
		{"Mediterranean Bistro", []seedDish{
			{"Greek Salad", "Feta, olives, tomatoes, cucumber", "10.00", 8},
			{"Lamb Gyro", "Spiced lamb with tzatziki", "11.50", 12},
			{"Hummus & Pita", "Creamy hummus with warm pita", "7.00", 5},
		}},
	},
	South: {
		{"Southern Fried Chicken", []seedDish{
			{"Fried Chicken (4pc)", "Crispy fried chicken pieces", "12.00", 20},
			{"Chicken Sandwich", "Fried chicken on brioche bun", "10.50", 15},
			{"Mac & Cheese", "Creamy macaroni and cheese", "7.00", 10},
		}},
		{"Taco Loco", []seedDish{
			{"Carnitas Tacos (3pc)", "Slow-cooked pork tacos", "10.00", 12},
			{"Fish Tacos (3pc)", "Battered fish with slaw", "11.00", 12},
			{"Quesadilla", "Cheese quesadilla with salsa", "8.00", 8},
		}},
		{"Soul Food Kitchen", []seedDish{
			{"Jambalaya", "Spicy rice with sausage and shrimp", "14.00", 25},
			{"Gumbo", "Rich stew with okra and meat", "13.50", 30},
			{"Cornbread", "Sweet cornbread", "4.00", 8},
		}},
		{"Poke Paradise", []seedDish{
			{"Tuna Poke Bowl", "Fresh tuna, rice, vegetables", "14.00", 10},
			{"Salmon Poke Bowl", "Salmon, rice, edamame", "14.50", 10},
			{"Veggie Poke Bowl", "Tofu, vegetables, rice", "11.00", 8},
		}},
		{"Wok Express", []seedDish{
			{"Kung Pao Chicken", "Spicy stir-fry with peanuts", "12.50", 15},
			{"Beef Lo Mein", "Noodles with beef and vegetables", "11.00", 12},
			{"Egg Rolls (2pc)", "Crispy vegetable egg rolls", "5.00", 8},
		}},
	},
}

// Meals returns the seed dishes for area in restaurant order. Unknown areas
// yield nil. The slice is freshly built on every call.
func Meals(area string) []Dish {
	restaurants, ok := seed[area]
	if !ok {
		return nil
	}

	var dishes []Dish
	for _, r := range restaurants {
		for _, d := range r.dishes {
			dishes = append(dishes, Dish{
				RestaurantName: r.name,
				DishName:       d.name,
				Description:    d.description,
				Price:          decimal.RequireFromString(d.price),
				PrepTime:       d.prepTime,
				Area:           area,
			})
		}
	}
	return dishes
}

// Restaurants lists the seed restaurant names for area.
func Restaurants(area string) []string {
	var names []string
	for _, r := range seed[area] {
		names = append(names, r.name)
	}
	return names
}
