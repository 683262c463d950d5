package mealapi

// Meal is a meal as served by getmealsbyarea.
type Meal struct {
	MealID         string  `json:"mealId"`
	RestaurantName string  `json:"restaurantName"`
	DishName       string  `json:"dishName"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	PrepTime       int     `json:"prepTime"`
	Area           string  `json:"area"`
}

type MealRegistration struct {
	RestaurantName string  `json:"restaurantName"`
	DishName       string  `json:"dishName"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	PrepTime       int     `json:"prepTime"`
	Area           string  `json:"area"`
}

type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	MealID  string `json:"mealId"`
}

type RestaurantRegistration struct {
	RestaurantName string `json:"restaurantName"`
	DeliveryArea   string `json:"deliveryArea"`
}

type RestaurantResult struct {
	OK           bool  `json:"ok"`
	RestaurantID int64 `json:"restaurantId"`
}

type OrderLine struct {
	DishName       string  `json:"dishName"`
	RestaurantName string  `json:"restaurantName"`
	Price          float64 `json:"price"`
	PrepTime       int     `json:"prepTime"`
	Quantity       int     `json:"quantity"`
}

type OrderRequest struct {
	CustomerName        string      `json:"customerName"`
	CustomerAddress     string      `json:"customerAddress"`
	CustomerPhone       string      `json:"customerPhone"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	DeliveryArea        string      `json:"deliveryArea"`
	Meals               []OrderLine `json:"meals"`
}

type OrderResult struct {
	OrderID               int64   `json:"orderId"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime"`
	TotalPrice            float64 `json:"totalPrice"`
	QRCode                string  `json:"qrCode,omitempty"`
}

// ErrorResponse is the body every endpoint answers with on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
