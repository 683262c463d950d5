package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

const OrderPlacedEvent = "order_placed"

type Meal struct {
	ID             string    `json:"mealId"`
	RestaurantName string    `json:"restaurantName"`
	DishName       string    `json:"dishName"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	PrepTime       int       `json:"prepTime"`
	Area           string    `json:"area"`
	CreatedAt      time.Time `json:"-"`
}

// MealRegistration is the register-meal body. Price and prep time may arrive
// as JSON numbers or numeric strings.
type MealRegistration struct {
	RestaurantName string      `json:"restaurantName"`
	DishName       string      `json:"dishName"`
	Description    string      `json:"description"`
	Price          json.Number `json:"price"`
	PrepTime       json.Number `json:"prepTime"`
	Area           string      `json:"area"`
}

type Restaurant struct {
	ID           int64     `json:"restaurantId"`
	Name         string    `json:"restaurantName"`
	DeliveryArea string    `json:"deliveryArea"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderLine struct {
	DishName       string  `json:"dishName"`
	RestaurantName string  `json:"restaurantName"`
	Price          float64 `json:"price"`
	PrepTime       int     `json:"prepTime"`
	Quantity       int     `json:"quantity"`
}

type Order struct {
	ID                    int64       `json:"orderId"`
	CustomerName          string      `json:"customerName"`
	CustomerAddress       string      `json:"customerAddress"`
	CustomerPhone         string      `json:"customerPhone"`
	SpecialInstructions   string      `json:"specialInstructions"`
	DeliveryArea          string      `json:"deliveryArea"`
	Lines                 []OrderLine `json:"meals"`
	TotalPrice            float64     `json:"totalPrice"`
	EstimatedDeliveryTime int         `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time   `json:"createdAt"`
}

func (o *Order) TotalItems() int {
	total := 0
	for _, l := range o.Lines {
		total += l.Quantity
	}
	return total
}

type OrderEvent struct {
	Type       string      `json:"type"`
	OrderID    int64       `json:"orderId"`
	Area       string      `json:"area"`
	Lines      []EventLine `json:"lines"`
	TotalPrice float64     `json:"totalPrice"`
	Timestamp  time.Time   `json:"timestamp"`
}

type EventLine struct {
	DishName string `json:"dishName"`
	Quantity int    `json:"quantity"`
}

type PopularMeal struct {
	DishName string `json:"dishName"`
	Ordered  int64  `json:"ordered"`
}
