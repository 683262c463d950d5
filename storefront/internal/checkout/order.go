package checkout

import (
	"strings"

	"bytebite/mealapi"

	"github.com/shopspring/decimal"
)

type CustomerInfo struct {
	Name                string
	Address             string
	Phone               string
	SpecialInstructions string
}

func (i CustomerInfo) normalized() CustomerInfo {
	return CustomerInfo{
		Name:                strings.TrimSpace(i.Name),
		Address:             strings.TrimSpace(i.Address),
		Phone:               strings.TrimSpace(i.Phone),
		SpecialInstructions: strings.TrimSpace(i.SpecialInstructions),
	}
}

func (i CustomerInfo) validate() error {
	switch {
	case i.Name == "":
		return &ValidationError{Reason: ReasonMissingField, Field: "name"}
	case i.Address == "":
		return &ValidationError{Reason: ReasonMissingField, Field: "address"}
	case i.Phone == "":
		return &ValidationError{Reason: ReasonMissingField, Field: "phone"}
	}
	return nil
}

// Order is the snapshot taken at submission. It never changes once built.
type Order struct {
	customer   CustomerInfo
	area       string
	lines      []CartLine
	totalPrice decimal.Decimal
	totalItems int
}

func newOrder(customer CustomerInfo, area string, cart *Cart) *Order {
	return &Order{
		customer:   customer,
		area:       area,
		lines:      cart.Lines(),
		totalPrice: cart.TotalPrice(),
		totalItems: cart.TotalItems(),
	}
}

func (o *Order) Customer() CustomerInfo { return o.customer }

func (o *Order) Area() string { return o.area }

func (o *Order) TotalPrice() decimal.Decimal { return o.totalPrice }

func (o *Order) TotalItems() int { return o.totalItems }

func (o *Order) Lines() []CartLine {
	out := make([]CartLine, len(o.lines))
	copy(out, o.lines)
	return out
}

// Request builds the wire body for the submit-order endpoint.
func (o *Order) Request() mealapi.OrderRequest {
	lines := make([]mealapi.OrderLine, 0, len(o.lines))
	for _, l := range o.lines {
		price, _ := l.Meal.Price.Float64()
		lines = append(lines, mealapi.OrderLine{
			DishName:       l.Meal.DishName,
			RestaurantName: l.Meal.RestaurantName,
			Price:          price,
			PrepTime:       l.Meal.PrepTime,
			Quantity:       l.Quantity,
		})
	}
	return mealapi.OrderRequest{
		CustomerName:        o.customer.Name,
		CustomerAddress:     o.customer.Address,
		CustomerPhone:       o.customer.Phone,
		SpecialInstructions: o.customer.SpecialInstructions,
		DeliveryArea:        o.area,
		Meals:               lines,
	}
}

// Confirmation is what the customer sees after a successful submission.
type Confirmation struct {
	CustomerName          string
	CustomerAddress       string
	TotalPrice            decimal.Decimal
	TotalItems            int
	EstimatedDeliveryTime int
	OrderID               int64
	QRCodeURL             string
}

func newConfirmation(o *Order, est *Estimate) *Confirmation {
	return &Confirmation{
		CustomerName:          o.customer.Name,
		CustomerAddress:       o.customer.Address,
		TotalPrice:            o.totalPrice,
		TotalItems:            o.totalItems,
		EstimatedDeliveryTime: est.Minutes,
		OrderID:               est.OrderID,
		QRCodeURL:             est.QRCodeURL,
	}
}

func (c Confirmation) TotalText() string {
	return FormatPrice(c.TotalPrice)
}

func (c Confirmation) DeliveryText() string {
	return FormatDeliveryTime(c.EstimatedDeliveryTime)
}
