package checkout

import (
	"bytebite/storefront/internal/menu"

	"github.com/shopspring/decimal"
)

type CartLine struct {
	Meal     menu.Meal
	Quantity int
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Meal.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds lines keyed by dish name in first-add order.
// Totals are derived from the lines on every read.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) Add(meal menu.Meal) {
	if i := c.find(meal.DishName); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, CartLine{Meal: meal, Quantity: 1})
}

// Remove decrements the line for dishName and drops it at zero.
// It reports whether the cart changed.
func (c *Cart) Remove(dishName string) bool {
	i := c.find(dishName)
	if i < 0 {
		return false
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return true
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) find(dishName string) int {
	for i, l := range c.lines {
		if l.Meal.DishName == dishName {
			return i
		}
	}
	return -1
}
