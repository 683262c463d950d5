// Package checkout implements the customer ordering workflow: area selection,
// cart building, order submission and confirmation.
package checkout

import (
	"context"
	"errors"
	"sync"

	"bytebite/catalog"
	"bytebite/storefront/internal/menu"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Controller drives one customer's workflow. The mutex is never held across
// a fetch or a submission.
type Controller struct {
	fetcher   menu.Fetcher
	submitter OrderSubmitter

	mu           sync.Mutex
	state        State
	area         string
	menu         []menu.Meal
	cart         *Cart
	confirmation *Confirmation
	customer     CustomerInfo
	lastError    string
	generation   uint64
}

func NewController(fetcher menu.Fetcher, submitter OrderSubmitter) *Controller {
	return &Controller{
		fetcher:   fetcher,
		submitter: submitter,
		state:     Idle,
		cart:      NewCart(),
	}
}

// SelectArea resets the cart and loads the menu for area.
// A newer selection or StartNewOrder makes an in-flight fetch stale; its
// result is dropped.
func (c *Controller) SelectArea(ctx context.Context, area string) error {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	if !catalog.IsArea(area) {
		err := &ValidationError{Reason: ReasonUnknownArea, Field: area}
		c.lastError = UserMessage(err)
		c.mu.Unlock()
		return err
	}

	c.generation++
	gen := c.generation
	c.area = area
	c.menu = nil
	c.cart.Clear()
	c.confirmation = nil
	c.lastError = ""
	c.state = AreaSelected
	c.mu.Unlock()

	meals, err := c.fetcher.Fetch(ctx, area)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}

	if err != nil {
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			err = &FetchError{Area: area, Err: err}
		}
		log.Warn().Err(err).Str("area", area).Msg("menu unavailable")
		c.state = Idle
		c.lastError = UserMessage(err)
		return err
	}

	c.menu = meals
	c.state = MenuShown
	return nil
}

func (c *Controller) AddMeal(meal menu.Meal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.acceptsCartChanges() {
		return ErrInvalidTransition
	}
	c.addLocked(meal)
	return nil
}

// AddMealAt adds the menu entry at index. An index outside the menu is ignored.
func (c *Controller) AddMealAt(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.acceptsCartChanges() {
		return ErrInvalidTransition
	}
	if index < 0 || index >= len(c.menu) {
		return nil
	}
	c.addLocked(c.menu[index])
	return nil
}

func (c *Controller) addLocked(meal menu.Meal) {
	c.cart.Add(meal)
	c.state = CartNonEmpty
	c.lastError = ""
}

func (c *Controller) RemoveMeal(dishName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return ErrInvalidTransition
	}
	if c.cart.Remove(dishName) && c.cart.IsEmpty() && c.state == CartNonEmpty {
		c.state = MenuShown
	}
	return nil
}

func (c *Controller) ClearCart() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return ErrInvalidTransition
	}
	c.cart.Clear()
	if c.state == CartNonEmpty {
		c.state = MenuShown
	}
	return nil
}

// SubmitOrder validates the cart and customer details, then places the order.
// On failure the cart and the customer details are kept so the customer can
// retry.
func (c *Controller) SubmitOrder(ctx context.Context, info CustomerInfo) (*Confirmation, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return nil, ErrSubmissionInProgress
	}
	info = info.normalized()
	c.customer = info
	if c.cart.IsEmpty() {
		err := &ValidationError{Reason: ReasonEmptyCart}
		c.lastError = UserMessage(err)
		c.mu.Unlock()
		return nil, err
	}
	if err := info.validate(); err != nil {
		c.lastError = UserMessage(err)
		c.mu.Unlock()
		return nil, err
	}

	order := newOrder(info, c.area, c.cart)
	c.state = Submitting
	c.lastError = ""
	c.mu.Unlock()

	est, err := c.submitter.Submit(ctx, order)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		var submissionErr *SubmissionError
		if !errors.As(err, &submissionErr) {
			err = &SubmissionError{Message: "Failed to submit order. Please try again.", Err: err}
		}
		log.Warn().Err(err).Str("area", order.Area()).Msg("order submission failed")
		c.state = CartNonEmpty
		c.lastError = UserMessage(err)
		return nil, err
	}

	confirmation := newConfirmation(order, est)
	c.confirmation = confirmation
	c.customer = CustomerInfo{}
	c.cart.Clear()
	c.state = Confirmed
	log.Info().
		Int64("order_id", est.OrderID).
		Str("area", order.Area()).
		Int("items", order.TotalItems()).
		Int("estimate_min", est.Minutes).
		Msg("order confirmed")

	out := *confirmation
	return &out, nil
}

func (c *Controller) StartNewOrder() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return ErrInvalidTransition
	}
	c.generation++
	c.state = Idle
	c.area = ""
	c.menu = nil
	c.cart.Clear()
	c.confirmation = nil
	c.customer = CustomerInfo{}
	c.lastError = ""
	return nil
}

// Snapshot is a read-only copy of the controller, enough to render a page.
type Snapshot struct {
	State        State
	Area         string
	Menu         []menu.Meal
	Lines        []CartLine
	TotalItems   int
	TotalPrice   decimal.Decimal
	Confirmation *Confirmation
	// Customer holds the details from the last rejected submission.
	Customer     CustomerInfo
	Error        string
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:      c.state,
		Area:       c.area,
		Menu:       append([]menu.Meal(nil), c.menu...),
		Lines:      c.cart.Lines(),
		TotalItems: c.cart.TotalItems(),
		TotalPrice: c.cart.TotalPrice(),
		Customer:   c.customer,
		Error:      c.lastError,
	}
	if c.confirmation != nil {
		conf := *c.confirmation
		snap.Confirmation = &conf
	}
	return snap
}

func (s Snapshot) TotalText() string {
	return FormatPrice(s.TotalPrice)
}
