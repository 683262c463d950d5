// Package mealapi is a client for the meal service endpoints: meals by area,
// order submission and meal/restaurant registration.
package mealapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer. Message is the service's "error" field when it
// sent one, otherwise a generic message for the operation.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	client  HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: client}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) MealsByArea(ctx context.Context, area string) ([]Meal, error) {
	endpoint := c.baseURL + "/getmealsbyarea?area=" + url.QueryEscape(area)
	var meals []Meal
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &meals, "Failed to fetch meals"); err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []Meal{}
	}
	return meals, nil
}

func (c *Client) SubmitOrder(ctx context.Context, order OrderRequest) (*OrderResult, error) {
	var result OrderResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/submitorder", order, &result, "Failed to submit order"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RegisterMeal(ctx context.Context, meal MealRegistration) (*RegistrationResult, error) {
	var result RegistrationResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/registermeal", meal, &result, "Failed to register meal"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RegisterRestaurant(ctx context.Context, rest RestaurantRegistration) (*RestaurantResult, error) {
	var result RestaurantResult
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/registerrestaurant", rest, &result, "Failed to register restaurant"); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}
		var errBody ErrorResponse
		if json.Unmarshal(raw, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
