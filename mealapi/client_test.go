package mealapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MealsByArea(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/getmealsbyarea", r.URL.Path)
		gotQuery = r.URL.Query().Get("area")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"mealId":"m1","restaurantName":"Pasta Paradise","dishName":"Lasagna","description":"Layered","price":14,"prepTime":25,"area":"Central"}]`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL+"/api", ts.Client())
	meals, err := client.MealsByArea(context.Background(), "Central")

	require.NoError(t, err)
	assert.Equal(t, "Central", gotQuery)
	require.Len(t, meals, 1)
	assert.Equal(t, "Lasagna", meals[0].DishName)
	assert.Equal(t, 14.0, meals[0].Price)
}

func TestClient_MealsByArea_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer ts.Close()

	meals, err := NewClient(ts.URL, ts.Client()).MealsByArea(context.Background(), "North")

	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		call        func(*Client) error
		wantMessage string
	}{
		{
			name:   "fetch failure without body",
			status: http.StatusInternalServerError,
			call: func(c *Client) error {
				_, err := c.MealsByArea(context.Background(), "Central")
				return err
			},
			wantMessage: "Failed to fetch meals",
		},
		{
			name:   "order failure surfaces service message",
			status: http.StatusBadRequest,
			body:   `{"error":"Restaurant is closed"}`,
			call: func(c *Client) error {
				_, err := c.SubmitOrder(context.Background(), OrderRequest{})
				return err
			},
			wantMessage: "Restaurant is closed",
		},
		{
			name:   "registration failure with non json body",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			call: func(c *Client) error {
				_, err := c.RegisterMeal(context.Background(), MealRegistration{})
				return err
			},
			wantMessage: "Failed to register meal",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer ts.Close()

			err := testCase.call(NewClient(ts.URL, ts.Client()))

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Equal(t, testCase.wantMessage, apiErr.Error())
		})
	}
}

func TestClient_SubmitOrder(t *testing.T) {
	var received OrderRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submitorder", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"orderId":7,"estimatedDeliveryTime":45,"totalPrice":40.97,"qrCode":"/api/orders/7/qrcode"}`))
	}))
	defer ts.Close()

	order := OrderRequest{
		CustomerName:    "Ada",
		CustomerAddress: "1 Main St",
		CustomerPhone:   "0612345678",
		DeliveryArea:    "Central",
		Meals: []OrderLine{
			{DishName: "A", RestaurantName: "R", Price: 12.99, PrepTime: 10, Quantity: 2},
			{DishName: "B", RestaurantName: "R", Price: 14.99, PrepTime: 15, Quantity: 1},
		},
	}

	result, err := NewClient(ts.URL, ts.Client()).SubmitOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 45, result.EstimatedDeliveryTime)
	assert.Equal(t, int64(7), result.OrderID)
	assert.Equal(t, order, received)
}

func TestClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := NewClient(url, nil).RegisterRestaurant(context.Background(), RestaurantRegistration{})

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
