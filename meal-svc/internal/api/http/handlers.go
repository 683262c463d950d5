package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bytebite/meal-svc/internal/domain"
	"bytebite/meal-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	Meals       service.MealServiceInterface
	Restaurants service.RestaurantServiceInterface
	Orders      service.OrderServiceInterface
	Popularity  service.PopularityServiceInterface
}

func NewHandler(meals service.MealServiceInterface, restaurants service.RestaurantServiceInterface,
	orders service.OrderServiceInterface, popularity service.PopularityServiceInterface) *Handler {
	return &Handler{
		Meals:       meals,
		Restaurants: restaurants,
		Orders:      orders,
		Popularity:  popularity,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/registermeal", h.registerMeal).Methods("POST")
	r.HandleFunc("/api/getmealsbyarea", h.getMealsByArea).Methods("GET")
	r.HandleFunc("/api/registerrestaurant", h.registerRestaurant).Methods("POST")

	r.HandleFunc("/api/submitorder", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/popularmeals", h.getPopularMeals).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "meal-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) registerMeal(w http.ResponseWriter, r *http.Request) {
	var reg domain.MealRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	meal, err := h.Meals.Register(r.Context(), reg)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Meal registered successfully",
		"mealId":  meal.ID,
	})
}

func (h *Handler) getMealsByArea(w http.ResponseWriter, r *http.Request) {
	area := r.URL.Query().Get("area")
	if area == "" {
		writeError(w, http.StatusBadRequest, "Missing area parameter")
		return
	}

	meals, err := h.Meals.ListByArea(r.Context(), area)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

func (h *Handler) registerRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	if err := h.Restaurants.Register(r.Context(), &rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":           true,
		"restaurantId": rest.ID,
	})
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data format")
		return
	}

	if err := h.Orders.Place(r.Context(), &order); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"orderId":               order.ID,
		"estimatedDeliveryTime": order.EstimatedDeliveryTime,
		"totalPrice":            order.TotalPrice,
		"qrCode":                h.Orders.QRLink(order.ID),
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	qr, err := h.Orders.GetQRCode(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if len(qr) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(qr)
}

func (h *Handler) getPopularMeals(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	meals, err := h.Popularity.Top(r.Context(), r.URL.Query().Get("area"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, service.ErrInvalidMeal):
		writeError(w, http.StatusBadRequest, "Invalid data format")
	case errors.Is(err, service.ErrUnknownArea):
		writeError(w, http.StatusBadRequest, "Invalid delivery area")
	case errors.Is(err, service.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, "Order must contain at least one meal")
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}
