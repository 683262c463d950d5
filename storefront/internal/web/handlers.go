// Package web serves the storefront pages. Every page is rendered from a
// snapshot of the session's checkout controller.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"bytebite/catalog"
	"bytebite/storefront/internal/checkout"
	"bytebite/storefront/internal/menu"
	"bytebite/storefront/internal/registration"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"price":    checkout.FormatPrice,
	"minutes":  checkout.FormatDeliveryTime,
	"fallback": func() string { return menu.FallbackImageURL },
}).ParseFS(templateFS, "templates/*.html"))

type Handler struct {
	sessions     *SessionStore
	registration *registration.Service
	online       bool
}

func NewHandler(sessions *SessionStore, reg *registration.Service, online bool) *Handler {
	return &Handler{sessions: sessions, registration: reg, online: online}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/customer", h.CustomerPage).Methods("GET")
	r.HandleFunc("/customer/area", h.SelectArea).Methods("POST")
	r.HandleFunc("/customer/add", h.AddMeal).Methods("POST")
	r.HandleFunc("/customer/remove", h.RemoveMeal).Methods("POST")
	r.HandleFunc("/customer/clear", h.ClearCart).Methods("POST")
	r.HandleFunc("/customer/order", h.SubmitOrder).Methods("POST")
	r.HandleFunc("/customer/new", h.StartNewOrder).Methods("POST")
	r.HandleFunc("/restaurant", h.RestaurantPage).Methods("GET")
	r.HandleFunc("/restaurant/register", h.RegisterRestaurant).Methods("POST")
	r.HandleFunc("/restaurant/meal", h.RegisterMeal).Methods("POST")
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	mode := "offline"
	if h.online {
		mode = "online"
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "storefront",
		"mode":    mode,
	})
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, "home", nil)
}

type customerPage struct {
	checkout.Snapshot
	Areas []string
}

func (p customerPage) Loading() bool { return p.State == checkout.AreaSelected }

func (p customerPage) ShowMenu() bool {
	return p.State == checkout.MenuShown || p.State == checkout.CartNonEmpty
}

func (p customerPage) Confirmed() bool {
	return p.State == checkout.Confirmed && p.Confirmation != nil
}

func (p customerPage) Submitting() bool { return p.State == checkout.Submitting }

func (h *Handler) CustomerPage(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	render(w, "customer", customerPage{Snapshot: ctrl.Snapshot(), Areas: catalog.Areas})
}

func (h *Handler) SelectArea(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	if err := ctrl.SelectArea(r.Context(), r.FormValue("area")); err != nil {
		logActionError("select area", err)
	}
	redirect(w, r, "/customer")
}

func (h *Handler) AddMeal(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "Invalid meal index", http.StatusBadRequest)
		return
	}
	if err := ctrl.AddMealAt(index); err != nil {
		logActionError("add meal", err)
	}
	redirect(w, r, "/customer")
}

func (h *Handler) RemoveMeal(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	if err := ctrl.RemoveMeal(r.FormValue("dish")); err != nil {
		logActionError("remove meal", err)
	}
	redirect(w, r, "/customer")
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	if err := ctrl.ClearCart(); err != nil {
		logActionError("clear cart", err)
	}
	redirect(w, r, "/customer")
}

func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	info := checkout.CustomerInfo{
		Name:                r.FormValue("name"),
		Address:             r.FormValue("address"),
		Phone:               r.FormValue("phone"),
		SpecialInstructions: r.FormValue("instructions"),
	}
	if _, err := ctrl.SubmitOrder(r.Context(), info); err != nil {
		logActionError("submit order", err)
	}
	redirect(w, r, "/customer")
}

func (h *Handler) StartNewOrder(w http.ResponseWriter, r *http.Request) {
	ctrl := h.sessions.Controller(w, r)
	if err := ctrl.StartNewOrder(); err != nil {
		logActionError("start new order", err)
	}
	redirect(w, r, "/customer")
}

type restaurantPage struct {
	Areas      []string
	Notice     *Notice
	Meal       registration.Form
	Restaurant RestaurantForm
}

func (h *Handler) RestaurantPage(w http.ResponseWriter, r *http.Request) {
	page := restaurantPage{
		Areas:  catalog.Areas,
		Notice: h.sessions.TakeNotice(w, r),
	}
	if page.Notice != nil {
		page.Meal = page.Notice.Meal
		page.Restaurant = page.Notice.Restaurant
	}
	render(w, "restaurant", page)
}

func (h *Handler) RegisterRestaurant(w http.ResponseWriter, r *http.Request) {
	form := RestaurantForm{
		Name: r.FormValue("restaurantName"),
		Area: r.FormValue("deliveryArea"),
	}

	notice := Notice{Success: true, Message: "Restaurant registered successfully"}
	if _, err := h.registration.RegisterRestaurant(r.Context(), form.Name, form.Area); err != nil {
		notice = Notice{Message: registrationMessage(err), Restaurant: form}
	}
	h.sessions.SetNotice(w, r, notice)
	redirect(w, r, "/restaurant")
}

func (h *Handler) RegisterMeal(w http.ResponseWriter, r *http.Request) {
	form := registration.Form{
		RestaurantName: r.FormValue("restaurantName"),
		DishName:       r.FormValue("dishName"),
		Description:    r.FormValue("description"),
		Price:          r.FormValue("price"),
		PrepTime:       r.FormValue("prepTime"),
		Area:           r.FormValue("area"),
	}

	notice := Notice{Success: true}
	result, err := h.registration.RegisterMeal(r.Context(), form)
	if err != nil {
		notice = Notice{Message: registrationMessage(err), Meal: form}
	} else {
		notice.Message = result.Message
	}
	h.sessions.SetNotice(w, r, notice)
	redirect(w, r, "/restaurant")
}

func registrationMessage(err error) string {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Reason
	}
	if errors.Is(err, registration.ErrOffline) {
		return "Registration is unavailable while the meal service is offline."
	}
	return checkout.UserMessage(err)
}

func logActionError(action string, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Str("action", action).Msg("rejected input")
		return
	}
	log.Warn().Err(err).Str("action", action).Msg("action failed")
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}
