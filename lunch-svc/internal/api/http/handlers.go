package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"lunchtime/lunch-svc/internal/domain"
	"lunchtime/lunch-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Checkout service.CheckoutServiceInterface
	Orders   service.OrdersServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface, checkoutSvc service.CheckoutServiceInterface, ordersSvc service.OrdersServiceInterface) *Handler {
	return &Handler{
		Menu:     menuSvc,
		Checkout: checkoutSvc,
		Orders:   ordersSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/selection", h.selectDish).Methods("POST")
	r.HandleFunc("/api/menu/selection", h.resetSelection).Methods("DELETE")
	r.HandleFunc("/api/menu/auto-combo", h.autoCombo).Methods("POST")

	r.HandleFunc("/api/checkout", h.getCheckout).Methods("GET")
	r.HandleFunc("/api/checkout", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/checkout/items/{category}", h.removeItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

type errorResponse struct {
	Error    string          `json:"error"`
	Advisory domain.Advisory `json:"advisory"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, title string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNetworkFailure):
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrDishNotFound), errors.Is(err, domain.ErrOrderNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		log.Printf("[lunch-svc] %s: %v", title, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Advisory: service.FailureAdvisory(title, err)})
}

func writeBadRequest(w http.ResponseWriter, advisory domain.Advisory) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: advisory.Message, Advisory: advisory})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "lunch-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(r.URL.Query().Get("kind"))
	page, err := h.Menu.Page(r.Context(), SessionFromContext(r.Context()), kind)
	if err != nil {
		writeError(w, "Menu loading failed", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) selectDish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, service.FailureAdvisory("Invalid request", err))
		return
	}
	if strings.TrimSpace(req.Keyword) == "" {
		writeBadRequest(w, service.FailureAdvisory("Invalid request", errors.New("keyword is required")))
		return
	}

	change, err := h.Menu.Select(r.Context(), SessionFromContext(r.Context()), req.Keyword)
	if err != nil {
		writeError(w, "Selection failed", err)
		return
	}
	writeJSON(w, http.StatusOK, change)
}

func (h *Handler) resetSelection(w http.ResponseWriter, r *http.Request) {
	change, err := h.Menu.Reset(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeError(w, "Reset failed", err)
		return
	}
	writeJSON(w, http.StatusOK, change)
}

func (h *Handler) autoCombo(w http.ResponseWriter, r *http.Request) {
	change, err := h.Menu.AutoCombo(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeError(w, "Combo failed", err)
		return
	}
	writeJSON(w, http.StatusOK, change)
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request) {
	page, err := h.Checkout.Page(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeError(w, "Dish loading failed", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(mux.Vars(r)["category"])
	if !category.Valid() {
		writeBadRequest(w, service.FailureAdvisory("Invalid request", errors.New("unknown category "+string(category))))
		return
	}

	change, err := h.Checkout.RemoveItem(r.Context(), SessionFromContext(r.Context()), category)
	if err != nil {
		writeError(w, "Removal failed", err)
		return
	}
	writeJSON(w, http.StatusOK, change)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var form domain.DeliveryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeBadRequest(w, service.FailureAdvisory("Invalid request", errors.New("Invalid JSON format: "+err.Error())))
		return
	}
	if err := validateForm(form); err != nil {
		writeBadRequest(w, service.FailureAdvisory("Invalid form", err))
		return
	}

	session := SessionFromContext(r.Context())
	page, err := h.Checkout.Page(r.Context(), session)
	if err != nil {
		writeError(w, "Order submission failed", err)
		return
	}
	if len(page.Summary.Items) == 0 {
		writeBadRequest(w, service.EmptyOrderAdvisory())
		return
	}

	result, err := h.Checkout.Submit(r.Context(), session, form)
	if err != nil {
		writeError(w, "Order submission failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func validateForm(form domain.DeliveryForm) error {
	switch {
	case strings.TrimSpace(form.FullName) == "":
		return errors.New("full name is required")
	case strings.TrimSpace(form.Phone) == "":
		return errors.New("phone is required")
	case strings.TrimSpace(form.Address) == "":
		return errors.New("delivery address is required")
	}
	switch form.DeliveryType {
	case domain.DeliveryASAP:
	case domain.DeliverySpecific:
		if strings.TrimSpace(form.DeliveryTime) == "" {
			return errors.New("delivery time is required for a specific delivery")
		}
	default:
		return errors.New("delivery type must be asap or specific")
	}
	return nil
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		writeError(w, "Orders loading failed", err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "Order loading failed", err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Orders.Delete(r.Context(), id); err != nil {
		writeError(w, "Order deletion failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]domain.Advisory{"advisory": service.OrderDeletedAdvisory(id)})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.QRCode(mux.Vars(r)["id"])
	if err != nil || len(qrCode) == 0 {
		http.Error(w, "QR code not available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
