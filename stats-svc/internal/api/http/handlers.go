package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"lunchtime/stats-svc/internal/domain"
	"lunchtime/stats-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stats service.StatsInterface
}

func NewHandler(svc service.StatsInterface) *Handler {
	return &Handler{Stats: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "stats-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/stats/popular", h.getPopular).Methods("GET")
	r.HandleFunc("/api/stats/summary", h.getSummary).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) getPopular(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
	}

	dishes, err := h.Stats.Popular(r.Context(), r.URL.Query().Get("period"), limit)
	if errors.Is(err, domain.ErrInvalidPeriod) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Printf("[stats-svc] popular dishes: %v", err)
		writeJSON(w, http.StatusOK, []domain.DishPopularity{})
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Stats.Summary(r.Context())
	if err != nil {
		log.Printf("[stats-svc] summary: %v", err)
		http.Error(w, "Summary not available", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
