package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	LunchSvcURL string
	StatsSvcURL string
	FrontendDir string
}

// Gateway fronts the widget: API calls go to the backing services, anything
// else is served from the frontend directory.
type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("[gateway] %s %s -> %s", r.Method, r.URL.Path, targetURL)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("[gateway] failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[gateway] failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[gateway] failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case strings.HasPrefix(path, "/api/stats/"):
		g.ProxyRequest(w, r, g.config.StatsSvcURL)
	case path == "/api/menu" || strings.HasPrefix(path, "/api/menu/"),
		path == "/api/checkout" || strings.HasPrefix(path, "/api/checkout/"),
		path == "/api/orders" || strings.HasPrefix(path, "/api/orders/"):
		g.ProxyRequest(w, r, g.config.LunchSvcURL)
	case strings.HasPrefix(path, "/api/"):
		log.Printf("[gateway] unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
	default:
		g.servePage(w, r)
	}
}

// servePage maps the three widget pages to their files; the menu page is
// the index.
func (g *Gateway) servePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}
	http.ServeFile(w, r, filepath.Join(g.config.FrontendDir, name))
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
