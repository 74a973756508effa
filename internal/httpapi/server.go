// Package httpapi exposes the storefront to the view layer and accepts the
// agent-action webhook.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	assistantapp "github.com/dwikikusuma/storefront-llm/internal/assistant/app"
	assistantdomain "github.com/dwikikusuma/storefront-llm/internal/assistant/domain"
	cartapp "github.com/dwikikusuma/storefront-llm/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-llm/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront-llm/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront-llm/internal/checkout/app"
	"github.com/dwikikusuma/storefront-llm/internal/notify"
)

type Server struct {
	log        *slog.Logger
	catalog    *catalogapp.Service
	cart       *cartapp.Service
	checkout   *checkoutapp.Service
	toasts     *notify.Service
	dispatcher *assistantapp.Dispatcher
}

func NewServer(
	log *slog.Logger,
	catalog *catalogapp.Service,
	cart *cartapp.Service,
	checkout *checkoutapp.Service,
	toasts *notify.Service,
	dispatcher *assistantapp.Dispatcher,
) *Server {
	if log == nil || catalog == nil || cart == nil || checkout == nil || toasts == nil || dispatcher == nil {
		panic("httpapi: nil dependency")
	}
	return &Server{
		log:        log,
		catalog:    catalog,
		cart:       cart,
		checkout:   checkout,
		toasts:     toasts,
		dispatcher: dispatcher,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /v1/products", s.handleListProducts)

	mux.HandleFunc("GET /v1/cart", s.handleGetCart)
	mux.HandleFunc("DELETE /v1/cart", s.handleClearCart)
	mux.HandleFunc("GET /v1/cart/summary", s.handleCartSummary)
	mux.HandleFunc("POST /v1/cart/items", s.handleAddItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", s.handleUpdateQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", s.handleRemoveItem)

	mux.HandleFunc("POST /v1/assistant/actions", s.handleAgentAction)
	mux.HandleFunc("GET /v1/notifications", s.handleNotifications)

	mux.HandleFunc("POST /v1/checkout/quote", s.handleQuote)

	return mux
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"products": s.catalog.List()})
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	s.cart.ClearCart(r.Context())
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleCartSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"totalItems": s.cart.TotalItems(),
		"totalPrice": s.cart.TotalPrice(),
	})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		s.writeError(w, http.StatusBadRequest, "INVALID_INPUT", "name is required")
		return
	}

	p, err := s.catalog.GetByName(req.Name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "NOT_FOUND", "unknown product")
		return
	}

	item := s.cart.AddToCart(r.Context(), cartdomain.Product{
		Image:    p.Image,
		Name:     p.Name,
		Price:    p.Price,
		Subtitle: p.Subtitle,
	})
	s.toasts.Success(p.Name + " added to cart")

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed request body")
		return
	}

	s.cart.UpdateQuantity(r.Context(), r.PathValue("id"), req.Quantity)
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	s.cart.RemoveFromCart(r.Context(), r.PathValue("id"))
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleAgentAction(w http.ResponseWriter, r *http.Request) {
	var action assistantdomain.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_BODY", "malformed action")
		return
	}

	s.dispatcher.Dispatch(r.Context(), action)
	writeJSON(w, http.StatusAccepted, map[string]any{"status": "accepted"})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"toasts": s.toasts.Active()})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := s.checkout.Quote(r.Context())
	if err != nil {
		status, code := statusFromErr(err)
		s.writeError(w, status, code, err.Error())
		return
	}

	lines := make([]map[string]any, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, map[string]any{
			"itemId":    line.ItemID,
			"name":      line.Name,
			"quantity":  line.Quantity,
			"unitPrice": line.UnitPrice.String(),
			"lineTotal": line.LineTotal.String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"lines":      lines,
		"totalItems": quote.TotalItems,
		"total":      quote.Total.String(),
	})
}

func (s *Server) writeCart(w http.ResponseWriter, status int) {
	writeJSON(w, status, map[string]any{
		"items":      s.cart.Items(),
		"totalItems": s.cart.TotalItems(),
		"totalPrice": s.cart.TotalPrice(),
	})
}

func statusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusBadRequest, "EMPTY_CART"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", slog.String("code", code), slog.String("message", message))
	}
	writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
