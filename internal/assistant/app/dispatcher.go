package app

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/storefront-llm/internal/assistant/domain"
)

// HandlerFunc applies one action variant.
type HandlerFunc func(ctx context.Context, action domain.Action)

// Dispatcher translates agent actions into cart mutations plus feedback.
// It owns no state of its own; everything it touches comes in through the
// constructor. Handlers are looked up by action type, so new variants
// register without touching existing ones.
type Dispatcher struct {
	log      *slog.Logger
	catalog  CatalogResolver
	cart     CartWriter
	toasts   Toaster
	handlers map[string]HandlerFunc
}

func NewDispatcher(log *slog.Logger, catalog CatalogResolver, cart CartWriter, toasts Toaster) *Dispatcher {
	if log == nil {
		panic("assistant: nil logger")
	}
	if catalog == nil {
		panic("assistant: nil catalog resolver")
	}
	if cart == nil {
		panic("assistant: nil cart writer")
	}
	if toasts == nil {
		panic("assistant: nil toaster")
	}

	d := &Dispatcher{
		log:     log,
		catalog: catalog,
		cart:    cart,
		toasts:  toasts,
	}
	d.handlers = map[string]HandlerFunc{
		domain.TypeCartAdd: d.handleCartAdd,
	}
	return d
}

// Register installs a handler for an action type, replacing any existing one.
func (d *Dispatcher) Register(actionType string, fn HandlerFunc) {
	d.handlers[actionType] = fn
}

// Dispatch applies the action. Unknown types are inert: no mutation, no
// feedback, no error.
func (d *Dispatcher) Dispatch(ctx context.Context, action domain.Action) {
	fn, ok := d.handlers[action.Type]
	if !ok {
		d.log.Debug("ignoring unhandled agent action", slog.String("type", action.Type))
		return
	}
	fn(ctx, action)
}

func (d *Dispatcher) handleCartAdd(ctx context.Context, action domain.Action) {
	product, ok := d.catalog.Resolve(action.SelectedProductID)
	if !ok {
		d.log.Info("agent selected unknown product", slog.String("selector", action.SelectedProductID))
		d.toasts.Error("Product not found")
		return
	}

	d.cart.AddToCart(ctx, product)
	d.toasts.Success(product.Name + " added to cart")
}
