// Package adapter bridges the dispatcher's ports onto the catalog and cart
// services.
package adapter

import (
	"context"

	assistantapp "github.com/dwikikusuma/storefront-llm/internal/assistant/app"
	cartapp "github.com/dwikikusuma/storefront-llm/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-llm/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront-llm/internal/catalog/app"
	"github.com/dwikikusuma/storefront-llm/internal/notify"
)

type CatalogResolver struct {
	svc *catalogapp.Service
}

func NewCatalogResolver(svc *catalogapp.Service) *CatalogResolver {
	return &CatalogResolver{svc: svc}
}

func (r *CatalogResolver) Resolve(selector string) (assistantapp.Product, bool) {
	p, ok := r.svc.Resolve(selector)
	if !ok {
		return assistantapp.Product{}, false
	}
	return assistantapp.Product{
		Image:    p.Image,
		Name:     p.Name,
		Price:    p.Price,
		Subtitle: p.Subtitle,
	}, true
}

type CartWriter struct {
	svc *cartapp.Service
}

func NewCartWriter(svc *cartapp.Service) *CartWriter {
	return &CartWriter{svc: svc}
}

func (w *CartWriter) AddToCart(ctx context.Context, p assistantapp.Product) {
	w.svc.AddToCart(ctx, cartdomain.Product{
		Image:    p.Image,
		Name:     p.Name,
		Price:    p.Price,
		Subtitle: p.Subtitle,
	})
}

type Toaster struct {
	svc *notify.Service
}

func NewToaster(svc *notify.Service) *Toaster {
	return &Toaster{svc: svc}
}

func (t *Toaster) Success(message string) { t.svc.Success(message) }
func (t *Toaster) Error(message string)   { t.svc.Error(message) }
