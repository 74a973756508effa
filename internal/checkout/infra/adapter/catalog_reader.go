package adapter

import (
	"context"
	"fmt"

	cartdomain "github.com/dwikikusuma/storefront-llm/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront-llm/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) UnitPriceCents(_ context.Context, name string) (int64, error) {
	p, err := r.svc.GetByName(name)
	if err != nil {
		return 0, fmt.Errorf("checkout: price for %q: %w", name, err)
	}

	cents, ok := cartdomain.ParseAmount(p.Price)
	if !ok {
		return 0, fmt.Errorf("checkout: unparseable price %q for %q", p.Price, name)
	}
	return cents, nil
}
