package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/storefront-llm/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-llm/internal/cart/domain"
	checkoutapp "github.com/dwikikusuma/storefront-llm/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines(_ context.Context) ([]checkoutapp.CartLine, error) {
	items := r.svc.Items()

	lines := make([]checkoutapp.CartLine, 0, len(items))
	for _, item := range items {
		cents, _ := cartdomain.ParseAmount(item.Price)
		lines = append(lines, checkoutapp.CartLine{
			ItemID:     item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceCents: cents,
		})
	}
	return lines, nil
}
