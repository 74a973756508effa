package app

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/storefront-llm/internal/checkout/domain"
)

type CartLine struct {
	ItemID     string
	Name       string
	Quantity   int
	PriceCents int64
}

type CartReader interface {
	Lines(ctx context.Context) ([]CartLine, error)
}

type CatalogReader interface {
	// UnitPriceCents returns the catalog price for a product name.
	UnitPriceCents(ctx context.Context, name string) (int64, error)
}

var ErrEmptyCart = errors.New("cart is empty")

// Service prices the current cart. Checkout stops at the quote; there is
// no payment leg. Unit prices are re-read from the catalog with bounded
// fan-out; a product that has left the catalog keeps the price captured in
// the cart line.
type Service struct {
	cart    CartReader
	catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if cart == nil {
		panic("checkout: nil cart reader")
	}
	if catalog == nil {
		panic("checkout: nil catalog reader")
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		cart:          cart,
		catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	lines, err := s.cart.Lines(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(lines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	quoted := make([]domain.QuoteLine, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range lines {
		g.Go(func() error {
			line := lines[idx]

			unit, err := s.catalog.UnitPriceCents(ctx, line.Name)
			if err != nil {
				unit = line.PriceCents
			}

			quoted[idx] = domain.QuoteLine{
				ItemID:    line.ItemID,
				Name:      line.Name,
				Quantity:  line.Quantity,
				UnitPrice: domain.Money{Cents: unit},
				LineTotal: domain.Money{Cents: unit * int64(line.Quantity)},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	quote := domain.Quote{Lines: quoted}
	for _, line := range quoted {
		quote.TotalItems += line.Quantity
		quote.Total.Cents += line.LineTotal.Cents
	}
	return quote, nil
}
