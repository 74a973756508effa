package app

import "context"

// Product carries the catalog fields the dispatcher hands to the cart.
type Product struct {
	Image    string
	Name     string
	Price    string
	Subtitle string
}

type CatalogResolver interface {
	Resolve(selector string) (Product, bool)
}

type CartWriter interface {
	AddToCart(ctx context.Context, p Product)
}

type Toaster interface {
	Success(message string)
	Error(message string)
}
