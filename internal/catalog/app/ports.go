package app

import (
	"github.com/dwikikusuma/storefront-llm/internal/catalog/domain"
)

type ProductSource interface {
	Load() ([]domain.Product, error)
}
