package app

import (
	"errors"
	"strconv"

	"github.com/dwikikusuma/storefront-llm/internal/catalog/domain"
)

var ErrNotFound = errors.New("not found")

// Service serves the session's static product list. Products keep their
// source order; positions matter because agent selectors may address
// products by index.
type Service struct {
	products []domain.Product
}

func NewService(source ProductSource) (*Service, error) {
	if source == nil {
		panic("catalog: nil product source")
	}

	products, err := source.Load()
	if err != nil {
		return nil, err
	}

	return &Service{products: products}, nil
}

func (s *Service) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) Get(i int) (domain.Product, error) {
	if i < 0 || i >= len(s.products) {
		return domain.Product{}, ErrNotFound
	}
	return s.products[i], nil
}

func (s *Service) GetByName(name string) (domain.Product, error) {
	for _, p := range s.products {
		if p.Name == name {
			return p, nil
		}
	}
	return domain.Product{}, ErrNotFound
}

// Resolve maps an agent-supplied selector to a product. The selector is
// first treated as a zero-based catalog index in string form; only when no
// index matches is it compared against product names. Either way the first
// hit in catalog order wins. Note a numeric selector therefore always means
// the position, even if some product's name spells a different position.
func (s *Service) Resolve(selector string) (domain.Product, bool) {
	for i, p := range s.products {
		if strconv.Itoa(i) == selector {
			return p, true
		}
	}
	for _, p := range s.products {
		if p.Name == selector {
			return p, true
		}
	}
	return domain.Product{}, false
}
