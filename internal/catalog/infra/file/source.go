// Package file loads the product catalog from a local YAML or JSON file.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dwikikusuma/storefront-llm/internal/catalog/domain"
)

type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

type catalogFile struct {
	Products []domain.Product `json:"products" yaml:"products"`
}

func (s *Source) Load() ([]domain.Product, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", s.path, err)
	}

	var f catalogFile
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &f)
	default:
		err = json.Unmarshal(raw, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", s.path, err)
	}

	return f.Products, nil
}
