package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var (
	ErrNotFound       = errors.New("service not found")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

//go:embed catalog.toml
var defaultCatalog []byte

// Catalog es inmutable después de cargado; seguro para lectura concurrente.
type Catalog struct {
	items []Service
	byID  map[string]Service
}

// Default devuelve el catálogo embebido.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load lee un catálogo TOML desde path. Path vacío => catálogo embebido.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode toml: %w", err)
	}
	return New(f.Services)
}

func New(items []Service) (*Catalog, error) {
	c := &Catalog{
		items: make([]Service, 0, len(items)),
		byID:  make(map[string]Service, len(items)),
	}
	for _, s := range items {
		s.ID = strings.TrimSpace(s.ID)
		s.Name = strings.TrimSpace(s.Name)
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("%w: service id and name are required", ErrInvalidCatalog)
		}
		if s.Price < 0 {
			return nil, fmt.Errorf("%w: negative price for %q", ErrInvalidCatalog, s.ID)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, s.ID)
		}
		c.byID[s.ID] = s
		c.items = append(c.items, s)
	}
	return c, nil
}

func (c *Catalog) Get(id string) (Service, error) {
	s, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Service{}, ErrNotFound
	}
	return s, nil
}

// List respeta el orden del archivo.
func (c *Catalog) List() []Service {
	out := make([]Service, len(c.items))
	copy(out, c.items)
	return out
}
