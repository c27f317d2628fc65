package packages

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed packages.yaml
var catalogYAML []byte

// Catalog is the static list of launch packages offered to customers.
type Catalog struct {
	packages   []Package
	byKey      map[string]Package
	byCallback map[string]Package
}

// NewCatalog loads the embedded package list and validates it at startup.
func NewCatalog() (*Catalog, error) {
	var raw struct {
		Packages []Package `yaml:"packages"`
	}
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse package catalog: %w", err)
	}
	if len(raw.Packages) == 0 {
		return nil, fmt.Errorf("package catalog is empty")
	}

	c := &Catalog{
		packages:   raw.Packages,
		byKey:      make(map[string]Package, len(raw.Packages)),
		byCallback: make(map[string]Package, len(raw.Packages)),
	}

	for _, p := range raw.Packages {
		if p.Key == "" || p.Title == "" || p.CallbackData == "" {
			return nil, fmt.Errorf("package %+v is missing key, title or callback_data", p)
		}
		if _, err := p.SolAmount(); err != nil {
			return nil, err
		}
		if _, dup := c.byKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate package key %q", p.Key)
		}
		c.byKey[p.Key] = p
		c.byCallback[p.CallbackData] = p
	}

	return c, nil
}

// All returns packages in catalog order.
func (c *Catalog) All() []Package {
	return c.packages
}

func (c *Catalog) ByKey(key string) (Package, bool) {
	p, ok := c.byKey[key]
	return p, ok
}

// ByCallback resolves a package from its inline button callback token.
func (c *Catalog) ByCallback(data string) (Package, bool) {
	p, ok := c.byCallback[data]
	return p, ok
}

// IsPackageCallback reports whether the callback token selects a package.
func (c *Catalog) IsPackageCallback(data string) bool {
	_, ok := c.byCallback[data]
	return ok
}
