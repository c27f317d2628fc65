package packages

import (
	"fmt"
	"strconv"
	"strings"
)

// Package describes one launch package from the static catalog. Key and
// price never change for an existing order, so orders store a copy of the
// title and amount instead of referencing the catalog.
type Package struct {
	Key          string   `yaml:"key"`
	Title        string   `yaml:"title"`
	Price        string   `yaml:"price"`
	Features     []string `yaml:"features"`
	CallbackData string   `yaml:"callback_data"`
}

// SolAmount parses the price label ("0.1 SOL") into its numeric amount.
func (p Package) SolAmount() (float64, error) {
	raw := strings.TrimSpace(strings.TrimSuffix(p.Price, " SOL"))
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q of package %q: %w", p.Price, p.Key, err)
	}
	return amount, nil
}
