// Package catalog holds the built-in recipe table keyed by ingredient keyword.
package catalog

import (
	"sort"
	"strings"

	"github.com/pageza/pantrychef/backend/internal/model"
)

// Catalog maps a lowercase ingredient keyword to its candidate recipes. It is
// read-only after construction and safe for concurrent use; every read hands
// out copies.
type Catalog struct {
	entries map[string][]model.Recipe
}

// New builds a catalog from the given table. Keys are lowercased and the
// recipes are copied, so later changes to the table do not leak in.
func New(entries map[string][]model.Recipe) *Catalog {
	c := &Catalog{entries: make(map[string][]model.Recipe, len(entries))}
	for key, recipes := range entries {
		k := strings.ToLower(strings.TrimSpace(key))
		if k == "" || len(recipes) == 0 {
			continue
		}
		list := make([]model.Recipe, 0, len(recipes))
		for _, r := range recipes {
			list = append(list, r.Clone())
		}
		c.entries[k] = append(c.entries[k], list...)
	}
	return c
}

// Default returns the catalog shipped with the service.
func Default() *Catalog {
	return New(defaultRecipes)
}

// Lookup returns copies of the candidates registered under keyword.
func (c *Catalog) Lookup(keyword string) ([]model.Recipe, bool) {
	recipes, ok := c.entries[keyword]
	if !ok {
		return nil, false
	}
	out := make([]model.Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out, true
}

// Keywords lists the registered keywords in sorted order.
func (c *Catalog) Keywords() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of keywords.
func (c *Catalog) Len() int {
	return len(c.entries)
}
