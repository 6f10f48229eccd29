// Package catalog holds the static template catalog. Templates are defined
// once at process start and never mutated; absence is represented, not
// returned as an error.
package catalog

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/musekit/muse/internal/models"
)

// Catalog provides read-only access to the template collection in
// declaration order.
type Catalog struct {
	templates []*models.Template
	byID      map[string]*models.Template
}

// New builds the catalog from the built-in template declarations.
func New() *Catalog {
	c := &Catalog{
		templates: builtinTemplates(),
		byID:      make(map[string]*models.Template),
	}
	for _, t := range c.templates {
		c.byID[t.ID] = t
	}
	return c
}

// All returns every template in declaration order.
func (c *Catalog) All() []*models.Template {
	return c.templates
}

// Categories returns the closed set of categories in display order.
func (c *Catalog) Categories() []models.Category {
	return []models.Category{
		models.CategoryStory,
		models.CategoryPoem,
		models.CategoryCharacter,
		models.CategoryWorldbuilding,
	}
}

// ListByCategory returns the templates of one category in declaration order.
// Callers may cap the count shown.
func (c *Catalog) ListByCategory(cat models.Category) []*models.Template {
	var out []*models.Template
	for _, t := range c.templates {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// ByID returns the template with the given id, if any.
func (c *Catalog) ByID(id string) (*models.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Search performs a fuzzy search over template names, descriptions, and ids.
func (c *Catalog) Search(query string) []*models.Template {
	if query == "" {
		return c.templates
	}

	var searchStrings []string
	for _, t := range c.templates {
		searchStr := fmt.Sprintf("%s %s %s %s",
			t.Name,
			t.Description,
			t.ID,
			strings.ToLower(string(t.Category)))
		searchStrings = append(searchStrings, searchStr)
	}

	matches := fuzzy.Find(query, searchStrings)

	var results []*models.Template
	for _, match := range matches {
		results = append(results, c.templates[match.Index])
	}
	return results
}
