package admin

import (
	"context"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

type Categories struct {
	*Table[models.Category]
}

func NewCategories(store *kvstore.Store) *Categories {
	return &Categories{Table: NewTable(store, KeyCategories, seedCategories)}
}

// Create asigna id y genera el slug desde el nombre si no viene
func (c *Categories) Create(ctx context.Context, category models.Category) models.Category {
	category.ID = uuid.NewString()
	category.Name = strings.TrimSpace(category.Name)
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	c.Insert(ctx, category)
	return category
}

// Save reemplaza nombre, slug, descripción y cantidad del registro id
func (c *Categories) Save(ctx context.Context, id string, category models.Category) (models.Category, bool) {
	return c.Update(ctx, id, func(existing *models.Category) {
		existing.Name = strings.TrimSpace(category.Name)
		existing.Slug = category.Slug
		if existing.Slug == "" {
			existing.Slug = Slugify(existing.Name)
		}
		existing.Description = category.Description
		existing.ProductCount = category.ProductCount
	})
}

// Slugify pasa a minúsculas y reemplaza lo que no sea letra o número por "-"
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
