package catalog

import (
	"sort"

	"eyewear-store/internal/models"
)

// Catalog es la lista estática de productos; no cambia en tiempo de ejecución
type Catalog struct {
	products []models.Product
	byID     map[string]int
}

func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: append([]models.Product(nil), products...),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Default crea el catálogo con los productos de la tienda
func Default() *Catalog {
	return New(seedProducts())
}

// All retorna una copia de todos los productos en orden de catálogo
func (c *Catalog) All() []models.Product {
	return append([]models.Product(nil), c.products...)
}

func (c *Catalog) ByID(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Related retorna hasta n productos de la misma categoría
func (c *Catalog) Related(id string, n int) []models.Product {
	p, ok := c.ByID(id)
	if !ok {
		return []models.Product{}
	}
	out := make([]models.Product, 0)
	if n < 1 {
		return out
	}
	for _, other := range c.products {
		if len(out) >= n {
			break
		}
		if other.ID != p.ID && other.Category == p.Category {
			out = append(out, other)
		}
	}
	return out
}

// Featured retorna los más vendidos ordenados por rating
func (c *Catalog) Featured(n int) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.products {
		if p.IsBestSeller {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return limit(out, n)
}

func (c *Catalog) NewArrivals(n int) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range c.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return limit(out, n)
}

// PriceBounds retorna el precio mínimo y máximo del catálogo
func (c *Catalog) PriceBounds() (lo, hi int) {
	for i, p := range c.products {
		if i == 0 || p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}
	return lo, hi
}

func limit(products []models.Product, n int) []models.Product {
	if n > 0 && len(products) > n {
		return products[:n]
	}
	return products
}
