package models

type ProductCategory string

const (
	CategoryMen   ProductCategory = "men"
	CategoryWomen ProductCategory = "women"
	CategoryKids  ProductCategory = "kids"
)

// Valid indica si la categoría es una de las conocidas
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids:
		return true
	}
	return false
}

type ProductType string

const (
	TypePowerGlasses ProductType = "power-glasses"
	TypeSunglasses   ProductType = "sunglasses"
)

func (t ProductType) Valid() bool {
	return t == TypePowerGlasses || t == TypeSunglasses
}

// Product representa un producto del catálogo estático
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      ProductCategory `json:"category"`
	Type          ProductType     `json:"type"`
	Price         int             `json:"price"`
	OriginalPrice *int            `json:"original_price,omitempty"`
	Images        []string        `json:"images"`
	Colors        []string        `json:"colors"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	IsNew         bool            `json:"is_new"`
	IsBestSeller  bool            `json:"is_best_seller"`
}

// Image retorna la primera imagen o "" si no tiene
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasColor indica si el color está disponible para el producto
func (p Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// DiscountPercent calcula el descuento respecto al precio original
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price || *p.OriginalPrice == 0 {
		return 0
	}
	return (*p.OriginalPrice - p.Price) * 100 / *p.OriginalPrice
}
