package catalog

import (
	"sort"
	"strings"

	"eyewear-store/internal/models"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

// ParseSortKey devuelve SortNone para valores desconocidos
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortName, SortPriceAsc, SortPriceDesc, SortRating:
		return k
	}
	return SortNone
}

// Query agrupa los filtros, el orden y la paginación de un listado
type Query struct {
	Search   string
	Category models.ProductCategory
	Type     models.ProductType
	MinPrice int
	MaxPrice int // 0 = sin límite
	Sort     SortKey
	Page     int
	PageSize int
}

type Page struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// Apply filtra, ordena y pagina
func (q Query) Apply(products []models.Product) Page {
	return Paginate(Sort(Filter(products, q), q.Sort), q.Page, q.PageSize)
}

// Filter retorna los productos que cumplen todos los filtros de q, en el mismo orden
func Filter(products []models.Product, q Query) []models.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Type != "" && p.Type != q.Type {
			continue
		}
		if p.Price < q.MinPrice {
			continue
		}
		if q.MaxPrice > 0 && p.Price > q.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort ordena una copia de forma estable
func Sort(products []models.Product, key SortKey) []models.Product {
	out := append([]models.Product(nil), products...)

	var less func(i, j int) bool
	switch key {
	case SortName:
		less = func(i, j int) bool { return out[i].Name < out[j].Name }
	case SortPriceAsc:
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case SortPriceDesc:
		less = func(i, j int) bool { return out[i].Price > out[j].Price }
	case SortRating:
		less = func(i, j int) bool { return out[i].Rating > out[j].Rating }
	default:
		return out
	}

	sort.SliceStable(out, less)
	return out
}

// Paginate corta la página pedida; page y pageSize fuera de rango usan los defaults
func Paginate(products []models.Product, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	total := len(products)
	totalPages := (total + pageSize - 1) / pageSize

	// page-1 >= totalPages antes de multiplicar: un page enorme no desborda
	start := total
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Products:   append(make([]models.Product, 0, end-start), products[start:end]...),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
