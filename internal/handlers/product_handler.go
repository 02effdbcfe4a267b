package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"eyewear-store/internal/admin"
	"eyewear-store/internal/cache"
	"eyewear-store/internal/cart"
	"eyewear-store/internal/catalog"
	"eyewear-store/internal/models"
)

// SiteCachePrefix agrupa las respuestas que dependen de datos del panel
const SiteCachePrefix = "site:"

type ProductHandler struct {
	catalog    *catalog.Catalog
	cache      *cache.Cache
	reviews    *admin.Reviews
	categories *admin.Categories
	checkout   *Checkout
}

func NewProductHandler(cat *catalog.Catalog, c *cache.Cache, reviews *admin.Reviews, categories *admin.Categories, checkout *Checkout) *ProductHandler {
	return &ProductHandler{
		catalog:    cat,
		cache:      c,
		reviews:    reviews,
		categories: categories,
		checkout:   checkout,
	}
}

// ListProducts lista productos con filtros, orden y paginación (con caché)
func (h *ProductHandler) ListProducts(c *gin.Context) {
	q := catalog.Query{
		Search:   c.Query("q"),
		Category: models.ProductCategory(c.Query("category")),
		Type:     models.ProductType(c.Query("type")),
		MinPrice: queryInt(c, "min_price", 0),
		MaxPrice: queryInt(c, "max_price", 0),
		Sort:     catalog.ParseSortKey(c.Query("sort")),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", catalog.DefaultPageSize),
	}

	if q.Category != "" && !q.Category.Valid() {
		badRequest(c, "category must be one of men, women, kids")
		return
	}
	if q.Type != "" && !q.Type.Valid() {
		badRequest(c, "type must be power-glasses or sunglasses")
		return
	}
	if q.MinPrice < 0 || q.MaxPrice < 0 {
		badRequest(c, "min_price and max_price cannot be negative")
		return
	}
	if q.MaxPrice > 0 && q.MinPrice > q.MaxPrice {
		badRequest(c, "min_price cannot be greater than max_price")
		return
	}

	cacheKey := fmt.Sprintf(
		"catalog:list:q:%s_cat:%s_type:%s_price:%d-%d_sort:%s_p%d_s%d",
		q.Search, q.Category, q.Type, q.MinPrice, q.MaxPrice, q.Sort, q.Page, q.PageSize,
	)
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	page := q.Apply(h.catalog.All())
	h.cache.Set(cacheKey, page)
	c.JSON(http.StatusOK, page)
}

// GetProduct obtiene un producto por ID con sus reseñas aprobadas
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		notFound(c, "product not found")
		return
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"product":          product,
		"discount_percent": product.DiscountPercent(),
		"reviews":          h.reviews.Approved(ctx, product.Name),
	})
}

func (h *ProductHandler) RelatedProducts(c *gin.Context) {
	if _, ok := h.catalog.ByID(c.Param("id")); !ok {
		notFound(c, "product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.Related(c.Param("id"), queryInt(c, "limit", 4))})
}

// Highlights retorna destacados y novedades para la portada
func (h *ProductHandler) Highlights(c *gin.Context) {
	lo, hi := h.catalog.PriceBounds()
	c.JSON(http.StatusOK, gin.H{
		"featured":     h.catalog.Featured(4),
		"new_arrivals": h.catalog.NewArrivals(4),
		"price_range":  gin.H{"min": lo, "max": hi},
	})
}

// BuyNow arma el link de WhatsApp para comprar un solo producto
func (h *ProductHandler) BuyNow(c *gin.Context) {
	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		notFound(c, "product not found")
		return
	}

	color := c.Query("color")
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}
	if !product.HasColor(color) {
		badRequest(c, "color not available for this product")
		return
	}
	qty := queryInt(c, "qty", 1)
	if qty < 1 || qty > cart.MaxQuantity {
		badRequest(c, fmt.Sprintf("qty must be between 1 and %d", cart.MaxQuantity))
		return
	}

	ctx := c.Request.Context()
	line := models.CartLine{Price: product.Price, Quantity: qty}
	totals := cart.ComputeTotals([]models.CartLine{line}, h.checkout.policy(ctx))
	message := h.checkout.formatter(ctx).Product(product, color, qty, totals)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"link":    h.checkout.link(ctx, message),
		"totals":  totals,
	})
}

// Enquiry arma el link de consulta por WhatsApp de un producto
func (h *ProductHandler) Enquiry(c *gin.Context) {
	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		notFound(c, "product not found")
		return
	}
	ctx := c.Request.Context()
	message := h.checkout.formatter(ctx).Enquiry(product)
	c.JSON(http.StatusOK, gin.H{"message": message, "link": h.checkout.link(ctx, message)})
}

// ListCategories expone las categorías administradas
func (h *ProductHandler) ListCategories(c *gin.Context) {
	if cached, found := h.cache.GetValue(SiteCachePrefix + "categories"); found {
		c.JSON(http.StatusOK, cached)
		return
	}
	body := gin.H{"categories": h.categories.Load(c.Request.Context())}
	h.cache.Set(SiteCachePrefix+"categories", body)
	c.JSON(http.StatusOK, body)
}

// ListReviews expone solo las reseñas aprobadas
func (h *ProductHandler) ListReviews(c *gin.Context) {
	ctx := c.Request.Context()
	product := c.Query("product")
	cacheKey := SiteCachePrefix + "reviews:" + product
	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}
	body := gin.H{
		"reviews":        h.reviews.Approved(ctx, product),
		"average_rating": h.reviews.AverageRating(ctx, product),
	}
	h.cache.Set(cacheKey, body)
	c.JSON(http.StatusOK, body)
}
