package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eyewear-store/internal/cart"
	"eyewear-store/internal/catalog"
	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/middleware"
	"eyewear-store/internal/models"
)

type CartHandler struct {
	root     *kvstore.Store
	catalog  *catalog.Catalog
	checkout *Checkout
}

func NewCartHandler(root *kvstore.Store, cat *catalog.Catalog, checkout *Checkout) *CartHandler {
	return &CartHandler{root: root, catalog: cat, checkout: checkout}
}

type addItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"gte=0,lte=99"`
}

type quantityRequest struct {
	Color    string `json:"color" binding:"required"`
	Quantity int    `json:"quantity" binding:"lte=99"`
}

func (h *CartHandler) ledger(c *gin.Context) *cart.Ledger {
	return cart.NewLedger(middleware.ProfileStore(c, h.root), h.checkout.policy(c.Request.Context()))
}

func (h *CartHandler) wishlist(c *gin.Context) *cart.Wishlist {
	return cart.NewWishlist(middleware.ProfileStore(c, h.root))
}

func (h *CartHandler) respond(c *gin.Context, status int, ledger *cart.Ledger) {
	ctx := c.Request.Context()
	c.JSON(status, gin.H{
		"items":  ledger.List(ctx),
		"totals": ledger.Totals(ctx),
		"count":  ledger.Count(ctx),
	})
}

// GetCart retorna líneas, totales y cantidad de items
func (h *CartHandler) GetCart(c *gin.Context) {
	h.respond(c, http.StatusOK, h.ledger(c))
}

// AddItem agrega un producto tomando nombre, precio e imagen del catálogo
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	product, ok := h.catalog.ByID(strconv.Itoa(req.ProductID))
	if !ok {
		notFound(c, "product not found")
		return
	}
	if req.Color == "" && len(product.Colors) > 0 {
		req.Color = product.Colors[0]
	}
	if !product.HasColor(req.Color) {
		badRequest(c, "color not available for this product")
		return
	}

	ledger := h.ledger(c)
	ledger.Add(c.Request.Context(), models.CartLine{
		ID:       req.ProductID,
		Name:     product.Name,
		Price:    product.Price,
		Image:    product.Image(),
		Quantity: req.Quantity,
		Color:    req.Color,
	})
	h.respond(c, http.StatusOK, ledger)
}

// UpdateQuantity ignora cantidades menores a 1 sin devolver error
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid product ID")
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ledger := h.ledger(c)
	ledger.SetQuantity(c.Request.Context(), id, req.Color, req.Quantity)
	h.respond(c, http.StatusOK, ledger)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid product ID")
		return
	}

	ledger := h.ledger(c)
	ledger.Remove(c.Request.Context(), id, c.Query("color"))
	h.respond(c, http.StatusOK, ledger)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	ledger := h.ledger(c)
	ledger.Clear(c.Request.Context())
	h.respond(c, http.StatusOK, ledger)
}

func (h *CartHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger(c).Totals(c.Request.Context()))
}

// Checkout arma el mensaje y el link de WhatsApp del carrito; no cobra nada
func (h *CartHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	ledger := h.ledger(c)

	lines := ledger.List(ctx)
	if len(lines) == 0 {
		badRequest(c, "cart is empty")
		return
	}

	totals := ledger.Totals(ctx)
	message := h.checkout.formatter(ctx).Cart(lines, totals)
	link := h.checkout.link(ctx, message)

	zap.L().Info("checkout link generated",
		zap.String("profile", middleware.ProfileID(c)),
		zap.Int("lines", len(lines)),
		zap.Int("total", totals.Total))

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"link":    link,
		"totals":  totals,
	})
}

// GetWishlist retorna los ids y los productos que siguen en catálogo
func (h *CartHandler) GetWishlist(c *gin.Context) {
	ids := h.wishlist(c).IDs(c.Request.Context())
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := h.catalog.ByID(id); ok {
			products = append(products, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"ids": ids, "products": products})
}

func (h *CartHandler) ToggleWishlist(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.ByID(id); !ok {
		notFound(c, "product not found")
		return
	}

	ctx := c.Request.Context()
	wl := h.wishlist(c)
	added := wl.Toggle(ctx, id)
	c.JSON(http.StatusOK, gin.H{"added": added, "ids": wl.IDs(ctx)})
}

func (h *CartHandler) RemoveWishlist(c *gin.Context) {
	ctx := c.Request.Context()
	wl := h.wishlist(c)
	wl.Remove(ctx, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ids": wl.IDs(ctx)})
}
