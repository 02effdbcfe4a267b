package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eyewear-store/internal/admin"
	"eyewear-store/internal/cart"
	"eyewear-store/internal/order"
)

// Checkout agrupa lo que hace falta para armar links de WhatsApp a partir de los ajustes
type Checkout struct {
	Settings *admin.SettingsStore
	BaseURL  string
}

func (co *Checkout) policy(ctx context.Context) cart.ShippingPolicy {
	s := co.Settings.Get(ctx)
	return cart.ShippingPolicy{FreeAbove: s.FreeShippingAbove, Fee: s.ShippingFee}
}

func (co *Checkout) formatter(ctx context.Context) order.Formatter {
	return order.Formatter{Currency: co.Settings.Get(ctx).Currency}
}

func (co *Checkout) link(ctx context.Context, message string) string {
	return order.Link(co.BaseURL, co.Settings.Get(ctx).WhatsAppNumber, message)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// queryInt lee un entero del query string; fallback si falta o es inválido
func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
