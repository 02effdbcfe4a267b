package order

import (
	"fmt"
	"net/url"
	"strings"

	"eyewear-store/internal/models"
)

const closingPrompt = "Please confirm availability and delivery details. Thank you!"

// Formatter arma los mensajes de pedido que se envían por WhatsApp
type Formatter struct {
	Currency string
}

func (f Formatter) money(amount int) string {
	return fmt.Sprintf("%s%d", f.Currency, amount)
}

func (f Formatter) shipping(amount int) string {
	if amount == 0 {
		return "FREE"
	}
	return f.money(amount)
}

// Cart arma el mensaje del carrito completo
func (f Formatter) Cart(lines []models.CartLine, totals models.CartTotals) string {
	var b strings.Builder
	b.WriteString("Hello! I would like to place an order:\n\n")

	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line.Name)
		fmt.Fprintf(&b, "   Color: %s\n", line.Color)
		fmt.Fprintf(&b, "   Price: %s x %d = %s\n\n", f.money(line.Price), line.Quantity, f.money(line.LineTotal()))
	}

	f.writeTotals(&b, totals)
	b.WriteString(closingPrompt)
	return b.String()
}

// Product arma el mensaje de "comprar ahora" de un solo producto
func (f Formatter) Product(p models.Product, color string, quantity int, totals models.CartTotals) string {
	var b strings.Builder
	b.WriteString("Hello! I would like to buy:\n\n")
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "Color: %s\n", color)
	fmt.Fprintf(&b, "Quantity: %d\n", quantity)
	fmt.Fprintf(&b, "Price: %s x %d = %s\n\n", f.money(p.Price), quantity, f.money(p.Price*quantity))

	f.writeTotals(&b, totals)
	b.WriteString(closingPrompt)
	return b.String()
}

// Enquiry arma una consulta sobre un producto
func (f Formatter) Enquiry(p models.Product) string {
	return fmt.Sprintf("Hello! I have a question about %s (%s, ID %s).", p.Name, f.money(p.Price), p.ID)
}

func (f Formatter) writeTotals(b *strings.Builder, totals models.CartTotals) {
	fmt.Fprintf(b, "Subtotal: %s\n", f.money(totals.Subtotal))
	fmt.Fprintf(b, "Shipping: %s\n", f.shipping(totals.Shipping))
	fmt.Fprintf(b, "Total: %s\n\n", f.money(totals.Total))
}

// Link arma el deep link base/<teléfono>?text=<mensaje>
func Link(baseURL, phone, message string) string {
	return fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(baseURL, "/"), Digits(phone), Encode(message))
}

// Encode aplica percent-encoding estándar (espacios como %20)
func Encode(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// Digits deja solo los dígitos del número internacional
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
