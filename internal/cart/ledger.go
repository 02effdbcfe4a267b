package cart

import (
	"context"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

const KeyCart = "cart"

// MaxQuantity es el tope por línea; las sumas se saturan en este valor
const MaxQuantity = 99

// ShippingPolicy define el envío gratis a partir de FreeAbove (estrictamente mayor)
type ShippingPolicy struct {
	FreeAbove int
	Fee       int
}

var DefaultShipping = ShippingPolicy{FreeAbove: 999, Fee: 99}

// ComputeTotals calcula subtotal, envío y total de las líneas
func ComputeTotals(lines []models.CartLine, policy ShippingPolicy) models.CartTotals {
	subtotal := 0
	for _, l := range lines {
		subtotal += l.LineTotal()
	}

	shipping := policy.Fee
	if subtotal > policy.FreeAbove {
		shipping = 0
	}
	return models.CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// Ledger es el carrito de un perfil, persistido completo en cada cambio.
// No notifica cambios: el llamador vuelve a pedir Totals tras mutar.
type Ledger struct {
	store  *kvstore.Store
	policy ShippingPolicy
}

func NewLedger(store *kvstore.Store, policy ShippingPolicy) *Ledger {
	return &Ledger{store: store, policy: policy}
}

func (l *Ledger) List(ctx context.Context) []models.CartLine {
	lines := kvstore.Get(ctx, l.store, KeyCart, []models.CartLine{})
	if lines == nil {
		return []models.CartLine{}
	}
	return lines
}

// Add suma la cantidad si ya existe (id, color); si no, agrega al final
func (l *Ledger) Add(ctx context.Context, line models.CartLine) []models.CartLine {
	line.Quantity = clampQuantity(line.Quantity)

	lines := l.List(ctx)
	if i := indexOf(lines, line.ID, line.Color); i >= 0 {
		// ambos sumandos ya están en [1, MaxQuantity], la suma no desborda
		lines[i].Quantity = clampQuantity(clampQuantity(lines[i].Quantity) + line.Quantity)
	} else {
		lines = append(lines, line)
	}
	l.store.Set(ctx, KeyCart, lines)
	return lines
}

// SetQuantity ignora cantidades menores a 1 y recorta las mayores a MaxQuantity
func (l *Ledger) SetQuantity(ctx context.Context, id int, color string, quantity int) []models.CartLine {
	lines := l.List(ctx)
	if quantity < 1 {
		return lines
	}

	i := indexOf(lines, id, color)
	if i < 0 {
		return lines
	}
	lines[i].Quantity = clampQuantity(quantity)
	l.store.Set(ctx, KeyCart, lines)
	return lines
}

func (l *Ledger) Remove(ctx context.Context, id int, color string) []models.CartLine {
	lines := l.List(ctx)
	i := indexOf(lines, id, color)
	if i < 0 {
		return lines
	}
	lines = append(lines[:i], lines[i+1:]...)
	l.store.Set(ctx, KeyCart, lines)
	return lines
}

func (l *Ledger) Clear(ctx context.Context) {
	l.store.Remove(ctx, KeyCart)
}

func (l *Ledger) Totals(ctx context.Context) models.CartTotals {
	return ComputeTotals(l.List(ctx), l.policy)
}

// Count retorna la suma de cantidades
func (l *Ledger) Count(ctx context.Context) int {
	n := 0
	for _, line := range l.List(ctx) {
		n += line.Quantity
	}
	return n
}

func clampQuantity(q int) int {
	switch {
	case q < 1:
		return 1
	case q > MaxQuantity:
		return MaxQuantity
	}
	return q
}

func indexOf(lines []models.CartLine, id int, color string) int {
	for i, line := range lines {
		if line.ID == id && line.Color == color {
			return i
		}
	}
	return -1
}
