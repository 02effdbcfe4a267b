package admin

import (
	"context"
	"strings"

	"eyewear-store/internal/kvstore"
)

// Record es un registro de una tabla del panel
type Record interface {
	RecordID() string
	SearchFields() []string
}

// Table es un CRUD sobre un arreglo guardado completo en una sola clave.
// Si la clave falta (o no se puede leer) se siembra con los datos por defecto.
type Table[T Record] struct {
	store *kvstore.Store
	key   string
	seed  func() []T
}

func NewTable[T Record](store *kvstore.Store, key string, seed func() []T) *Table[T] {
	if seed == nil {
		seed = func() []T { return []T{} }
	}
	return &Table[T]{store: store, key: key, seed: seed}
}

func (t *Table[T]) Load(ctx context.Context) []T {
	items, ok := kvstore.Lookup[[]T](ctx, t.store, t.key)
	if !ok {
		items = t.seed()
		t.store.Set(ctx, t.key, items)
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Search filtra por coincidencia sin distinguir mayúsculas en los campos de búsqueda
func (t *Table[T]) Search(ctx context.Context, q string) []T {
	items := t.Load(ctx)
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range item.SearchFields() {
			if strings.Contains(strings.ToLower(field), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func (t *Table[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, item := range t.Load(ctx) {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T]) Insert(ctx context.Context, item T) []T {
	items := append(t.Load(ctx), item)
	t.store.Set(ctx, t.key, items)
	return items
}

// Update aplica fn sobre el registro id; ids inexistentes no hacen nada
func (t *Table[T]) Update(ctx context.Context, id string, fn func(*T)) (T, bool) {
	items := t.Load(ctx)
	for i := range items {
		if items[i].RecordID() == id {
			fn(&items[i])
			t.store.Set(ctx, t.key, items)
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete elimina el registro id; ids inexistentes no hacen nada
func (t *Table[T]) Delete(ctx context.Context, id string) []T {
	items := t.Load(ctx)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) != len(items) {
		t.store.Set(ctx, t.key, kept)
	}
	return kept
}
