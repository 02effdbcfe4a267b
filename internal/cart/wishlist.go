package cart

import (
	"context"

	"eyewear-store/internal/kvstore"
)

const KeyWishlist = "wishlist"

// Wishlist es la lista de ids de producto favoritos de un perfil
type Wishlist struct {
	store *kvstore.Store
}

func NewWishlist(store *kvstore.Store) *Wishlist {
	return &Wishlist{store: store}
}

func (w *Wishlist) IDs(ctx context.Context) []string {
	ids := kvstore.Get(ctx, w.store, KeyWishlist, []string{})
	if ids == nil {
		return []string{}
	}
	return ids
}

func (w *Wishlist) Contains(ctx context.Context, id string) bool {
	for _, existing := range w.IDs(ctx) {
		if existing == id {
			return true
		}
	}
	return false
}

// Toggle agrega el id si no está o lo quita si ya está; retorna true si quedó agregado
func (w *Wishlist) Toggle(ctx context.Context, id string) bool {
	if w.Contains(ctx, id) {
		w.Remove(ctx, id)
		return false
	}
	w.store.Set(ctx, KeyWishlist, append(w.IDs(ctx), id))
	return true
}

func (w *Wishlist) Remove(ctx context.Context, id string) {
	ids := w.IDs(ctx)
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) != len(ids) {
		w.store.Set(ctx, KeyWishlist, kept)
	}
}

func (w *Wishlist) Clear(ctx context.Context) {
	w.store.Remove(ctx, KeyWishlist)
}
