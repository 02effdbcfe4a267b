package admin

import (
	"context"

	"eyewear-store/internal/kvstore"
	"eyewear-store/internal/models"
)

// SettingsStore guarda el objeto de ajustes; defaults viene de la configuración
type SettingsStore struct {
	store    *kvstore.Store
	defaults models.Settings
}

func NewSettings(store *kvstore.Store, defaults models.Settings) *SettingsStore {
	return &SettingsStore{store: store, defaults: defaults}
}

func (s *SettingsStore) Get(ctx context.Context) models.Settings {
	return kvstore.Get(ctx, s.store, KeySettings, s.defaults)
}

func (s *SettingsStore) Save(ctx context.Context, settings models.Settings) bool {
	return s.store.Set(ctx, KeySettings, settings)
}

// Reset vuelve a los valores por defecto
func (s *SettingsStore) Reset(ctx context.Context) models.Settings {
	s.store.Remove(ctx, KeySettings)
	return s.defaults
}

func (s *SettingsStore) Defaults() models.Settings {
	return s.defaults
}
