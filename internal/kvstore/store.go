package kvstore

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const probeKey = "__storage_probe__"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store serializa valores JSON sobre un Backend. Nunca devuelve errores:
// si el backend falla o el contenido no se puede decodificar, las lecturas
// devuelven el valor por defecto y las escrituras reportan false.
type Store struct {
	backend Backend
	prefix  string
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Namespace devuelve una vista del store cuyas claves quedan bajo ns
func (s *Store) Namespace(ns string) *Store {
	return &Store{backend: s.backend, prefix: s.prefix + ns + ":"}
}

// Scope devuelve la vista de un perfil de visitante
func (s *Store) Scope(profile string) *Store {
	return s.Namespace("profile:" + profile)
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// Lookup decodifica la clave en T; ok es false si falta o no es válida
func Lookup[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var zero T
	if s == nil || s.backend == nil {
		return zero, false
	}

	raw, err := s.backend.Load(ctx, s.key(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			zap.L().Warn("kvstore: load failed", zap.String("key", s.key(key)), zap.Error(err))
		}
		return zero, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		zap.L().Debug("kvstore: discarding malformed value", zap.String("key", s.key(key)), zap.Error(err))
		return zero, false
	}
	return value, true
}

// Get devuelve el valor guardado en key o def
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	if value, ok := Lookup[T](ctx, s, key); ok {
		return value
	}
	return def
}

func (s *Store) Set(ctx context.Context, key string, value any) bool {
	if s == nil || s.backend == nil {
		return false
	}

	raw, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("kvstore: marshal failed", zap.String("key", s.key(key)), zap.Error(err))
		return false
	}
	if err := s.backend.Save(ctx, s.key(key), raw); err != nil {
		zap.L().Warn("kvstore: save failed", zap.String("key", s.key(key)), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) Remove(ctx context.Context, key string) {
	if s == nil || s.backend == nil {
		return
	}
	if err := s.backend.Delete(ctx, s.key(key)); err != nil {
		zap.L().Warn("kvstore: delete failed", zap.String("key", s.key(key)), zap.Error(err))
	}
}

// Clear elimina todas las claves del namespace actual
func (s *Store) Clear(ctx context.Context) {
	if s == nil || s.backend == nil {
		return
	}
	if err := s.backend.DeletePrefix(ctx, s.prefix); err != nil {
		zap.L().Warn("kvstore: clear failed", zap.String("prefix", s.prefix), zap.Error(err))
	}
}

// Available prueba escribir y borrar una clave de sondeo
func (s *Store) Available(ctx context.Context) bool {
	if s == nil || s.backend == nil {
		return false
	}
	if err := s.backend.Save(ctx, s.key(probeKey), []byte(`"probe"`)); err != nil {
		return false
	}
	return s.backend.Delete(ctx, s.key(probeKey)) == nil
}
