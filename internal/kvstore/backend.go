package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound se devuelve cuando la clave no existe en el backend
var ErrNotFound = errors.New("kvstore: key not found")

// Backend es el puerto de almacenamiento clave-valor sobre el que se apoya Store.
// Las implementaciones deben ser seguras para uso concurrente.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// DeletePrefix elimina todas las claves que empiecen con prefix; "" borra todo
	DeletePrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
	Close() error
}
