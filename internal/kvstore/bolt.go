package kvstore

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var defaultBucket = []byte("storefront")

// BoltBackend persiste las claves en un único bucket de bbolt
type BoltBackend struct {
	db     *bbolt.DB
	bucket []byte
}

func NewBoltBackend(db *bbolt.DB) (*BoltBackend, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(defaultBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltBackend{db: db, bucket: defaultBucket}, nil
}

func (b *BoltBackend) Load(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(b.bucket).Get([]byte(key))
		if value == nil {
			return ErrNotFound
		}
		// el slice solo es válido dentro de la transacción
		out = append([]byte(nil), value...)
		return nil
	})
	return out, err
}

func (b *BoltBackend) Save(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Put([]byte(key), value)
	})
}

func (b *BoltBackend) Delete(_ context.Context, key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(b.bucket).Delete([]byte(key))
	})
}

func (b *BoltBackend) DeletePrefix(_ context.Context, prefix string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(b.bucket)
		p := []byte(prefix)

		var keys [][]byte
		c := bucket.Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BoltBackend) Ping(_ context.Context) error {
	return b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(b.bucket) == nil {
			return fmt.Errorf("bucket %s missing", b.bucket)
		}
		return nil
	})
}

func (b *BoltBackend) Close() error {
	return b.db.Close()
}
