package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"go.etcd.io/bbolt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"eyewear-store/internal/config"
	"eyewear-store/internal/kvstore"
)

const connectTimeout = 10 * time.Second

// ConnectMongo abre el cliente de MongoDB y verifica la conexión
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI is required for the mongo store driver")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// NewRedis crea el cliente de Redis
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// OpenBolt abre (o crea) el archivo de bbolt, creando el directorio si falta
func OpenBolt(path string) (*bbolt.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create bolt dir: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	return db, nil
}

// OpenBackend selecciona el backend clave-valor según STORE_DRIVER
func OpenBackend(ctx context.Context, cfg *config.Config) (kvstore.Backend, error) {
	switch cfg.StoreDriver {
	case "memory":
		return kvstore.NewMemoryBackend(), nil

	case "bolt", "":
		db, err := OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		backend, err := kvstore.NewBoltBackend(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return backend, nil

	case "mongo":
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		collection := client.Database(cfg.MongoDB).Collection(cfg.MongoCollection)
		return kvstore.NewMongoBackend(collection), nil

	case "redis":
		rdb := NewRedis(cfg.RedisAddr)
		if err := rdb.Ping(ctx).Err(); err != nil {
			// el shim tolera un backend caído; solo avisamos
			zap.L().Warn("redis not reachable, storage will fall back to defaults",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		return kvstore.NewRedisBackend(rdb), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
