package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Almacenamiento clave-valor: memory, bolt, mongo o redis
	StoreDriver     string
	BoltPath        string
	MongoURI        string
	MongoDB         string
	MongoCollection string
	RedisAddr       string

	AdminUsername string
	AdminPassword string
	JWTSecret     string
	SessionTTL    time.Duration
	LoginDelay    time.Duration

	WhatsAppNumber  string
	WhatsAppBaseURL string

	FreeShippingAbove int
	ShippingFee       int
	Currency          string

	UploadDelay    time.Duration
	UploadMaxBytes int64
	UploadBaseURL  string

	CacheTTL time.Duration

	LogMode string
	LogFile string
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		StoreDriver:     getEnv("STORE_DRIVER", "bolt"),
		BoltPath:        getEnv("BOLT_PATH", "data/store.db"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "eyewearStore"),
		MongoCollection: getEnv("MONGO_COLLECTION", "kv"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "manshu@123"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		LoginDelay:    getDuration("LOGIN_DELAY", 0),

		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "919876543210"),
		WhatsAppBaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),

		FreeShippingAbove: getInt("FREE_SHIPPING_ABOVE", 999),
		ShippingFee:       getInt("SHIPPING_FEE", 99),
		Currency:          getEnv("CURRENCY", "₹"),

		UploadDelay:    getDuration("UPLOAD_DELAY", time.Second),
		UploadMaxBytes: int64(getInt("UPLOAD_MAX_BYTES", 5<<20)),
		UploadBaseURL:  getEnv("UPLOAD_BASE_URL", "https://cdn.example.com"),

		CacheTTL: getDuration("CACHE_TTL", 2*time.Minute),

		LogMode: getEnv("LOG_MODE", "development"),
		LogFile: getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️ Invalid integer for %s: %q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("⚠️ Invalid duration for %s: %q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
