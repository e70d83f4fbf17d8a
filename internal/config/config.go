package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultCatalogURL   = "https://solestore.ng/assets/styles/products.json"
	defaultStoragePath  = "solestore.db"
	defaultStoreContact = "2348012345678"
	defaultPageSize     = 4
)

type Config struct {
	AppEnv       string
	CatalogURL   string
	StoragePath  string
	StoreContact string
	PageSize     int
}

// LoadConfig reads configuration from the environment, with a .env file
// as fallback. Every value has a working default; the storefront must
// keep running even with nothing configured.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv:       os.Getenv("APP_ENV"),
		CatalogURL:   getEnv("CATALOG_URL", defaultCatalogURL),
		StoragePath:  getEnv("STORAGE_PATH", defaultStoragePath),
		StoreContact: getEnv("STORE_CONTACT", defaultStoreContact),
		PageSize:     getEnvInt("PAGE_SIZE", defaultPageSize),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
