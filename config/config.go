// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config startup'ta BİR KEZ yüklenir ve ihtiyacı olan bileşenlere inject
// edilir — hiçbir code path request başına os.Getenv() çağırmaz.
// Zorunlu bir değer eksikse Load() hata döner ve process hiç başlamaz:
// misconfiguration ilk request'te değil, startup'ta patlar.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, veritabanı bağlantı ayarları.
type DatabaseConfig struct {
	URL string // SQLite DSN (ör: ./data/kimlik.db) — zorunlu
}

// JWTConfig, token imzalama ayarları.
type JWTConfig struct {
	Secret string // İmzalama anahtarı — GİZLİ TUTULMALI, zorunlu
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için);
// production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	databaseURL := getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	secretKey := getEnv("SECRET_KEY", "")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			URL: databaseURL,
		},
		JWT: JWTConfig{
			Secret: secretKey,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
