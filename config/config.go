// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Tüm ayarlar tek bir Config struct'ında toplanır — her yerde ayrı ayrı
// os.Getenv() çağırmak yerine tek bir nesne taşınır. Config startup'ta bir kez
// yüklenir, sonrasında immutable'dır; hiçbir katman env'e doğrudan dokunmaz.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — Single Responsibility: her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/kimlik.db)
}

// JWTConfig, token imzalama ayarları.
//
// Access ve refresh için AYRI secret kullanılır — bu bir güvenlik invariant'ıdır:
// secret'lardan biri sızsa bile diğer token sınıfı taklit edilemez.
type JWTConfig struct {
	AccessSecret        string // Access token imzalama anahtarı — GİZLİ TUTULMALI
	RefreshSecret       string // Refresh token imzalama anahtarı — GİZLİ TUTULMALI
	AccessExpirySeconds int    // Saniye cinsinden (varsayılan: 300)
	RefreshExpiryDays   int    // Gün cinsinden (varsayılan: 30)
}

// AuthConfig, kimlik doğrulama ayarları.
type AuthConfig struct {
	BcryptCost int // Password hash work factor (varsayılan: 13)
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_SECONDS", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_SECONDS: %w", err)
	}

	refreshExpiry, err := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRY_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_EXPIRY_DAYS: %w", err)
	}

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "13"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Secret'lar zorunlu — default değer YOK. Varsayılan bir secret ile çalışan
	// bir auth gateway'in imzaları herkes tarafından taklit edilebilir.
	accessSecret := getEnv("JWT_ACCESS_SECRET", "")
	if accessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET environment variable is required")
	}

	refreshSecret := getEnv("JWT_REFRESH_SECRET", "")
	if refreshSecret == "" {
		return nil, fmt.Errorf("JWT_REFRESH_SECRET environment variable is required")
	}

	if accessSecret == refreshSecret {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be different")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/kimlik.db"),
		},
		JWT: JWTConfig{
			AccessSecret:        accessSecret,
			RefreshSecret:       refreshSecret,
			AccessExpirySeconds: accessExpiry,
			RefreshExpiryDays:   refreshExpiry,
		},
		Auth: AuthConfig{
			BcryptCost: bcryptCost,
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
