package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"time"
)

type Config struct {
	Port          string
	MySQLDSN      string
	PGDSN         string
	UploadDir     string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	TokenTTL      time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8000"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:pass@tcp(mysql:3306)/protein_store?parseTime=true"),
		PGDSN:         os.Getenv("PG_DSN"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "protein123"),
		TokenTTL:      8 * time.Hour,
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set; generating a random secret. Admin sessions will not survive a restart. Set JWT_SECRET in production.")
		cfg.JWTSecret = randomSecret(32)
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Printf("invalid TOKEN_TTL %q, keeping default %s", ttl, cfg.TokenTTL)
		} else {
			cfg.TokenTTL = d
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func randomSecret(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("reading random bytes: %v", err)
	}
	return base64.StdEncoding.EncodeToString(b)
}
