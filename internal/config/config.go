// Package config collects the server's environment-driven settings.
package config

import (
	"os"
	"strings"
)

// Config holds everything the serve command needs to start.
type Config struct {
	HTTPAddr string
	DBPath   string

	JWTSecret string
	AdminUser string
	AdminPass string

	CORSOrigins []string
}

// FromEnv reads configuration from the environment, applying local
// development defaults for anything unset.
func FromEnv() Config {
	addr := os.Getenv("FACTORY_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := os.Getenv("FACTORY_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	user := os.Getenv("FACTORY_ADMIN_USER")
	if user == "" {
		user = "admin"
	}
	pass := os.Getenv("FACTORY_ADMIN_PASS")
	if pass == "" {
		pass = "admin"
	}

	origins := splitCSV(os.Getenv("FACTORY_CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return Config{
		HTTPAddr:    addr,
		DBPath:      os.Getenv("FACTORY_DB"),
		JWTSecret:   secret,
		AdminUser:   user,
		AdminPass:   pass,
		CORSOrigins: origins,
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
