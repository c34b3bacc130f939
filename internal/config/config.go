package config

import "os"

type Config struct {
	Addr         string
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string
}

func Load() Config {
	addr := os.Getenv("CYRA_SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
}
