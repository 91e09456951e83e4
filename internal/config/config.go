package config

import "os"

type Config struct {
	Port       string
	BackendURL string
	PublicURL  string
	RedisAddr  string
	DataDir    string
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8090"),
		BackendURL: getEnv("BACKEND_URL", "http://localhost:8080"),
		PublicURL:  getEnv("PUBLIC_URL", "http://localhost:8090"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		DataDir:    getEnv("DATA_DIR", "./data"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
