package config

import (
	"os"
	"strings"
)

type Config struct {
	Port                string
	MongoURI            string
	MongoDBName         string
	JWTSecret           string
	AllowedOrigins      []string
	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "3000"),
		MongoURI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:         getEnv("MONGODB_NAME", "products-management"),
		JWTSecret:           getEnv("JWT_SECRET", "Products-Management"),
		AllowedOrigins:      parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

func parseOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
