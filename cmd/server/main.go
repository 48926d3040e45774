package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/shariqrahman/Products-Management/internal/auth"
	"github.com/shariqrahman/Products-Management/internal/config"
	"github.com/shariqrahman/Products-Management/internal/database"
	"github.com/shariqrahman/Products-Management/internal/handlers"
	"github.com/shariqrahman/Products-Management/internal/routes"
	"github.com/shariqrahman/Products-Management/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	log.Printf("Connecting to MongoDB...")
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer db.Disconnect()
	log.Println("✅ Connected to MongoDB")

	// Unique email/phone indexes back up the application-level checks.
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureUserIndexes(indexCtx, db); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure user indexes: %v", err)
	} else {
		log.Println("✅ MongoDB user indexes ensured")
	}
	cancel()

	var uploader services.Uploader
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		svc, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "profiles")
		if err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("File uploads will not be available")
		} else {
			uploader = svc
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. File uploads will not be available")
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, auth.SessionDuration)
	users := handlers.NewUserHandler(services.NewUserStore(db), uploader, tokens)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, users, tokens)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /register")
	log.Println("  POST /login")
	log.Println("  GET  /user/{userID}/profile")
	log.Println("  PUT  /user/{userID}/profile")

	log.Printf("🚀 Server running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
