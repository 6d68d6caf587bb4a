package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/handlers"
	authmw "github.com/sofivanhanen/bloglist/api/v1/middleware"
	"github.com/sofivanhanen/bloglist/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to prepare schema: %v", err)
	}

	store := database.NewPG(pool, cfg.DBName)
	auth := authmw.NewAuthMiddleware(store, cfg.JWTSecret)

	userHandler := &handlers.UserHandler{Store: store}
	blogHandler := &handlers.BlogHandler{Store: store}
	loginHandler := handlers.NewLoginHandler(store, auth)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.ApiInfoHandler)

		// Registration and login are throttled per client IP
		r.With(httprate.LimitByIP(20, time.Minute)).Post("/users", userHandler.Register)
		r.With(httprate.LimitByIP(20, time.Minute)).Post("/login", loginHandler.Login)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.ListBlogs)
			r.Get("/stats", blogHandler.Stats)

			// Mutations require a resolved identity before anything
			// else runs
			r.With(auth.RequireAuth).Post("/", blogHandler.CreateBlog)
			r.With(auth.RequireAuth).Delete("/{id}", blogHandler.DeleteBlog)
		})
	})

	log.Printf("Starting server on port %s", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	if err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
