package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lacarta/lacarta-backend/internal/lifecycle"
	"github.com/lacarta/lacarta-backend/internal/modules/auth"
	"github.com/lacarta/lacarta-backend/internal/modules/catalog"
	"github.com/lacarta/lacarta-backend/internal/modules/combo"
	"github.com/lacarta/lacarta-backend/internal/modules/offer"
	"github.com/lacarta/lacarta-backend/internal/modules/rating"
	"github.com/lacarta/lacarta-backend/internal/modules/sales"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	log.Println("connected to the database")

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// The role cache is optional: without Redis every role lookup falls
	// through to the user store.
	var roleCache *auth.RoleCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		roleCache, err = auth.NewRoleCache(redisURL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer roleCache.Close()
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, roleCache, secret)
	authMW := auth.NewMiddleware(authService, secret)
	auth.NewHandler(authService).RegisterRoutes(router)
	user.NewHandler(userService).RegisterRoutes(router, authMW.RequireAdminLevel)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router, authMW)

	// ── Promotions ──────────────────────────────────────────
	offerRepo := offer.NewPostgresRepository(db)
	offerService := offer.NewService(offerRepo)
	offer.NewHandler(offerService).RegisterRoutes(router, authMW)

	comboRepo := combo.NewPostgresRepository(db)
	comboService := combo.NewService(comboRepo)
	combo.NewHandler(comboService).RegisterRoutes(router, authMW)

	// ── Sales & Ratings ─────────────────────────────────────
	salesRepo := sales.NewPostgresRepository(db)
	salesService := sales.NewService(salesRepo)
	sales.NewHandler(salesService).RegisterRoutes(router, authMW)

	ratingRepo := rating.NewPostgresRepository(db)
	ratingService := rating.NewService(ratingRepo)
	rating.NewHandler(ratingService).RegisterRoutes(router, authMW)

	// ── Offer lifecycle engine ──────────────────────────────
	// Runs against the in-process offer service and keeps the board's
	// working set free of expired-but-active offers.
	engine := lifecycle.NewEngine(offerService, lifecycle.EngineConfig{
		OnError: func(err error) { log.Printf("lifecycle: %v", err) },
	})
	if err := engine.Start(context.Background()); err != nil {
		log.Printf("lifecycle: initial refresh: %v", err)
	}
	defer engine.Stop()
	lifecycle.NewHandler(engine.Store, engine.Searcher).RegisterRoutes(router, authMW)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("lacarta API server starting on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}
