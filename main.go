package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savora/auth"
	"savora/community"
	"savora/export"
	"savora/favorites"
	"savora/models"
	"savora/moderation"
	"savora/notify"
	"savora/ratelim"
	"savora/recipes"
	"savora/reviews"
	"savora/routes"
	"savora/store"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s in %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// openStore picks the persistence backend: Redis when REDIS_ADDR is
// set, Mongo when MONGODB_URI is set, otherwise in-memory (state lost
// on restart, still fully functional).
func openStore(ctx context.Context) store.Store {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		s := store.NewRedis(addr)
		if err := s.Ping(ctx); err != nil {
			log.Printf("Redis unreachable (%v); falling back to in-memory store", err)
		} else {
			log.Printf("Using Redis store at %s", addr)
			return s
		}
	}
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		s, err := store.NewMongo(ctx, uri)
		if err != nil {
			log.Printf("MongoDB unreachable (%v); falling back to in-memory store", err)
		} else {
			log.Println("Using MongoDB store")
			return s
		}
	}
	log.Println("No persistent store configured; using in-memory store")
	return store.NewMemory()
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv := openStore(ctx)

	// repositories
	recipeRepo := recipes.NewRepo(kv)
	reviewRepo := reviews.NewRepo(kv)
	favRepo := favorites.NewRepo(kv)
	commRepo := community.NewRepo(kv)

	loader := recipes.NewLoader(recipeRepo, reviewRepo, os.Getenv("API_BASE"))

	// change-notification hub
	hub := notify.NewHub()
	go hub.Run()
	hub.StartApprovalReminder(ctx, 60*time.Second, func(ctx context.Context) int {
		merged, _ := loader.Load(ctx)
		n := 0
		for _, r := range merged {
			if r.Status == models.StatusPending {
				n++
			}
		}
		return n
	})

	// moderation with the full cascade-cleanup chain
	modService := moderation.NewService(
		recipeRepo,
		favRepo,
		reviewRepo,
		community.LikePurger{Repo: commRepo},
		community.CommentPurger{Repo: commRepo},
	)
	modService.Base = loader
	modService.Notify = hub.Changed

	// handlers
	recipeHandler := recipes.NewHandler(loader, modService, favRepo, kv)
	modHandler := moderation.NewHandler(modService, loader, favRepo, reviewRepo)
	reviewHandler := reviews.NewHandler(reviewRepo)
	favHandler := &favorites.Handler{Repo: favRepo, Notify: hub.Changed}
	commHandler := community.NewHandler(commRepo)
	commHandler.Notify = hub.Changed
	authHandler := auth.NewHandler(kv)
	exportHandler := export.NewHandler(loader)

	rateLimiter := ratelim.NewRateLimiter()

	router := httprouter.New()
	router.GET("/health", Index)
	routes.AddStaticRoutes(router)
	routes.AddAuthRoutes(router, authHandler, rateLimiter)
	routes.AddRecipeRoutes(router, recipeHandler, rateLimiter)
	routes.AddAdminRoutes(router, modHandler)
	routes.AddReviewsRoutes(router, reviewHandler, rateLimiter)
	routes.AddFavoritesRoutes(router, favHandler)
	routes.AddCommunityRoutes(router, commHandler, rateLimiter)
	routes.AddMediaRoutes(router, rateLimiter)
	routes.AddExportRoutes(router, exportHandler, rateLimiter)
	routes.AddNotifyRoutes(router, hub)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Shutting down notify hub...")
		hub.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
