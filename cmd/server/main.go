package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"wellnest/internal/config"
	"wellnest/internal/db"
	"wellnest/internal/handlers"
	"wellnest/internal/logger"
	mw "wellnest/internal/middleware"
	"wellnest/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Dev())
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbConn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to open db", zap.Error(err))
	}
	if err := db.RunMigrations(dbConn); err != nil {
		log.Fatal("failed migrations", zap.Error(err))
	}

	var encSvc *services.EncryptionService
	if cfg.EncryptionKey != nil {
		encSvc, err = services.NewEncryptionService(cfg.EncryptionKey)
		if err != nil {
			log.Fatal("failed to init encryption", zap.Error(err))
		}
	} else {
		log.Warn("ENCRYPTION_KEY not set; journal entries are stored in plaintext")
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ZapRequestLogger(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := handlers.NewAuthHandler(dbConn, []byte(cfg.JWTSecret), cfg.Dev())
	moodHandler := handlers.NewMoodHandler(dbConn, cfg.ReportingZone, cfg.Dev())
	journalHandler := handlers.NewJournalHandler(dbConn, encSvc, cfg.Dev())
	authMW := mw.NewAuthMiddleware([]byte(cfg.JWTSecret))

	r.Route("/api", func(api chi.Router) {
		api.Group(func(pub chi.Router) {
			pub.Use(httprate.LimitByIP(20, time.Minute))
			pub.Post("/auth/register", authHandler.Register)
			pub.Post("/auth/login", authHandler.Login)
		})
		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/auth/profile", authHandler.Profile)
			pr.Post("/mood", moodHandler.Add)
			pr.Get("/mood/analytics/today", moodHandler.AnalyticsToday)
			pr.Get("/mood/analytics/week", moodHandler.AnalyticsWeek)
			pr.Get("/mood/analytics/month", moodHandler.AnalyticsMonth)
			pr.Post("/journal", journalHandler.Add)
			pr.Get("/journal", journalHandler.List)
		})
	})

	if !cfg.Dev() && cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("Mental Wellness Tracker API is running"))
		})
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("server stopped")
}
