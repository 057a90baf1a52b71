// Package main, kimlik gateway'inin giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. Database'i başlat (gömülü migration'lar ile)
//  3. Repository'leri oluştur
//  4. Service'leri oluştur (token → auth → renewal)
//  5. Handler'ları oluştur
//  6. Middleware'ı oluştur
//  7. HTTP router'ı kur, route'ları bağla
//  8. CORS yapılandır
//  9. Süresi dolmuş oturumları temizleyen background job'ı başlat
// 10. HTTP Server'ı başlat, graceful shutdown
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanıyor.
// Secret'lar ve store bağlantısı config üzerinden explicit geçer, hiçbir
// katman env'den kendi başına okuma yapmaz.
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

	"github.com/akinalpfdn/kimlik/config"
	"github.com/akinalpfdn/kimlik/database"
	"github.com/akinalpfdn/kimlik/handlers"
	"github.com/akinalpfdn/kimlik/middleware"
	"github.com/akinalpfdn/kimlik/repository"
	"github.com/akinalpfdn/kimlik/services"
	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] kimlik gateway starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	sessionRepo := repository.NewSQLiteSessionRepo(db.Conn)

	// ─── 4. Service Layer ───
	tokenService := services.NewTokenService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessExpirySeconds)*time.Second,
		time.Duration(cfg.JWT.RefreshExpiryDays)*24*time.Hour,
	)
	authService := services.NewAuthService(userRepo, sessionRepo, tokenService, cfg.Auth.BcryptCost)
	renewalService := services.NewRenewalService(tokenService, sessionRepo)

	// ─── 5. Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	resourceHandler := handlers.NewResourceHandler()

	// ─── 6. Middleware ───
	authMiddleware := middleware.NewAuthMiddleware(renewalService, tokenService)

	// ─── 7. HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"kimlik"}`)
	})

	// Public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /logout", authHandler.Logout)

	// Protected endpoint'ler — authMiddleware.Require() sarar.
	// /resources renewal orchestrator'ın asıl sahnesidir: süresi dolmuş
	// access token + canlı refresh token gelirse middleware taze access
	// token'ı cookie olarak set edip request'i yine de servis eder.
	mux.Handle("GET /resources", authMiddleware.Require(http.HandlerFunc(resourceHandler.Get)))
	mux.Handle("GET /users/me", authMiddleware.Require(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /logout-all", authMiddleware.Require(http.HandlerFunc(authHandler.LogoutAll)))

	// ─── 8. CORS ───
	// AllowCredentials zorunlu: token'lar cookie'de taşınır, tarayıcı
	// credentials olmadan cross-origin cookie göndermez.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handler := corsHandler.Handler(mux)

	// ─── 9. Session Cleanup Job ───
	// Süresi dolmuş refresh session satırları artık hiçbir token'ı temsil
	// etmez ama tabloda birikir. Saatte bir temizle. Doğruluk için şart
	// değil (expiry zaten imzada doğrulanır), tablo hijyeni için.
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()

	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				if err := sessionRepo.DeleteExpired(cleanupCtx); err != nil {
					log.Printf("[cleanup] failed to delete expired sessions: %v", err)
				}
			}
		}
	}()

	// ─── 10. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown — SIGINT/SIGTERM gelince yeni request kabulünü
	// durdur, uçuştaki request'lerin bitmesini bekle (5sn timeout).
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	cancelCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}
