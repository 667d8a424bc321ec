// Package main, kimlik servisinin giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle (eksik SECRET_KEY/DATABASE_URL → hemen çık)
//  2. Database'i başlat (gömülü migration'lar dahil)
//  3. Repository'leri oluştur
//  4. Service'leri oluştur
//  5. Handler'ları ve middleware'ı oluştur
//  6. HTTP router'ı kur: public vs protected route ayrımı burada
//  7. CORS yapılandır
//  8. HTTP Server'ı başlat, graceful shutdown
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanıyor.
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

	"github.com/baran/kimlik/config"
	"github.com/baran/kimlik/database"
	"github.com/baran/kimlik/handlers"
	"github.com/baran/kimlik/middleware"
	"github.com/baran/kimlik/repository"
	"github.com/baran/kimlik/services"
	"github.com/rs/cors"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] kimlik server starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	db, err := database.New(cfg.Database.URL, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	handler := newHandler(cfg, db)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: handler,
		// Store çağrıları bloklanabilir — server timeout'ları bir request'in
		// süresiz asılı kalıp diğerlerini etkilemesini engeller.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	// Yeni request kabul etmeyi durdur, mevcutların bitmesini bekle (5sn timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("[main] forced shutdown: %v", err)
	}

	log.Println("[main] server stopped gracefully")
}

// newHandler, tüm katmanları birbirine bağlar ve root http.Handler'ı döner.
// main'den ayrı bir fonksiyon — testler aynı wire-up'ı httptest ile kullanır.
func newHandler(cfg *config.Config, db *database.DB) http.Handler {
	// ─── Repository Layer ───
	userRepo := repository.NewSQLiteUserRepo(db.Conn)

	// ─── Service Layer ───
	authService := services.NewAuthService(userRepo, cfg.JWT.Secret)
	userService := services.NewUserService(userRepo)

	// ─── Handler Layer ───
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)

	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)

	// ─── HTTP Router ───
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"kimlik"}`)
	})

	// Public endpoint'ler — token gerekmez, auth middleware'dan HİÇ geçmez
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)

	// Protected endpoint'ler — authMw.Require() sarar.
	// Public/protected ayrımı sadece bu route tablosunda yaşar;
	// middleware hangi route'a takıldığını bilmez.
	mux.Handle("GET /api/users/{id}", authMw.Require(http.HandlerFunc(userHandler.Get)))
	mux.Handle("DELETE /api/users/{id}", authMw.Require(http.HandlerFunc(userHandler.Delete)))

	// ─── CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return corsHandler.Handler(mux)
}
