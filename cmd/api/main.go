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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"venuegate/internal/adapter/handler"
	"venuegate/internal/adapter/notifier"
	"venuegate/internal/adapter/remote"
	"venuegate/internal/adapter/repository/memory"
	"venuegate/internal/adapter/repository/postgres"
	"venuegate/internal/config"
	"venuegate/internal/core/ports"
	"venuegate/internal/core/services"
	"venuegate/internal/monitoring"
	"venuegate/internal/platform/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	log.Printf("Connecting to Redis at %s:%s...", cfg.RedisHost, cfg.RedisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		DB:   cfg.RedisDB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")
	defer redisClient.Close()

	monitor := monitoring.NewMonitor()

	var crowdNotifier ports.CrowdNotifier = notifier.NoopNotifier{}
	if cfg.PubNubPublishKey != "" && cfg.PubNubSubscribeKey != "" {
		crowdNotifier = notifier.NewPubNubNotifier(cfg.PubNubPublishKey, cfg.PubNubSubscribeKey, cfg.PubNubUserID)
		log.Println("PubNub crowd notifier enabled")
	}

	capacityRepo := postgres.NewCapacityRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)

	capacityService := services.NewCapacityService(capacityRepo, redisClient, monitor, cfg.CapacityCacheTTL)
	admissionService := services.NewAdmissionService(capacityService, crowdNotifier, monitor)
	ticketService := services.NewTicketService(ticketRepo)
	redemptionService := services.NewRedemptionService(ticketService, admissionService, monitor)

	mirror := memory.NewCapacityMirror()
	fetcher := remote.NewHTTPCapacityFetcher(cfg.RemoteBaseURL, cfg.FetchTimeout)
	poller := services.NewCapacityPoller(fetcher, mirror, monitor, cfg.PollInterval, cfg.FetchTimeout)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	admissionHandler := handler.NewAdmissionHandler(admissionService, capacityService)
	ticketHandler := handler.NewTicketHandler(ticketService, redemptionService)
	syncHandler := handler.NewSyncHandler(appCtx, poller, mirror)

	mux := http.NewServeMux()

	mux.HandleFunc("/admission/check-in", admissionHandler.CheckIn)
	mux.HandleFunc("/admission/check-out", admissionHandler.CheckOut)
	mux.HandleFunc("/venues/capacity", admissionHandler.GetCapacity)
	mux.HandleFunc("/venues/capacity/maximum", admissionHandler.SetMaximum)

	mux.HandleFunc("/tickets/issue", ticketHandler.IssueTickets)
	mux.HandleFunc("/tickets/refund", ticketHandler.Refund)
	mux.HandleFunc("/redemptions", ticketHandler.Redeem)

	mux.HandleFunc("/sync/start", syncHandler.StartPolling)
	mux.HandleFunc("/sync/stop", syncHandler.StopPolling)
	mux.HandleFunc("/sync/pause", syncHandler.Pause)
	mux.HandleFunc("/sync/resume", syncHandler.Resume)
	mux.HandleFunc("/sync/mirror", syncHandler.GetMirror)

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, `{"status": "unhealthy"}`, http.StatusServiceUnavailable)
			return
		}
		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			http.Error(w, `{"status": "unhealthy"}`, http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status": "healthy"}`))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	poller.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
