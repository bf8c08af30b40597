package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/cart"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/config"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/db"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/events"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/expense"
	httpapi "github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/http"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/inventory"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/menu"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/metrics"
	"github.com/axaindopratama/Kedai-WONTONESIA-R1/internal/order"
)

func main() {
	cfg := config.Load()
	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- DB ---
	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
			logger.Fatalf("db migrate: %v", err)
		}
	}

	menuRepo := menu.NewPostgresRepository(pool)
	orderRepo := order.NewPostgresRepository(pool)
	expenseRepo := expense.NewPostgresRepository(pool)
	inventoryRepo := inventory.NewPostgresRepository(pool)

	// --- cart storage ---
	var cartStorage cart.Storage
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("redis connect: %v", err)
		}
		defer client.Close()
		cartStorage = cart.NewRedisStorage(client)
		logger.Printf("carts persisted in redis at %s", cfg.RedisAddr)
	} else {
		cartStorage = cart.NewMemoryStorage()
		logger.Printf("REDIS_ADDR not set, carts are in-memory only")
	}
	carts := cart.NewStore(cartStorage)

	// --- AMQP ---
	var publisher *events.Publisher
	if cfg.RabbitURL != "" {
		conn, err := events.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("rabbitmq connect: %v", err)
		}
		defer conn.Close()

		publisher, err = events.NewPublisher(conn)
		if err != nil {
			logger.Fatalf("rabbitmq publisher: %v", err)
		}
		defer publisher.Close()
	} else {
		logger.Printf("RABBITMQ_URL not set, order events disabled")
	}

	// --- metrics ---
	registry := prometheus.NewRegistry()
	serverMetrics := metrics.NewServerMetrics(registry)

	// interface values must stay nil when the publisher is disabled
	var orderPublisher httpapi.OrderPublisher
	var statusPublisher httpapi.StatusPublisher
	if publisher != nil {
		orderPublisher = publisher
		statusPublisher = publisher
	}

	// --- HTTP ---
	router := httpapi.NewRouter(httpapi.Handlers{
		Menu:           httpapi.NewMenuHandler(menuRepo),
		Cart:           httpapi.NewCartHandler(carts, orderRepo, orderPublisher, cfg.WhatsAppPhone, logger),
		Order:          httpapi.NewOrderHandler(orderRepo, statusPublisher, logger),
		Expense:        httpapi.NewExpenseHandler(expenseRepo),
		Inventory:      httpapi.NewInventoryHandler(inventoryRepo),
		Finance:        httpapi.NewFinanceHandler(orderRepo, expenseRepo),
		Metrics:        serverMetrics.Middleware,
		MetricsHandler: metrics.Handler(registry),
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Printf("http listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Printf("shutdown signal: %s", sig)
	case err := <-errCh:
		logger.Printf("fatal error: %v", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = httpServer.Shutdown(shutdownCtx)
	cancel()

	logger.Printf("shutdown complete")
}
