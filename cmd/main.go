package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	acceptBookingHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/accept_booking"
	bookingFlowHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/booking_flow"
	cancelBookingHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/create_booking"
	getAnalyticsHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/get_analytics"
	getBookingsHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/get_bookings"
	getProductsHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/get_products"
	getWorkersHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/get_workers"
	rateBookingHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/rate_booking"
	suggestCategoryHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/suggest_category"
	updateAvailabilityHandler "github.com/m04kA/V4U-MarketplaceService/internal/api/handlers/update_worker_availability"
	"github.com/m04kA/V4U-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/V4U-MarketplaceService/internal/config"
	bookingRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/booking"
	productRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/product"
	"github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/seed"
	workerRepo "github.com/m04kA/V4U-MarketplaceService/internal/infra/storage/worker"
	recommenderClient "github.com/m04kA/V4U-MarketplaceService/internal/integrations/recommender"
	analyticsService "github.com/m04kA/V4U-MarketplaceService/internal/service/analytics"
	"github.com/m04kA/V4U-MarketplaceService/internal/service/bookingflow"
	bookingsService "github.com/m04kA/V4U-MarketplaceService/internal/service/bookings"
	recommendationsService "github.com/m04kA/V4U-MarketplaceService/internal/service/recommendations"
	workersService "github.com/m04kA/V4U-MarketplaceService/internal/service/workers"
	acceptBookingUC "github.com/m04kA/V4U-MarketplaceService/internal/usecase/accept_booking"
	createBookingUC "github.com/m04kA/V4U-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/V4U-MarketplaceService/pkg/logger"
	"github.com/m04kA/V4U-MarketplaceService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting V4U-MarketplaceService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем in-memory реестры и наполняем их демо-данными
	bookingRepository := bookingRepo.NewRepository()
	workerRepository := workerRepo.NewRepository()
	productRepository := productRepo.NewRepository(seed.Products())

	ctx := context.Background()
	for _, w := range seed.Workers() {
		worker := w
		if err := workerRepository.Add(ctx, &worker); err != nil {
			log.Fatal("Failed to seed worker %s: %v", worker.ID, err)
		}
	}
	for _, b := range seed.Bookings() {
		booking := b
		bookingRepository.Seed(&booking)
	}
	log.Info("Registries seeded: %d workers, %d bookings, %d products",
		len(seed.Workers()), len(seed.Bookings()), len(seed.Products()))

	// Инициализируем клиента сервиса рекомендаций
	recommender := recommenderClient.NewClient(
		cfg.Recommender.URL,
		cfg.Recommender.APIKey,
		cfg.Recommender.Model,
		time.Duration(cfg.Recommender.Timeout)*time.Second,
		log,
	)
	log.Info("Recommender client initialized (url=%s, model=%s, timeout=%ds)",
		cfg.Recommender.URL, cfg.Recommender.Model, cfg.Recommender.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, workerRepository, log)
	workerSvc := workersService.NewService(workerRepository, log)
	recommendationSvc := recommendationsService.NewService(recommender, log)
	analyticsSvc := analyticsService.NewService(bookingRepository, workerRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)
	acceptBookingUseCase := acceptBookingUC.NewUseCase(bookingRepository, workerRepository, log)

	// Менеджер многошагового потока создания бронирования
	flowManager := bookingflow.NewManager(recommendationSvc, createBookingUseCase, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	acceptBooking := acceptBookingHandler.NewHandler(acceptBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rateBooking := rateBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getWorkers := getWorkersHandler.NewHandler(workerSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(workerSvc, log)
	getProducts := getProductsHandler.NewHandler(productRepository, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)
	suggestCategory := suggestCategoryHandler.NewHandler(recommendationSvc, log)
	bookingFlow := bookingFlowHandler.NewHandler(flowManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без идентификации)
	// ============================================================

	// Каталог товаров и список исполнителей
	api.HandleFunc("/products", getProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/workers", getWorkers.Handle).Methods(http.MethodGet)

	// Рекомендация категории по описанию проблемы
	api.HandleFunc("/recommendations", suggestCategory.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/rating", rateBooking.Handle).Methods(http.MethodPost)

	// --- Профиль исполнителя ---
	protected.HandleFunc("/workers/availability", updateAvailability.Handle).Methods(http.MethodPatch)

	// --- Аналитика (только администратор) ---
	protected.HandleFunc("/admin/stats", getAnalytics.Handle).Methods(http.MethodGet)

	// --- Пошаговый поток создания бронирования ---
	protected.HandleFunc("/flow", bookingFlow.HandleState).Methods(http.MethodGet)
	protected.HandleFunc("/flow", bookingFlow.HandleReset).Methods(http.MethodDelete)
	protected.HandleFunc("/flow/description", bookingFlow.HandleSetDescription).Methods(http.MethodPut)
	protected.HandleFunc("/flow/category", bookingFlow.HandleSelectCategory).Methods(http.MethodPut)
	protected.HandleFunc("/flow/suggest", bookingFlow.HandleSuggest).Methods(http.MethodPost)
	protected.HandleFunc("/flow/advance", bookingFlow.HandleAdvance).Methods(http.MethodPost)
	protected.HandleFunc("/flow/back", bookingFlow.HandleBack).Methods(http.MethodPost)
	protected.HandleFunc("/flow/schedule", bookingFlow.HandleSetSchedule).Methods(http.MethodPut)
	protected.HandleFunc("/flow/confirm", bookingFlow.HandleConfirm).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
