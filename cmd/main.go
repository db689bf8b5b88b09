package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelPendingPaymentHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/cancel_pending_payment"
	checkEligibilityHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/check_eligibility"
	estimateDeliveryHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/estimate_delivery"
	getDeliveryConfigHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_delivery_config"
	getDeliveryInfoHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_delivery_info"
	getDeliverySlotsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_delivery_slots"
	getServerTimeHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_server_time"
	getTodayReservationsHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/get_today_reservations"
	submitDeliveryHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/submit_delivery"
	updateDeliveryInfoHandler "github.com/m04kA/SMC-DeliveryService/internal/api/handlers/update_delivery_info"
	"github.com/m04kA/SMC-DeliveryService/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryService/internal/config"
	configRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/deliveryconfig"
	infoRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/deliveryinfo"
	orderRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/pendingorder"
	reservationRepo "github.com/m04kA/SMC-DeliveryService/internal/infra/storage/reservation"
	geocoderClient "github.com/m04kA/SMC-DeliveryService/internal/integrations/geocoder"
	paymentClient "github.com/m04kA/SMC-DeliveryService/internal/integrations/payment"
	timeServiceClient "github.com/m04kA/SMC-DeliveryService/internal/integrations/timeservice"
	"github.com/m04kA/SMC-DeliveryService/internal/service/checkoutstate"
	configService "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryconfig"
	infoService "github.com/m04kA/SMC-DeliveryService/internal/service/deliveryinfo"
	reservationsService "github.com/m04kA/SMC-DeliveryService/internal/service/reservations"
	cancelPendingPaymentUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/cancel_pending_payment"
	checkEligibilityUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/check_eligibility"
	estimateDeliveryUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/estimate_delivery"
	getDeliverySlotsUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/get_delivery_slots"
	submitDeliveryUC "github.com/m04kA/SMC-DeliveryService/internal/usecase/submit_delivery"
	"github.com/m04kA/SMC-DeliveryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/logger"
	"github.com/m04kA/SMC-DeliveryService/pkg/metrics"
	"github.com/m04kA/SMC-DeliveryService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-DeliveryService/pkg/syncedclock"
	"github.com/m04kA/SMC-DeliveryService/pkg/txmanager"
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

	log.Info("Starting SMC-DeliveryService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	geoClient := geocoderClient.NewClient(
		cfg.Geocoder.URL,
		cfg.Geocoder.APIKey,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	payClient := paymentClient.NewClient(
		cfg.PaymentGateway.URL,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	timeClient := timeServiceClient.NewClient(
		cfg.TimeService.URL,
		time.Duration(cfg.TimeService.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Integration clients initialized (Geocoder=%s, PaymentGateway=%s, TimeService=%s)",
		cfg.Geocoder.URL, cfg.PaymentGateway.URL, cfg.TimeService.URL)

	// Синхронизируем часы с сервером времени
	// При недоступности сервиса времени деградируем до локальных часов
	clock := syncedclock.NewProvider(timeClient, log)
	syncCtx, cancelSync := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.TimeService.Timeout)*time.Second,
	)
	clock.Sync(syncCtx)
	cancelSync()

	// Инициализируем репозитории (с метриками или без)
	var (
		configRepository      *configRepo.Repository
		infoRepository        *infoRepo.Repository
		orderRepository       *orderRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		configRepository = configRepo.NewRepository(wrappedDB)
		infoRepository = infoRepo.NewRepository(wrappedDB)
		orderRepository = orderRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		configRepository = configRepo.NewRepository(db)
		infoRepository = infoRepo.NewRepository(db)
		orderRepository = orderRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Эфемерное состояние сессий оформления
	checkoutState := checkoutstate.NewStore()

	// Инициализируем сервисы
	configSvc := configService.NewService(configRepository, log)
	infoSvc := infoService.NewService(infoRepository, checkoutState, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, clock, log)

	// Инициализируем use cases
	estimateDeliveryUseCase := estimateDeliveryUC.NewUseCase(
		geoClient,
		configSvc,
		checkoutState,
		clock,
		log,
	)
	getDeliverySlotsUseCase := getDeliverySlotsUC.NewUseCase(
		configSvc,
		clock,
		log,
	)
	checkEligibilityUseCase := checkEligibilityUC.NewUseCase(
		configSvc,
		reservationsSvc,
		infoRepository,
		checkoutState,
		clock,
		log,
	)
	submitDeliveryUseCase := submitDeliveryUC.NewUseCase(
		checkEligibilityUseCase,
		infoSvc,
		payClient,
		orderRepository,
		reservationRepository,
		checkoutState,
		txMgr,
		clock,
		cfg.PaymentGateway.AllowedRedirectHosts,
		log,
	)
	cancelPendingPaymentUseCase := cancelPendingPaymentUC.NewUseCase(
		orderRepository,
		reservationRepository,
		payClient,
		log,
	)

	// Инициализируем handlers
	getServerTime := getServerTimeHandler.NewHandler(clock, log)
	getDeliveryConfig := getDeliveryConfigHandler.NewHandler(configSvc, log)
	getDeliverySlots := getDeliverySlotsHandler.NewHandler(getDeliverySlotsUseCase, log)
	getDeliveryInfo := getDeliveryInfoHandler.NewHandler(infoSvc, log)
	updateDeliveryInfo := updateDeliveryInfoHandler.NewHandler(infoSvc, log)
	estimateDelivery := estimateDeliveryHandler.NewHandler(estimateDeliveryUseCase, log)
	getTodayReservations := getTodayReservationsHandler.NewHandler(reservationsSvc, log)
	checkEligibility := checkEligibilityHandler.NewHandler(checkEligibilityUseCase, log)
	submitDelivery := submitDeliveryHandler.NewHandler(submitDeliveryUseCase, log)
	cancelPendingPayment := cancelPendingPaymentHandler.NewHandler(cancelPendingPaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Серверное время для offset-синхронизации клиентов
	api.HandleFunc("/server-time", getServerTime.Handle).Methods(http.MethodGet)

	// Конфигурация доставки
	api.HandleFunc("/delivery/config", getDeliveryConfig.Handle).Methods(http.MethodGet)

	// Состояние окна доставки и слоты
	api.HandleFunc("/delivery/slots", getDeliverySlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Данные доставки ---
	protected.HandleFunc("/delivery/info", getDeliveryInfo.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/delivery/info", updateDeliveryInfo.Handle).Methods(http.MethodPut)

	// Оценка расстояния и платы за доставку по адресу
	protected.HandleFunc("/delivery/estimate", estimateDelivery.Handle).Methods(http.MethodPost)

	// Сегодняшние брони, доступные для доставки
	protected.HandleFunc("/reservations", getTodayReservations.Handle).Methods(http.MethodGet)

	// Агрегированная проверка готовности к отправке
	protected.HandleFunc("/delivery/eligibility", checkEligibility.Handle).Methods(http.MethodPost)

	// Создание платёжной заявки
	protected.HandleFunc("/delivery/submit", submitDelivery.Handle).Methods(http.MethodPost)

	// Отмена незавершённой платёжной заявки
	protected.HandleFunc("/delivery/payments/{orderCode}/cancel",
		cancelPendingPayment.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
