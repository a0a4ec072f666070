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

	cancelTicketHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_ticket"
	createMeterHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_meter"
	createOwnerHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_owner"
	createTicketHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_ticket"
	createVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_vehicle"
	getAvailableSpacesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_spaces"
	getBusiestHoursHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_busiest_hours"
	getDailyEarningsRankingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_daily_earnings_ranking"
	getEarningsRankingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_earnings_ranking"
	getLocalityEarningsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_locality_earnings"
	getMeterHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_meter"
	getMeterEarningsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_meter_earnings"
	getOwnerHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_owner"
	getTicketHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_ticket"
	getTimesParkedHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_times_parked"
	getVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_vehicle"
	getVehicleSpentHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_vehicle_spent"
	listMetersHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_meters"
	listTicketsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_tickets"
	payTicketHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/pay_ticket"
	updateMeterHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_meter"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/broker"
	kafkaBroker "github.com/m04kA/SMC-ParkingService/internal/infra/broker/kafka"
	rabbitBroker "github.com/m04kA/SMC-ParkingService/internal/infra/broker/rabbitmq"
	"github.com/m04kA/SMC-ParkingService/internal/infra/cache/spent"
	meterRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/meter"
	ownerRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/owner"
	ticketRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/ticket"
	vehicleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/vehicle"
	addressServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/addressservice"
	earningsService "github.com/m04kA/SMC-ParkingService/internal/service/earnings"
	ownersService "github.com/m04kA/SMC-ParkingService/internal/service/owners"
	parkingMetersService "github.com/m04kA/SMC-ParkingService/internal/service/parkingmeters"
	ticketsService "github.com/m04kA/SMC-ParkingService/internal/service/tickets"
	vehiclesService "github.com/m04kA/SMC-ParkingService/internal/service/vehicles"
	createTicketUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_ticket"
	getAvailableSpacesUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_spaces"
	getTimesParkedUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_times_parked"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
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

	log.Info("Starting SMC-ParkingService...")

	location, err := cfg.Parking.Location()
	if err != nil {
		log.Fatal("Invalid parking timezone %q: %v", cfg.Parking.Timezone, err)
	}
	log.Info("Parking timezone: %s", location)

	// Инициализируем метрики (если включены). nil-коллектор отключает запись.
	var metricsCollector *metrics.Metrics
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	meterRepository := meterRepo.NewRepository(wrappedDB)
	ticketRepository := ticketRepo.NewRepository(wrappedDB)
	vehicleRepository := vehicleRepo.NewRepository(wrappedDB)
	ownerRepository := ownerRepo.NewRepository(wrappedDB)

	// Кэш сумм по автомобилю (если включён)
	var spentCache *spent.Cache
	if cfg.Redis.Enabled {
		redisClient, err := spent.Connect(context.Background(), cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		spentCache = spent.NewCache(redisClient, time.Duration(cfg.Redis.SpentTTL)*time.Second)
		log.Info("Redis spent cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.SpentTTL)
	}

	// Издатель событий тикетов
	publisher, err := newPublisher(cfg.Events)
	if err != nil {
		log.Fatal("Failed to initialize event publisher: %v", err)
	}
	defer publisher.Close()
	log.Info("Ticket events driver: %s", cfg.Events.Driver)

	// Интеграционные клиенты
	addressClient := addressServiceClient.NewClient(
		cfg.AddressService.URL,
		time.Duration(cfg.AddressService.Timeout)*time.Second,
		log,
	)
	log.Info("Address service client initialized (url=%s, timeout=%ds)",
		cfg.AddressService.URL, cfg.AddressService.Timeout)

	// Сервисы
	ticketSvc := ticketsService.NewService(ticketRepository, spentCache, publisher, metricsCollector, location, log)
	meterSvc := parkingMetersService.NewService(meterRepository, addressClient, log)
	earningsSvc := earningsService.NewService(ticketRepository, meterRepository, location, log)
	ownerSvc := ownersService.NewService(ownerRepository, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, ownerRepository, log)

	// Use cases
	createTicketUseCase := createTicketUC.NewUseCase(
		ticketRepository,
		meterRepository,
		vehicleRepository,
		ownerRepository,
		publisher,
		metricsCollector,
		txMgr,
		location,
		log,
	)
	getAvailableSpacesUseCase := getAvailableSpacesUC.NewUseCase(ticketRepository, meterRepository, location, log)
	getTimesParkedUseCase := getTimesParkedUC.NewUseCase(ticketRepository, meterRepository, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Тикеты ---
	api.HandleFunc("/tickets", createTicketHandler.NewHandler(createTicketUseCase, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/tickets", listTicketsHandler.NewHandler(ticketSvc, location, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/tickets/busiest-hours", getBusiestHoursHandler.NewHandler(ticketSvc, location, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/tickets/vehicles/{licensePlate}/total-spent", getVehicleSpentHandler.NewHandler(ticketSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/tickets/{ticketId:[0-9]+}", getTicketHandler.NewHandler(ticketSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/tickets/{ticketId:[0-9]+}/pay", payTicketHandler.NewHandler(ticketSvc, log).Handle).Methods(http.MethodPatch)
	api.HandleFunc("/tickets/{ticketId:[0-9]+}/cancel", cancelTicketHandler.NewHandler(ticketSvc, log).Handle).Methods(http.MethodPatch)

	// --- Паркоматы ---
	api.HandleFunc("/parking-meters", createMeterHandler.NewHandler(meterSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/parking-meters", listMetersHandler.NewHandler(meterSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking-meters/{meterId:[0-9]+}", getMeterHandler.NewHandler(meterSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking-meters/{meterId:[0-9]+}", updateMeterHandler.NewHandler(meterSvc, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/parking-meters/{meterId:[0-9]+}/available-spaces",
		getAvailableSpacesHandler.NewHandler(getAvailableSpacesUseCase, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking-meters/{meterId:[0-9]+}/times-parked",
		getTimesParkedHandler.NewHandler(getTimesParkedUseCase, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking-meters/{meterId:[0-9]+}/earnings",
		getMeterEarningsHandler.NewHandler(earningsSvc, log).Handle).Methods(http.MethodGet)

	// --- Выручка ---
	api.HandleFunc("/earnings", getLocalityEarningsHandler.NewHandler(earningsSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/earnings/ranking", getEarningsRankingHandler.NewHandler(earningsSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/earnings/ranking/daily", getDailyEarningsRankingHandler.NewHandler(earningsSvc, log).Handle).Methods(http.MethodGet)

	// --- Владельцы и автомобили ---
	api.HandleFunc("/owners", createOwnerHandler.NewHandler(ownerSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/owners/{ownerId:[0-9]+}", getOwnerHandler.NewHandler(ownerSvc, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles", createVehicleHandler.NewHandler(vehicleSvc, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId:[0-9]+}", getVehicleHandler.NewHandler(vehicleSvc, log).Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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

// newPublisher выбирает брокер событий по настройке events.driver
func newPublisher(cfg config.EventsConfig) (broker.Publisher, error) {
	switch cfg.Driver {
	case "rabbitmq":
		publisher, err := rabbitBroker.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case "kafka":
		return kafkaBroker.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	default:
		return broker.NoopPublisher{}, nil
	}
}
