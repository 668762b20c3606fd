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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminPageHandler "github.com/m04kA/PH-BookingBot/internal/api/handlers/admin_page"
	exportBookingsHandler "github.com/m04kA/PH-BookingBot/internal/api/handlers/export_bookings"
	paymentPagesHandler "github.com/m04kA/PH-BookingBot/internal/api/handlers/payment_pages"
	stripeWebhookHandler "github.com/m04kA/PH-BookingBot/internal/api/handlers/stripe_webhook"
	"github.com/m04kA/PH-BookingBot/internal/api/middleware"
	"github.com/m04kA/PH-BookingBot/internal/bot"
	"github.com/m04kA/PH-BookingBot/internal/config"
	bookingRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/catalog"
	ownerRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/owner"
	petRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/pet"
	"github.com/m04kA/PH-BookingBot/internal/integrations/stripepay"
	reportsService "github.com/m04kA/PH-BookingBot/internal/service/reports"
	"github.com/m04kA/PH-BookingBot/internal/session"
	createBookingUC "github.com/m04kA/PH-BookingBot/internal/usecase/create_booking"
	registerPetUC "github.com/m04kA/PH-BookingBot/internal/usecase/register_pet"
	"github.com/m04kA/PH-BookingBot/pkg/logger"
	"github.com/m04kA/PH-BookingBot/pkg/metrics"
	"github.com/m04kA/PH-BookingBot/pkg/txmanager"
)

func main() {
	// Секреты из .env (если файл есть) попадают в окружение до чтения конфига
	_ = godotenv.Load()

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

	log.Info("Starting PH-BookingBot...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	if cfg.Metrics.Enabled {
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

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	ownerRepository := ownerRepo.NewRepository(db)
	petRepository := petRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем платежный клиент (если настроен)
	var payments bot.PaymentClient
	if cfg.Stripe.Enabled() {
		payments = stripepay.New(
			cfg.Stripe.APIKey,
			cfg.Stripe.Currency,
			cfg.Server.PublicURL+"/payment_success?session_id={CHECKOUT_SESSION_ID}",
			cfg.Server.PublicURL+"/payment_cancel",
			log,
		)
		log.Info("Stripe payments enabled (currency=%s)", cfg.Stripe.Currency)
	} else {
		log.Warn("Stripe is not configured, bookings are confirmed without payment links")
	}

	// Инициализируем сервисы и use cases
	reportsSvc := reportsService.NewService(
		bookingRepository,
		petRepository,
		ownerRepository,
		catalogRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txMgr,
		log,
	)
	registerPetUseCase := registerPetUC.NewUseCase(
		ownerRepository,
		petRepository,
		txMgr,
		log,
	)

	// Хранилище диалоговых сессий с фоновой чисткой по TTL
	sessionStore := session.NewStore(time.Duration(cfg.Session.TTLMinutes)*time.Minute, log)

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sessionStore.RunSweeper(rootCtx, time.Duration(cfg.Session.SweepMinutes)*time.Minute)

	// Инициализируем бота
	tgBot, err := bot.New(cfg.Telegram.Token, bot.Deps{
		Sessions:       sessionStore,
		BookingCreator: createBookingUseCase,
		PetRegistrar:   registerPetUseCase,
		BookingRepo:    bookingRepository,
		OwnerRepo:      ownerRepository,
		PetRepo:        petRepository,
		CatalogRepo:    catalogRepository,
		Payments:       payments,
		Reports:        reportsSvc,
		AdminPassword:  cfg.Admin.Password,
		PollTimeout:    cfg.Telegram.PollTimeout,
		Metrics:        metricsCollector,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize Telegram bot: %v", err)
	}

	go tgBot.Run(rootCtx)

	// Инициализируем handlers админ-панели
	adminPage := adminPageHandler.NewHandler(reportsSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(reportsSvc, log)
	paymentPages := paymentPagesHandler.NewHandler(log)
	stripeWebhook := stripeWebhookHandler.NewHandler(cfg.Stripe.WebhookSecret, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Публичные страницы Stripe
	r.HandleFunc("/payment_success", paymentPages.HandleSuccess).Methods(http.MethodGet)
	r.HandleFunc("/payment_cancel", paymentPages.HandleCancel).Methods(http.MethodGet)
	r.HandleFunc("/stripe_webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// Админка за token-аутентификацией
	admin := r.PathPrefix("/").Subrouter()
	admin.Use(middleware.TokenAuth(cfg.Admin.Password))
	admin.HandleFunc("/", adminPage.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/export_bookings", exportBookings.Handle).Methods(http.MethodGet)

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
		log.Info("Starting admin server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	// Останавливаем бота и фоновую чистку сессий
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Stopped gracefully")
}
