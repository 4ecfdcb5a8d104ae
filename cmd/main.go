package main

import (
	"context"
	"database/sql"
	"errors"
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
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/m04kA/BookingHub/internal/api/handlers"
	addServiceHandler "github.com/m04kA/BookingHub/internal/api/handlers/add_service"
	addTimeSlotHandler "github.com/m04kA/BookingHub/internal/api/handlers/add_time_slot"
	cancelBookingHandler "github.com/m04kA/BookingHub/internal/api/handlers/cancel_booking"
	chatHandler "github.com/m04kA/BookingHub/internal/api/handlers/chat"
	createBookingHandler "github.com/m04kA/BookingHub/internal/api/handlers/create_booking"
	getAllBookingsHandler "github.com/m04kA/BookingHub/internal/api/handlers/get_all_bookings"
	getAvailableSlotsHandler "github.com/m04kA/BookingHub/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/BookingHub/internal/api/handlers/get_booking"
	getServiceHandler "github.com/m04kA/BookingHub/internal/api/handlers/get_service"
	getUserBookingsHandler "github.com/m04kA/BookingHub/internal/api/handlers/get_user_bookings"
	listCategoriesHandler "github.com/m04kA/BookingHub/internal/api/handlers/list_categories"
	listServicesHandler "github.com/m04kA/BookingHub/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/BookingHub/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/BookingHub/internal/api/handlers/logout"
	meHandler "github.com/m04kA/BookingHub/internal/api/handlers/me"
	registerHandler "github.com/m04kA/BookingHub/internal/api/handlers/register"
	"github.com/m04kA/BookingHub/internal/api/middleware"
	"github.com/m04kA/BookingHub/internal/config"
	"github.com/m04kA/BookingHub/internal/domain"
	"github.com/m04kA/BookingHub/internal/infra/cache"
	"github.com/m04kA/BookingHub/internal/infra/events"
	bookingRepo "github.com/m04kA/BookingHub/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/BookingHub/internal/infra/storage/service"
	slotRepo "github.com/m04kA/BookingHub/internal/infra/storage/slot"
	userRepo "github.com/m04kA/BookingHub/internal/infra/storage/user"
	"github.com/m04kA/BookingHub/internal/integrations/openai"
	"github.com/m04kA/BookingHub/internal/seed"
	authService "github.com/m04kA/BookingHub/internal/service/auth"
	bookingsService "github.com/m04kA/BookingHub/internal/service/bookings"
	catalogService "github.com/m04kA/BookingHub/internal/service/catalog"
	chatService "github.com/m04kA/BookingHub/internal/service/chat"
	addTimeSlotUC "github.com/m04kA/BookingHub/internal/usecase/add_time_slot"
	completePastBookingsUC "github.com/m04kA/BookingHub/internal/usecase/complete_past_bookings"
	createBookingUC "github.com/m04kA/BookingHub/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/BookingHub/internal/usecase/get_available_slots"
	"github.com/m04kA/BookingHub/internal/worker/completion"
	"github.com/m04kA/BookingHub/pkg/dbmetrics"
	"github.com/m04kA/BookingHub/pkg/logger"
	"github.com/m04kA/BookingHub/pkg/metrics"
	"github.com/m04kA/BookingHub/pkg/tracing"
	"github.com/m04kA/BookingHub/pkg/txmanager"
)

const configPath = "config.toml"

// Общие интерфейсы хранилищ: реализуются и memory, и postgres репозиториями
type (
	bookingStore interface {
		Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
		GetByID(ctx context.Context, id string) (*domain.Booking, error)
		List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
		UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, updatedAt time.Time) error
		Cancel(ctx context.Context, id string, cancelledAt time.Time) error
	}

	slotStore interface {
		Create(ctx context.Context, slot *domain.TimeSlot) error
		CreateBatch(ctx context.Context, slots []*domain.TimeSlot) error
		GetByKey(ctx context.Context, key domain.SlotKey) (*domain.TimeSlot, error)
		ListAvailable(ctx context.Context, serviceID string, date time.Time) ([]*domain.TimeSlot, error)
		Reserve(ctx context.Context, key domain.SlotKey) error
		Release(ctx context.Context, key domain.SlotKey) error
	}

	serviceStore interface {
		Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
		GetByID(ctx context.Context, id string) (*domain.Service, error)
		List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
		Categories(ctx context.Context) ([]string, error)
	}

	userStore interface {
		Create(ctx context.Context, user *domain.User) (*domain.User, error)
		GetByID(ctx context.Context, id string) (*domain.User, error)
		GetByEmail(ctx context.Context, email string) (*domain.User, error)
	}

	txManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	revocationCache interface {
		Get(ctx context.Context, key string) ([]byte, bool, error)
		Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	}
)

func main() {
	// .env опционален, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting BookingHub...")
	log.Info("Configuration loaded from %s (storage=%s, cache=%s, events=%s)",
		configPath, cfg.Storage.Backend, cfg.Cache.Backend, cfg.Events.Backend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Трассировка
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.Endpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to setup tracing: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилища
	var (
		bookingRepository bookingStore
		slotRepository    slotStore
		serviceRepository serviceStore
		userRepository    userStore
		txMgr             txManager
		wrappedDB         *dbmetrics.DB
	)

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		// Без метрик обёртка только пробрасывает запросы
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

	default:
		bookingRepository = bookingRepo.NewMemoryRepository()
		slotRepository = slotRepo.NewMemoryRepository()
		serviceRepository = serviceRepo.NewMemoryRepository()
		userRepository = userRepo.NewMemoryRepository()
		txMgr = txmanager.NewLocalManager()
		log.Info("Using in-memory storage")
	}

	// Кэш отозванных токенов
	var (
		revoked     revocationCache
		redisClient *cache.RedisCache
	)
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		redisClient = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
		if err := redisClient.Ping(ctx); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		revoked = redisClient
		log.Info("Connected to redis at %s", cfg.Redis.Addr)
	case config.CacheNoop:
		revoked = cache.NewNoop()
	default:
		revoked = cache.NewMemory()
	}

	// Публикация событий
	var publisher events.Publisher = events.NewNoop()
	if cfg.Events.Backend == config.EventsKafka {
		publisher = events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, time.Duration(cfg.Kafka.WriteTimeout)*time.Second)
		log.Info("Publishing booking events to kafka topic %s", cfg.Kafka.Topic)
	}

	// Демонстрационные данные
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(serviceRepository, slotRepository, bookingRepository, seed.Config{
			Days:             cfg.Seed.Days,
			UnavailableRatio: cfg.Seed.UnavailableRatio,
			RandomSeed:       cfg.Seed.RandomSeed,
		}, log)
		if err := seeder.Run(ctx, time.Now()); err != nil {
			log.Fatal("Failed to seed data: %v", err)
		}
	}

	// Аутентификация: демо-пользователи из конфигурации, затем зарегистрированные
	var providers []authService.Provider
	if cfg.Auth.DemoUsers {
		static, err := authService.NewStaticProvider(authService.DemoUsers(cfg.Auth.DemoPassword))
		if err != nil {
			log.Fatal("Failed to initialize demo users: %v", err)
		}
		providers = append(providers, static)
	}
	providers = append(providers, authService.NewStoreProvider(userRepository))

	// Инициализируем сервисы
	authSvc := authService.NewService(
		authService.NewChainProvider(providers...),
		userRepository,
		authService.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Minute),
		revoked,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		slotRepository,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	openaiClient := openai.NewClient(openai.Config{
		URL:         cfg.OpenAI.URL,
		APIKey:      cfg.OpenAI.APIKey,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Timeout:     time.Duration(cfg.OpenAI.Timeout) * time.Second,
	}, log)
	chatSvc := chatService.NewService(openaiClient, serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		serviceRepository,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)
	addTimeSlotUseCase := addTimeSlotUC.NewUseCase(slotRepository, serviceRepository, log)
	completePastBookingsUseCase := completePastBookingsUC.NewUseCase(
		bookingRepository,
		publisher,
		metricsCollector,
		txMgr,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	me := meHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	addService := addServiceHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	addTimeSlot := addTimeSlotHandler.NewHandler(addTimeSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	chat := chatHandler.NewHandler(chatSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Служебные проверки
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if wrappedDB != nil {
			if err := wrappedDB.PingContext(r.Context()); err != nil {
				log.Warn("GET /readyz - database is not ready: %v", err)
				handlers.RespondError(w, http.StatusServiceUnavailable, "database is not ready")
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.Ping(r.Context()); err != nil {
				log.Warn("GET /readyz - redis is not ready: %v", err)
				handlers.RespondError(w, http.StatusServiceUnavailable, "cache is not ready")
				return
			}
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Каталог (categories регистрируется раньше {serviceId})
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Чат-ассистент с ограничением частоты запросов на клиента
	if cfg.Chat.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Chat.RateLimit, cfg.Chat.Burst, cfg.Chat.TrustProxy)
		api.Handle("/chat", limiter.Middleware(http.HandlerFunc(chat.Handle))).Methods(http.MethodPost)
	}

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/me", me.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", addService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}/slots", addTimeSlot.Handle).Methods(http.MethodPost)

	// CORS и трассировка оборачивают весь роутер
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	handler := otelhttp.NewHandler(corsHandler.Handler(r), "bookinghub")

	// Фоновое завершение прошедших бронирований
	if cfg.Completion.Enabled {
		worker := completion.NewWorker(
			completePastBookingsUseCase,
			time.Duration(cfg.Completion.Interval)*time.Second,
			log,
		)
		go worker.Run(ctx)
		log.Info("Completion worker started (interval=%ds)", cfg.Completion.Interval)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()

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

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to shutdown tracing: %v", err)
	}

	log.Info("Server stopped gracefully")
}
