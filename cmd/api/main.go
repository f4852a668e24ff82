package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/stock-count-api/docs"
	"github.com/jhoicas/stock-count-api/internal/application/auth"
	"github.com/jhoicas/stock-count-api/internal/application/catalog"
	"github.com/jhoicas/stock-count-api/internal/application/counts"
	"github.com/jhoicas/stock-count-api/internal/application/listing"
	"github.com/jhoicas/stock-count-api/internal/application/ports"
	infracache "github.com/jhoicas/stock-count-api/internal/infrastructure/cache"
	infraevents "github.com/jhoicas/stock-count-api/internal/infrastructure/events"
	inframetrics "github.com/jhoicas/stock-count-api/internal/infrastructure/metrics"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/migration"
	infrapdf "github.com/jhoicas/stock-count-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/platform"
	"github.com/jhoicas/stock-count-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-count-api/internal/interfaces/http"
	"github.com/jhoicas/stock-count-api/pkg/config"
	"github.com/jhoicas/stock-count-api/pkg/logger"
)

// @title        Stock Count API
// @version      1.0
// @description  App embebida de conteo físico de inventario y conciliación contra el stock de la tienda.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.MigrateOnStart {
		m, err := migration.New(pool, log.Component("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("preparar migraciones")
		}
		if err := m.Up(); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		_ = m.Close()
	}

	// Métricas en un registro propio (más las de runtime de Go)
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := inframetrics.NewRecorder(registry)

	// Caché de opciones: Redis si está configurado, si no en memoria
	var optionsCache ports.OptionsCache
	if cfg.Redis.Enabled() {
		client, err := infracache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		optionsCache = infracache.NewRedisOptionsCache(client, cfg.Redis.OptionsTTL, log.Component("cache"))
	} else {
		optionsCache = infracache.NewMemoryOptionsCache(cfg.Redis.OptionsTTL)
	}

	// Eventos: Kafka si hay brokers, si no al log
	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled() {
		kp := infraevents.NewKafkaPublisher(infraevents.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), log.Component("events"))
		defer kp.Close()
		publisher = kp
	} else {
		publisher = infraevents.NewLogPublisher(log.Component("events"))
	}

	platformClient := platform.NewClient(platform.Config{
		APIKey:     cfg.Platform.APIKey,
		APISecret:  cfg.Platform.APISecret,
		APIVersion: cfg.Platform.APIVersion,
		RateLimit:  cfg.Platform.RateLimit,
		Timeout:    time.Duration(cfg.Platform.RequestTimeoutSecs) * time.Second,
	}, log.Component("platform"))

	sessionRepo := postgres.NewSessionRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	countRepo := postgres.NewCountRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(auth.Config{
		APIKey:     cfg.Platform.APIKey,
		APISecret:  cfg.Platform.APISecret,
		ShopSuffix: cfg.Platform.ShopDomainSuffix,
	}, sessionRepo, platformClient, log.Component("auth"))
	listingUC := listing.NewUseCase(catalogRepo, optionsCache, metrics, log.Component("listing"))
	countsUC := counts.NewUseCase(countRepo, catalogRepo, publisher, metrics, log.Component("counts"))
	syncUC := catalog.NewSyncUseCase(txRunner, sessionRepo, platformClient, optionsCache, publisher, metrics, log.Component("sync"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // la sincronización recorre todo el catálogo
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Count API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ListingUC:  listingUC,
		CountsUC:   countsUC,
		SyncUC:     syncUC,
		CountSheet: infrapdf.NewCountSheetGenerator(),
		APIKey:     cfg.Platform.APIKey,
		Log:        log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
