package main

import (
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/premkumardevadason/chess-go/internal/arbiter"
	"github.com/premkumardevadason/chess-go/internal/config"
	"github.com/premkumardevadason/chess-go/internal/controller"
	"github.com/premkumardevadason/chess-go/internal/middleware"
	"github.com/premkumardevadason/chess-go/internal/opening"
	"github.com/premkumardevadason/chess-go/internal/provider"
	"github.com/premkumardevadason/chess-go/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Fatal().Err(err).Str("path", *configPath).Msg("load config")
	}
	log := newLogger(cfg)

	registry := arbiter.NewRegistry()
	registry.Register(provider.NewRandom(), cfg.ProviderDeadline())
	registry.Register(provider.NewGreedy(), cfg.ProviderDeadline())
	registry.Register(provider.NewNegamax(cfg.NegamaxDepth), cfg.ProviderDeadline())
	if cfg.UCIPath != "" {
		registry.Register(provider.NewUCI(cfg.UCIPath, cfg.UCIDepth, log), cfg.UCIDeadline())
	}
	log.Info().Int("providers", registry.Len()).Msg("provider registry ready")

	arb := arbiter.New(registry, log)
	gameManager := service.NewGameManager(arb, registry, log)
	gameService := service.NewGameService(gameManager)

	var trainingService *service.TrainingService
	if cfg.TrainingWorkers > 0 {
		trainingService = service.NewTrainingService(
			registry, opening.NewBook(log), cfg.TrainingWorkers, cfg.TrainingBuffer, log)
	}

	gameController := controller.NewGameController(gameService, log)
	wsController := controller.NewWebSocketController(gameService, log)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         strings.Split(cfg.AllowOrigins, ","),
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	games := api.Group("/games")
	games.Post("/", gameController.CreateGame)
	games.Get("/:gameId", gameController.GetGameState)
	games.Get("/:gameId/moves", gameController.LegalMoves)
	games.Post("/:gameId/moves", gameController.MakeMove)
	games.Post("/:gameId/undo", gameController.Undo)
	games.Post("/:gameId/redo", gameController.Redo)
	games.Post("/:gameId/reset", gameController.Reset)

	if trainingService != nil {
		api.Post("/training/selfplay", controller.NewTrainingController(trainingService).SelfPlay)
	} else {
		api.Post("/training/selfplay", func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "training disabled",
			})
		})
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Address).Msg("listening")
	if err := app.Listen(cfg.Address); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}

	if trainingService != nil {
		trainingService.Shutdown()
	}
	log.Info().Msg("server stopped")
}

// newLogger builds the root logger from config: console writer for
// development, JSON otherwise.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
