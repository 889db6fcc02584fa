package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/wheelrift/internal/catalog"
	"github.com/KirkDiggler/wheelrift/internal/common/clock"
	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/common/uuid"
	"github.com/KirkDiggler/wheelrift/internal/handlers/cli"
	"github.com/KirkDiggler/wheelrift/internal/repositories/results"
	"github.com/KirkDiggler/wheelrift/internal/rift"
	"github.com/KirkDiggler/wheelrift/internal/services/ai"
	"github.com/KirkDiggler/wheelrift/internal/services/game"
	"github.com/KirkDiggler/wheelrift/internal/services/messaging"
	"github.com/KirkDiggler/wheelrift/internal/services/notification"
	"github.com/KirkDiggler/wheelrift/internal/wheel"
	"github.com/KirkDiggler/wheelrift/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	logger := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := &clock.DefaultClock{}
	roller := random.New(&random.Config{})
	ids := uuid.New()

	dict := words.Default()
	if path := getEnv("WORDS_FILE", ""); path != "" {
		loaded, err := words.Load(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load word list")
		}
		dict = loaded
	}

	resultsRepo := newResultsRepo()

	notifier, err := notification.New(&notification.Config{
		Clock:         clk,
		UUIDGenerator: ids,
		Logger:        &logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notification service")
	}

	messenger, err := messaging.New(&messaging.Config{Roller: roller})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messaging service")
	}

	spinner, err := wheel.NewRandomSpinner(&wheel.SpinnerConfig{
		Roller:   roller,
		Clock:    clk,
		Duration: getEnvDuration("SPIN_MS", 1500*time.Millisecond),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create spinner")
	}

	riftConfig := rift.DefaultConfig()
	riftConfig.Duration = time.Duration(getEnvInt("RIFT_SECONDS", 45)) * time.Second

	gameSvc, err := game.New(&game.Config{
		Wedges:        catalog.DefaultWedges(),
		Puzzles:       catalog.DefaultPuzzles(),
		Dictionary:    dict,
		Players:       game.DefaultPlayers(),
		TotalRounds:   getEnvInt("TOTAL_ROUNDS", game.DefaultTotalRounds),
		PassTurnDelay: getEnvDuration("PASS_DELAY_MS", 1200*time.Millisecond),
		Rift:          riftConfig,
		Roller:        roller,
		Clock:         clk,
		UUIDGenerator: ids,
		Notifier:      notifier,
		Messenger:     messenger,
		ResultsRepo:   resultsRepo,
		Spinner:       spinner,
		Logger:        &logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	agent, err := ai.New(&ai.Config{
		Game:       gameSvc,
		Clock:      clk,
		ThinkDelay: getEnvDuration("AI_THINK_MS", ai.DefaultThinkDelay),
		Logger:     &logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create ai agent")
	}
	go agent.Run(ctx)

	handler, err := cli.New(&cli.Config{
		GameService: gameSvc,
		In:          os.Stdin,
		Out:         os.Stdout,
		Logger:      &logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create terminal handler")
	}

	if err := handler.Run(ctx); err != nil {
		log.Error().Err(err).Msg("terminal handler exited")
	}
}

// newResultsRepo uses Redis when REDIS_ADDR is set and memory otherwise
func newResultsRepo() results.Repository {
	addr := getEnv("REDIS_ADDR", "")
	if addr == "" {
		return results.NewMemory()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	repo, err := results.NewRedis(&results.Config{RedisClient: redisClient})
	if err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("leaderboard falls back to memory")
		return results.NewMemory()
	}
	return repo
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvDuration reads a millisecond count
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	ms, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || ms < 0 {
		return defaultValue
	}
	return time.Duration(ms) * time.Millisecond
}
