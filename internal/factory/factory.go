package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/Shu5555/jinro-app/internal/dependencies/clock"
	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/services/assign"
	"github.com/Shu5555/jinro-app/internal/services/distribution"
	"github.com/Shu5555/jinro-app/internal/services/lottery"
	"github.com/Shu5555/jinro-app/internal/services/reveal"
	"github.com/Shu5555/jinro-app/internal/services/vote"
	"github.com/Shu5555/jinro-app/internal/services/words"
	"github.com/Shu5555/jinro-app/internal/storage"
	"github.com/Shu5555/jinro-app/internal/storage/memory"
	redisstorage "github.com/Shu5555/jinro-app/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordsService        *words.Service
	Engine              *assign.Engine
	DistributionService *distribution.Service
	RevealService       *reveal.Service
	VoteService         *vote.Service
	LotteryService      *lottery.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	wordsService := words.New(store, logger)
	engine := assign.New(rnd, logger)
	distributionService := distribution.New(store, engine, wordsService, clk, rnd, logger)
	revealService := reveal.New(store, logger)
	voteService := vote.New(store, clk, rnd, logger)
	lotteryService := lottery.New(rnd, logger)

	return &App{
		Storage:             store,
		Clock:               clk,
		Random:              rnd,
		WordsService:        wordsService,
		Engine:              engine,
		DistributionService: distributionService,
		RevealService:       revealService,
		VoteService:         voteService,
		LotteryService:      lotteryService,
	}
}
