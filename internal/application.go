package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/wordboard-backend/internal/config"
	"github.com/rocketscienceinc/wordboard-backend/internal/dictionary"
	"github.com/rocketscienceinc/wordboard-backend/internal/letters"
	"github.com/rocketscienceinc/wordboard-backend/internal/repository"
	"github.com/rocketscienceinc/wordboard-backend/internal/repository/storage"
	"github.com/rocketscienceinc/wordboard-backend/internal/service"
	"github.com/rocketscienceinc/wordboard-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	oracle, closeOracle, err := newOracle(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeOracle()

	gameRepo := repository.NewGameRepository()
	bag := letters.NewBag(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	gameService := service.NewGameService(logger, gameRepo, oracle, bag, service.Options{
		BoardSize: conf.BoardSize,
		RackSize:  conf.RackSize,
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "dictionary", conf.Dictionary.Source)
	if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameService)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newOracle builds the dictionary chain from config: the lexicon or the remote
// API, optionally fronted by the Redis verdict cache. The returned func
// releases every storage it opened.
func newOracle(ctx context.Context, logger *slog.Logger, conf *config.Config) (dictionary.Oracle, func(), error) {
	log := logger.With("component", "app")

	var closers []func() error
	closeAll := func() {
		for _, closer := range closers {
			if err := closer(); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}
	}

	var oracle dictionary.Oracle

	switch conf.Dictionary.Source {
	case config.DictionarySourceLexicon:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}
		closers = append(closers, sqliteStorage.Close)

		if err = sqliteStorage.Init(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		words, err := dictionary.ReadWordFile(conf.Dictionary.WordListPath)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("could not read word list: %w", err)
		}

		lexicon := repository.NewLexiconRepository(sqliteStorage.Connection)
		if err = lexicon.Load(ctx, words); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("could not load lexicon: %w", err)
		}

		log.Info("Lexicon loaded", "words", len(words))
		oracle = dictionary.NewLexiconOracle(lexicon)
	default:
		oracle = dictionary.NewHTTPOracle(conf.Dictionary.APIURL, conf.Dictionary.Timeout)
	}

	if !conf.Redis.Enabled {
		return oracle, closeAll, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		closeAll()
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}
	closers = append(closers, redisStorage.Close)

	verdicts := repository.NewVerdictRepository(redisStorage.Connection)

	return dictionary.NewCachedOracle(logger, oracle, verdicts, conf.Dictionary.CacheTTL), closeAll, nil
}
