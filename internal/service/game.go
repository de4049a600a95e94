package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/wordboard-backend/internal/dictionary"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
	"github.com/rocketscienceinc/wordboard-backend/internal/pkg"
	"github.com/rocketscienceinc/wordboard-backend/internal/wordgrid"
)

const (
	DefaultBoardSize = 15
	DefaultRackSize  = 5
)

type GameService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error

	PlaceLetter(ctx context.Context, id string, placement entity.Placement) (*entity.Game, error)
	RemoveLetter(ctx context.Context, id string, row, col int) (*entity.Game, error)
	DrawLetters(ctx context.Context, id string) (*entity.Game, error)

	CurrentWords(ctx context.Context, id string) ([]entity.WordCandidate, error)
	Submit(ctx context.Context, id string) (*entity.SubmissionResult, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type letterBag interface {
	Draw(count int) []string
}

type Options struct {
	BoardSize int
	RackSize  int
}

type gameService struct {
	logger *slog.Logger

	gameRepo gameRepo
	oracle   dictionary.Oracle
	bag      letterBag

	boardSize int
	rackSize  int

	locks *gameLocks
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo, oracle dictionary.Oracle, bag letterBag, opts Options) GameService {
	if opts.BoardSize <= 0 {
		opts.BoardSize = DefaultBoardSize
	}

	if opts.RackSize <= 0 {
		opts.RackSize = DefaultRackSize
	}

	return &gameService{
		logger:    logger.With("component", "game_service"),
		gameRepo:  gameRepo,
		oracle:    oracle,
		bag:       bag,
		boardSize: opts.BoardSize,
		rackSize:  opts.RackSize,
		locks:     newGameLocks(),
	}
}

func (that *gameService) NewGame(ctx context.Context) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, that.boardSize, that.bag.Draw(that.rackSize))

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "boardSize", that.boardSize)

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameService) EndGame(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gameService) PlaceLetter(ctx context.Context, id string, placement entity.Placement) (*entity.Game, error) {
	return that.update(ctx, id, func(game entity.Game) (entity.Game, error) {
		return wordgrid.ApplyPlacement(game, placement)
	})
}

func (that *gameService) RemoveLetter(ctx context.Context, id string, row, col int) (*entity.Game, error) {
	return that.update(ctx, id, func(game entity.Game) (entity.Game, error) {
		next, _, err := wordgrid.ApplyRemoval(game, row, col)
		return next, err
	})
}

func (that *gameService) DrawLetters(ctx context.Context, id string) (*entity.Game, error) {
	return that.update(ctx, id, func(game entity.Game) (entity.Game, error) {
		game.Rack = append(append([]string{}, game.Rack...), that.bag.Draw(that.rackSize)...)
		return game, nil
	})
}

func (that *gameService) CurrentWords(ctx context.Context, id string) ([]entity.WordCandidate, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	return wordgrid.Scan(game.Board, game.Locked), nil
}

// update runs one transition under the game's lock and stores the result.
func (that *gameService) update(ctx context.Context, id string, transition func(entity.Game) (entity.Game, error)) (*entity.Game, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := transition(*game)
	if err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &next, nil
}
