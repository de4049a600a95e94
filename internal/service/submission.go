package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/wordboard-backend/internal/apperror"
	"github.com/rocketscienceinc/wordboard-backend/internal/dictionary"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
	"github.com/rocketscienceinc/wordboard-backend/internal/wordgrid"
)

// Submit checks every new word against the dictionary. If all are valid
// their cells are locked, the words are scored and the rack is refilled;
// otherwise every unlocked letter goes back to the rack.
// The dictionary is queried without holding the game lock; the game stays
// in the submitting status meanwhile so the board cannot change.
func (that *gameService) Submit(ctx context.Context, id string) (*entity.SubmissionResult, error) {
	log := that.logger.With("method", "Submit", "gameID", id)

	candidates, err := that.beginSubmission(ctx, id)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		words = append(words, candidate.Word)
	}

	var invalid []string
	for _, verdict := range dictionary.ValidateAll(ctx, that.oracle, words) {
		if verdict.Err != nil {
			log.Warn("dictionary lookup failed, treating word as invalid", "word", verdict.Word, "error", verdict.Err)
		}

		if verdict.Err != nil || !verdict.Valid {
			invalid = append(invalid, verdict.Word)
		}
	}

	result, err := that.finishSubmission(ctx, id, candidates, invalid)
	if err != nil {
		return nil, err
	}

	log.Info("submission finished", "accepted", result.Accepted, "words", len(words), "points", result.Points)

	return result, nil
}

func (that *gameService) beginSubmission(ctx context.Context, id string) ([]entity.WordCandidate, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsSubmitting() {
		return nil, apperror.ErrSubmissionInProgress
	}

	candidates := wordgrid.Scan(game.Board, game.Locked)
	if len(candidates) == 0 {
		return nil, apperror.ErrNoWords
	}

	game.Status = entity.StatusSubmitting
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to start submission: %w", err)
	}

	return candidates, nil
}

func (that *gameService) finishSubmission(
	ctx context.Context,
	id string,
	candidates []entity.WordCandidate,
	invalid []string,
) (*entity.SubmissionResult, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Status = entity.StatusPlaying
	result := &entity.SubmissionResult{Invalid: invalid}

	var next entity.Game
	if len(invalid) > 0 {
		next, _ = wordgrid.ApplyRejection(*game)
	} else {
		next, result.Words = wordgrid.ApplyAcceptance(*game, candidates)
		next.Rack = append(next.Rack, that.bag.Draw(that.rackSize)...)
		result.Accepted = true
		result.Points = next.Score - game.Score
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to finish submission: %w", err)
	}

	result.Game = &next

	return result, nil
}
