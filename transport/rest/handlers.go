package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/wordboard-backend/internal/apperror"
	"github.com/rocketscienceinc/wordboard-backend/internal/entity"
	"github.com/rocketscienceinc/wordboard-backend/internal/wordgrid"
)

var errBadRequest = errors.New("bad request")

type GameHandler interface {
	NewGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	EndGame(w http.ResponseWriter, r *http.Request)

	PlaceLetter(w http.ResponseWriter, r *http.Request)
	RemoveLetter(w http.ResponseWriter, r *http.Request)
	DrawLetters(w http.ResponseWriter, r *http.Request)

	CurrentWords(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type gameService interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	EndGame(ctx context.Context, id string) error

	PlaceLetter(ctx context.Context, id string, placement entity.Placement) (*entity.Game, error)
	RemoveLetter(ctx context.Context, id string, row, col int) (*entity.Game, error)
	DrawLetters(ctx context.Context, id string) (*entity.Game, error)

	CurrentWords(ctx context.Context, id string) ([]entity.WordCandidate, error)
	Submit(ctx context.Context, id string) (*entity.SubmissionResult, error)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameService
}

func NewGameHandler(logger *slog.Logger, games gameService) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type wordResponse struct {
	entity.WordCandidate
	Points int    `json:"points"`
	Label  string `json:"label"`
}

type wordsResponse struct {
	Words  []wordResponse `json:"words"`
	Points int            `json:"points"`
}

func (that *gameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.NewGame(r.Context())
	if err != nil {
		that.writeError(w, r, "NewGame", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, game)
}

func (that *gameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, "GetGame", err)
		return
	}

	writeJSON(w, r, http.StatusOK, game)
}

func (that *gameHandler) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.EndGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, "EndGame", err)
		return
	}

	if r.Context().Err() == nil {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (that *gameHandler) PlaceLetter(w http.ResponseWriter, r *http.Request) {
	var placement entity.Placement
	if err := json.NewDecoder(r.Body).Decode(&placement); err != nil {
		that.writeError(w, r, "PlaceLetter", fmt.Errorf("%w: invalid JSON body", errBadRequest))
		return
	}

	game, err := that.games.PlaceLetter(r.Context(), chi.URLParam(r, "id"), placement)
	if err != nil {
		that.writeError(w, r, "PlaceLetter", err)
		return
	}

	writeJSON(w, r, http.StatusOK, game)
}

func (that *gameHandler) RemoveLetter(w http.ResponseWriter, r *http.Request) {
	row, rowErr := strconv.Atoi(chi.URLParam(r, "row"))
	col, colErr := strconv.Atoi(chi.URLParam(r, "col"))
	if rowErr != nil || colErr != nil {
		that.writeError(w, r, "RemoveLetter", fmt.Errorf("%w: row and col must be integers", errBadRequest))
		return
	}

	game, err := that.games.RemoveLetter(r.Context(), chi.URLParam(r, "id"), row, col)
	if err != nil {
		that.writeError(w, r, "RemoveLetter", err)
		return
	}

	writeJSON(w, r, http.StatusOK, game)
}

func (that *gameHandler) DrawLetters(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.DrawLetters(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, "DrawLetters", err)
		return
	}

	writeJSON(w, r, http.StatusOK, game)
}

func (that *gameHandler) CurrentWords(w http.ResponseWriter, r *http.Request) {
	candidates, err := that.games.CurrentWords(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, "CurrentWords", err)
		return
	}

	response := wordsResponse{Words: make([]wordResponse, 0, len(candidates))}
	for _, candidate := range candidates {
		points := wordgrid.ScoreWord(candidate.Word)
		response.Words = append(response.Words, wordResponse{
			WordCandidate: candidate,
			Points:        points,
			Label:         wordLabel(candidate),
		})
		response.Points += points
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (that *gameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := that.games.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, "Submit", err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

func (that *gameHandler) writeError(w http.ResponseWriter, r *http.Request, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, r, status, errorResponse{Error: "internal server error"})
		return
	}

	that.logger.Debug("request rejected", "method", method, "status", status, "error", err)
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrSubmissionInProgress):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrNoWords),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidLetter),
		errors.Is(err, apperror.ErrCellLocked),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrCellEmpty),
		errors.Is(err, apperror.ErrLetterNotInRack),
		errors.Is(err, apperror.ErrInvalidPlacement):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// wordLabel renders a candidate with 1-based coordinates, e.g. "CAT (Row 8, Cols 8-10)".
func wordLabel(candidate entity.WordCandidate) string {
	if candidate.Orientation == entity.Horizontal {
		return fmt.Sprintf("%s (Row %d, Cols %d-%d)", candidate.Word, candidate.Index+1, candidate.Start+1, candidate.End+1)
	}

	return fmt.Sprintf("%s (Col %d, Rows %d-%d)", candidate.Word, candidate.Index+1, candidate.Start+1, candidate.End+1)
}

// writeJSON skips requests whose context is already done; the timeout
// middleware answers those.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if r.Context().Err() != nil {
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
