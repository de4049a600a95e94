package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	handlerTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// NewRouter installs middleware and registers every game route.
func NewRouter(logger *slog.Logger, games gameService) http.Handler {
	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(handlerTimeout))

	ping := NewPingHandler()
	handler := NewGameHandler(logger, games)

	router.Get("/ping", ping.PingHandler)

	router.Route("/api/games", func(r chi.Router) {
		r.Post("/", handler.NewGame)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.GetGame)
			r.Delete("/", handler.EndGame)
			r.Post("/placements", handler.PlaceLetter)
			r.Delete("/placements/{row}/{col}", handler.RemoveLetter)
			r.Post("/letters", handler.DrawLetters)
			r.Get("/words", handler.CurrentWords)
			r.Post("/submit", handler.Submit)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
	})

	return router
}

// Start serves handler on port until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
