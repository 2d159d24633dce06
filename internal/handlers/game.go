package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper-mind/internal/command"
	"github.com/vancomm/minesweeper-mind/internal/config"
	"github.com/vancomm/minesweeper-mind/internal/metrics"
	"github.com/vancomm/minesweeper-mind/internal/mines"
	"github.com/vancomm/minesweeper-mind/internal/store"
)

type GameHandler struct {
	logger   *slog.Logger
	registry *store.Registry
	metrics  *metrics.Metrics
	ws       *config.WebSocket
	defaults mines.Config
}

func NewGameHandler(
	logger *slog.Logger,
	registry *store.Registry,
	metrics *metrics.Metrics,
	ws *config.WebSocket,
	defaults mines.Config,
) *GameHandler {
	handler := &GameHandler{
		logger:   logger,
		registry: registry,
		metrics:  metrics,
		ws:       ws,
		defaults: defaults,
	}

	return handler
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	cfg, err := ParseNewGame(r.URL.Query(), g.defaults)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	session, err := mines.NewSession(cfg, nil)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	entry, err := g.registry.Add(session)
	if errors.Is(err, store.ErrFull) {
		sendErrorOrLog(w, g.logger, http.StatusServiceUnavailable, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to register session", "error", err)
		return
	}

	g.metrics.SessionsCreated.Inc()
	g.metrics.SessionsLive.Set(float64(g.registry.Len()))
	g.logger.Debug("created session", "id", entry.ID, "config", cfg.String())

	var dto *GameSessionDTO
	entry.Do(func(s *mines.Session) error {
		dto = NewGameSessionDTO(entry, s, nil)
		return nil
	})

	sendJSONOrLog(w, g.logger, http.StatusCreated, dto)
}

// entry resolves the {id} path value, answering 404 itself when it fails.
func (g GameHandler) entry(w http.ResponseWriter, r *http.Request) (*store.Entry, bool) {
	entry, err := g.registry.Get(r.PathValue("id"))
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	return entry, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}

	var dto *GameSessionDTO
	entry.Do(func(s *mines.Session) error {
		dto = NewGameSessionDTO(entry, s, nil)
		return nil
	})

	sendJSONOrLog(w, g.logger, http.StatusOK, dto)
}

// Move returns a handler applying one kind of command. Open and flag read
// the target cell from the row and col query params.
func (g GameHandler) Move(kind command.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd := command.Command{Kind: kind}
		if kind == command.Open || kind == command.Flag {
			p, err := ParsePoint(r.URL.Query())
			if err != nil {
				sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
				return
			}
			cmd.Point = p
		}

		entry, ok := g.entry(w, r)
		if !ok {
			return
		}

		var dto *GameSessionDTO
		err := entry.Do(func(s *mines.Session) error {
			changed, err := g.apply(entry, s, cmd)
			if err != nil {
				return err
			}
			dto = NewGameSessionDTO(entry, s, changed)
			return nil
		})
		if err != nil {
			sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
			return
		}

		sendJSONOrLog(w, g.logger, http.StatusOK, dto)
	}
}

// apply runs cmd on a locked session.
func (g GameHandler) apply(
	entry *store.Entry, s *mines.Session, cmd command.Command,
) ([]mines.Point, error) {
	before := s.State()
	changed, err := cmd.Apply(s)
	if err != nil {
		return nil, err
	}
	after := s.State()
	if cmd.Kind != command.Noop {
		g.metrics.Observe(cmd.Kind.String(), before, after)
	}
	if !before.Terminal() && after.Terminal() {
		g.logger.Info("game over", "id", entry.ID, "state", after.String())
	}
	return changed, nil
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := g.registry.Delete(r.PathValue("id")); err != nil {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return
	}
	g.metrics.SessionsLive.Set(float64(g.registry.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (g GameHandler) Presets(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, http.StatusOK, mines.Presets)
}
