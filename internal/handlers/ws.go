package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-mind/internal/command"
	"github.com/vancomm/minesweeper-mind/internal/mines"
	"github.com/vancomm/minesweeper-mind/internal/store"
)

// ConnectWS plays a session over a websocket. Every text message carries
// one or more commands, one per line, and is answered with the session.
// Commands after the one that ended the game are ignored; a game that was
// already over can still be restarted.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	entry, ok := g.entry(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}

	defer c.Close()

	for {
		if !g.extendDeadline(c) {
			break
		}
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.logger.Debug(fmt.Sprintf("\t> %s", text))

		reply, err := g.runLines(entry, text)
		if err != nil {
			g.logger.Debug("rejected ws command", slog.Any("error", err))
			if err := c.WriteJSON(wrapError(err)); err != nil {
				g.logger.Error("unable to write json", slog.Any("error", err))
				break
			}
			continue
		}

		if err := c.WriteJSON(reply); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
		g.logger.Debug("\t< <session data>")
	}
}

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

// extendDeadline gives the client another idle timeout to send a message.
// It reports false when the connection can no longer be read.
func (g GameHandler) extendDeadline(c readDeadliner) bool {
	if g.ws.IdleTimeout <= 0 {
		return true
	}
	if err := c.SetReadDeadline(time.Now().Add(g.ws.IdleTimeout)); err != nil {
		g.logger.Debug("unable to set read deadline", slog.Any("error", err))
		return false
	}
	return true
}

func (g GameHandler) runLines(entry *store.Entry, text string) (*GameSessionDTO, error) {
	var (
		dto     *GameSessionDTO
		changed []mines.Point
	)
	err := entry.Do(func(s *mines.Session) error {
		for line := range command.Lines(text) {
			cmd, err := command.Parse(line)
			if err != nil {
				return err
			}
			before := s.State()
			delta, err := g.apply(entry, s, cmd)
			if err != nil {
				return err
			}
			changed = append(changed, delta...)
			if !before.Terminal() && s.State().Terminal() {
				break
			}
		}
		dto = NewGameSessionDTO(entry, s, changed)
		return nil
	})
	return dto, err
}
