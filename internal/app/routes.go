package app

import (
	"github.com/vancomm/minesweeper-mind/internal/command"
	"github.com/vancomm/minesweeper-mind/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.registry, a.metrics, a.ws, a.sessions.Default,
	)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE /game/{id}", game.Delete)
	a.router.HandleFunc("POST /game/{id}/reveal", game.Move(command.Open))
	a.router.HandleFunc("POST /game/{id}/flag", game.Move(command.Flag))
	a.router.HandleFunc("POST /game/{id}/restart", game.Move(command.Restart))
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)
	a.router.HandleFunc("GET /presets", game.Presets)
	a.router.Handle("GET /metrics", a.metrics.Handler())
}
