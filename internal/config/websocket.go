package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader    websocket.Upgrader
	IdleTimeout time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	idle, err := lookupDuration("WS_IDLE_TIMEOUT", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:    upgrader,
		IdleTimeout: idle,
	}

	return ws, nil
}
