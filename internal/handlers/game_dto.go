package handlers

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-mind/internal/mines"
	"github.com/vancomm/minesweeper-mind/internal/store"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Preset    string `schema:"preset"`
	Rows      *int   `schema:"rows"`
	Columns   *int   `schema:"columns"`
	MineCount *int   `schema:"mine_count"`
}

// ParseNewGame reads the board config from a query. A preset wins over
// explicit dimensions; missing dimensions fall back to def.
func ParseNewGame(src url.Values, def mines.Config) (mines.Config, error) {
	var dto NewGameDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.Config{}, err
	}

	if dto.Preset != "" {
		return mines.Preset(dto.Preset)
	}

	cfg := def
	if dto.Rows != nil {
		cfg.Rows = *dto.Rows
	}
	if dto.Columns != nil {
		cfg.Columns = *dto.Columns
	}
	if dto.MineCount != nil {
		cfg.MineCount = *dto.MineCount
	}
	return cfg.Normalize()
}

func ParsePoint(src url.Values) (mines.Point, error) {
	var p mines.Point
	if err := decoder.Decode(&p, src); err != nil {
		return p, fmt.Errorf("row and col are required integers: %w", err)
	}
	return p, nil
}

type GameSessionDTO struct {
	GameSessionID string             `json:"game_session_id"`
	CreatedAt     int64              `json:"created_at"`
	Board         mines.BoardView    `json:"board"`
	Grid          []mines.CellStatus `json:"grid"`
	Changed       []mines.Point      `json:"changed,omitempty"`
}

func NewGameSessionDTO(
	e *store.Entry, s *mines.Session, changed []mines.Point,
) *GameSessionDTO {
	view := s.Snapshot()
	dto := &GameSessionDTO{
		GameSessionID: e.ID,
		CreatedAt:     e.CreatedAt.UnixMilli(),
		Board:         view,
		Grid:          view.Statuses(),
		Changed:       changed,
	}
	return dto
}
