package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minesweeper-mind/internal/mines"
)

func TestObserve(t *testing.T) {
	m := New()

	m.Observe("open", mines.InProgress, mines.InProgress)
	m.Observe("open", mines.InProgress, mines.Lost)
	m.Observe("open", mines.Lost, mines.Lost)
	m.Observe("flag", mines.InProgress, mines.InProgress)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Actions.WithLabelValues("open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("flag")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Finished.WithLabelValues("lost")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Finished.WithLabelValues("won")))
}
