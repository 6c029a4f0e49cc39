package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForBrainTagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	s := ForBrain(&buf, "game-1", "bot-7", 2)
	s.Info("hello %s", "world")

	out := buf.String()
	require.Contains(t, out, `"game":"game-1"`)
	require.Contains(t, out, `"bot":"bot-7"`)
	require.Contains(t, out, `"seat":2`)
	require.Contains(t, out, "hello world")
}

func TestComponentAddsField(t *testing.T) {
	var buf bytes.Buffer
	s := ForBrain(&buf, "game-1", "bot-7", 0).Component("planner")
	s.Debug("planning")
	require.Contains(t, buf.String(), `"component":"planner"`)
}

func TestDesyncLogsBothTotals(t *testing.T) {
	var buf bytes.Buffer
	s := ForBrain(&buf, "game-1", "bot-7", 0)
	s.Desync(1, 3, 5)
	out := buf.String()
	require.Contains(t, out, `"believed_total":3`)
	require.Contains(t, out, `"asserted_total":5`)
}
