package tracker

import (
	"math/rand"
	"testing"

	"local/catanbrain/board"
	"local/catanbrain/model"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *model.Game {
	t.Helper()
	b := board.NewStandard(rand.New(rand.NewSource(11)))
	g := model.NewGame(b, 4, model.Options{})
	g.SetPhase(model.InitSettle1A)
	return g
}

func TestRebuildPopulatesInitialPlacementLattice(t *testing.T) {
	g := newTestGame(t)
	set := NewSet(4)
	set.Rebuild(g)
	require.Equal(t, len(g.Board.Nodes), len(set.For(0).Settlements))
	require.Empty(t, set.For(0).Roads) // nothing is placed yet, so no road has an anchor
}

func TestReconcilePlacementRemovesOccupiedAndAdjacentNodes(t *testing.T) {
	g := newTestGame(t)
	set := NewSet(4)
	set.Rebuild(g)

	node := g.Board.Nodes[0].ID
	g.ApplyPutPiece(0, model.Settlement, node, board.NoneEdge)
	set.ReconcilePlacement(g, model.Settlement, node, board.NoneEdge, true)

	for seat := 0; seat < 4; seat++ {
		_, ok := set.For(model.Seat(seat)).Settlements[node]
		require.False(t, ok)
		for _, adj := range g.Board.Node(node).Adjacent {
			_, ok := set.For(model.Seat(seat)).Settlements[adj]
			require.False(t, ok)
		}
	}
}

func TestReconcilePlacementCancelRestoresNothingButClearsEntry(t *testing.T) {
	g := newTestGame(t)
	set := NewSet(4)
	set.Rebuild(g)

	node := g.Board.Nodes[0].ID
	set.ReconcilePlacement(g, model.Settlement, node, board.NoneEdge, false)
	_, ok := set.For(0).Settlements[node]
	require.False(t, ok)
}

func TestThreatsReflectCompetingSeats(t *testing.T) {
	g := newTestGame(t)
	set := NewSet(4)
	set.Rebuild(g)

	node := g.Board.Nodes[10].ID
	spot := set.For(1).Settlements[node]
	require.Contains(t, spot.ThreatenedBy, model.Seat(0))
}
