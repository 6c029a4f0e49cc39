package oracle

import (
	"math/rand"
	"testing"

	"local/catanbrain/board"
	"local/catanbrain/model"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *model.Game {
	t.Helper()
	b := board.NewStandard(rand.New(rand.NewSource(7)))
	return model.NewGame(b, 4, model.Options{})
}

func TestIsPotentialSettlementDuringInitialPlacementIgnoresOwnership(t *testing.T) {
	g := newTestGame(t)
	g.SetPhase(model.InitSettle1A)
	node := g.Board.Nodes[0].ID
	require.True(t, IsPotentialSettlement(g, 0, node))
}

func TestIsPotentialSettlementRejectsAdjacentOccupancy(t *testing.T) {
	g := newTestGame(t)
	g.SetPhase(model.InitSettle1A)
	node := g.Board.Nodes[0].ID
	g.ApplyPutPiece(0, model.Settlement, node, board.NoneEdge)
	for _, adj := range g.Board.Node(node).Adjacent {
		require.False(t, IsPotentialSettlement(g, 1, adj))
	}
}

func TestIsPotentialSettlementDuringPlayRequiresOwnRoute(t *testing.T) {
	g := newTestGame(t)
	g.SetPhase(model.Play)
	node := g.Board.Nodes[0].ID
	require.False(t, IsPotentialSettlement(g, 0, node))

	// Settle two steps away and run a road to node, so no neighbor of node
	// is occupied.
	edge := g.Board.Node(node).Edges[0]
	other := g.Board.OtherEnd(edge, node)
	far := g.Board.Node(other).Edges[0]
	if far == edge {
		far = g.Board.Node(other).Edges[1]
	}
	anchor := g.Board.OtherEnd(far, other)
	g.ApplyPutPiece(0, model.Settlement, anchor, board.NoneEdge)
	g.ApplyPutPiece(0, model.Road, board.NoneNode, far)
	g.ApplyPutPiece(0, model.Road, board.NoneNode, edge)
	require.True(t, IsPotentialSettlement(g, 0, node))
}

func TestIsPotentialCity(t *testing.T) {
	g := newTestGame(t)
	node := g.Board.Nodes[0].ID
	require.False(t, IsPotentialCity(g, 0, node))
	g.ApplyPutPiece(0, model.Settlement, node, board.NoneEdge)
	require.True(t, IsPotentialCity(g, 0, node))
	require.False(t, IsPotentialCity(g, 1, node))
}

func TestIsPotentialRoadRequiresOwnAnchor(t *testing.T) {
	g := newTestGame(t)
	edge := g.Board.Edges[0].ID
	require.False(t, IsPotentialRoad(g, 0, edge))
	node := g.Board.Edges[0].Nodes[0]
	g.ApplyPutPiece(0, model.Settlement, node, board.NoneEdge)
	require.True(t, IsPotentialRoad(g, 0, edge))
}

func TestIsPotentialRoadRejectsOccupiedEdge(t *testing.T) {
	g := newTestGame(t)
	edge := g.Board.Edges[0].ID
	node := g.Board.Edges[0].Nodes[0]
	g.ApplyPutPiece(0, model.Settlement, node, board.NoneEdge)
	g.ApplyPutPiece(0, model.Road, board.NoneNode, edge)
	require.False(t, IsPotentialRoad(g, 0, edge))
}

func TestMayPlayKnightRequiresAvailableCardAndNoPriorPlay(t *testing.T) {
	g := newTestGame(t)
	require.False(t, MayPlayKnight(g, 0))
	g.ApplyDevCardAction(0, model.Knight, model.AddOld)
	require.True(t, MayPlayKnight(g, 0))
	g.ApplyDevCardAction(0, model.Knight, model.PlayCard)
	require.False(t, MayPlayKnight(g, 0))
}

func TestDiceProbabilityForHex(t *testing.T) {
	g := newTestGame(t)
	for _, h := range g.Board.Hexes {
		require.Equal(t, board.DicePips(h.DiceNumber), DiceProbabilityForHex(g, h.ID))
	}
}

func TestEstimateResourceRarityCoversAllResources(t *testing.T) {
	g := newTestGame(t)
	rarity := EstimateResourceRarity(g)
	for _, res := range board.AllResources {
		require.Greater(t, rarity[res], 0)
	}
}

func TestIsInitialPlacement(t *testing.T) {
	g := newTestGame(t)
	g.SetPhase(model.InitRoad2B)
	require.True(t, IsInitialPlacement(g))
	g.SetPhase(model.Play)
	require.False(t, IsInitialPlacement(g))
}
