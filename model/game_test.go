package model

import (
	"math/rand"
	"testing"

	"local/catanbrain/board"

	"github.com/stretchr/testify/require"
)

func newTestGame() *Game {
	b := board.NewStandard(rand.New(rand.NewSource(42)))
	return NewGame(b, 4, Options{})
}

func TestSetPhaseRecordsOldPhase(t *testing.T) {
	g := newTestGame()
	g.SetPhase(Roll)
	g.SetPhase(Play)
	require.Equal(t, Play, g.Phase)
	require.Equal(t, Roll, g.OldPhase)
}

func TestAdvanceTurnRotatesDevCards(t *testing.T) {
	g := newTestGame()
	p := g.Player(0)
	p.DevCardsNewThisTurn[Knight] = 1
	g.AdvanceTurn(1)
	g.AdvanceTurn(0)
	require.Equal(t, 1, p.DevCardsPlayableNow[Knight])
	require.Equal(t, 0, p.DevCardsNewThisTurn[Knight])
}

func TestApplyPutPieceAndUndoRoundTrips(t *testing.T) {
	g := newTestGame()
	before := *g.Player(0)
	node := g.Board.Nodes[0].ID
	id := g.ApplyPutPiece(0, Settlement, node, board.NoneEdge)
	require.NotEqual(t, before.SettlementsAvailable, g.Player(0).SettlementsAvailable)
	g.UndoPutPiece(id)
	after := g.Player(0)
	require.Equal(t, before.SettlementsAvailable, after.SettlementsAvailable)
	require.Empty(t, after.PlacedPieceIDs)
}

func TestApplyPutPieceCityReplacesSettlement(t *testing.T) {
	g := newTestGame()
	node := g.Board.Nodes[0].ID
	g.ApplyPutPiece(0, Settlement, node, board.NoneEdge)
	g.ApplyPutPiece(0, City, node, board.NoneEdge)
	settlements, cities := 0, 0
	for _, pc := range g.Pieces {
		if pc.Owner != 0 {
			continue
		}
		switch pc.Kind {
		case Settlement:
			settlements++
		case City:
			cities++
		}
	}
	require.Equal(t, 0, settlements)
	require.Equal(t, 1, cities)
}

func TestApplyPlayerElementGainAndLose(t *testing.T) {
	g := newTestGame()
	g.ApplyPlayerElement(0, FieldClay, GAIN, 3)
	require.Equal(t, 3, g.Player(0).Hand.Clay)
	g.ApplyPlayerElement(0, FieldClay, LOSE, 1)
	require.Equal(t, 2, g.Player(0).Hand.Clay)
}

func TestApplyResourceCountAssertFlattensOnMismatch(t *testing.T) {
	g := newTestGame()
	g.ApplyPlayerElement(1, FieldClay, GAIN, 2)
	mismatched := g.ApplyResourceCountAssert(1, 5)
	require.True(t, mismatched)
	require.Equal(t, 5, g.Player(1).Hand.Unknown)
	require.Equal(t, 0, g.Player(1).Hand.Clay)
}

func TestApplyResourceCountAssertNoOpWhenMatching(t *testing.T) {
	g := newTestGame()
	g.ApplyPlayerElement(1, FieldClay, GAIN, 2)
	mismatched := g.ApplyResourceCountAssert(1, 2)
	require.False(t, mismatched)
	require.Equal(t, 2, g.Player(1).Hand.Clay)
}

func TestApplyDevCardActionDrawnCardNotPlayableSameTurn(t *testing.T) {
	g := newTestGame()
	remaining := g.DevCardsRemaining
	g.ApplyDevCardAction(0, Knight, Draw)
	require.Equal(t, remaining-1, g.DevCardsRemaining)
	require.Equal(t, 1, g.Player(0).DevCardsNewThisTurn[Knight])
	require.False(t, MayPlayNow(g, 0, Knight))
}

// MayPlayNow mirrors the oracle's mayPlayDevCard gate without importing the
// oracle package (avoids a model<->oracle import cycle in tests).
func MayPlayNow(g *Game, seat Seat, kind DevCardType) bool {
	p := g.Player(seat)
	return p.DevCardsPlayableNow[kind] > 0 && !p.PlayedDevCardThisTurn
}

func TestApplyRobberOrPirateHexEncoding(t *testing.T) {
	g := newTestGame()
	g.ApplyRobberOrPirateHex(3)
	require.Equal(t, board.HexID(3), g.Board.RobberHex)
	g.ApplyRobberOrPirateHex(-1)
	require.Equal(t, board.HexID(0), g.Board.PirateHex)
}
