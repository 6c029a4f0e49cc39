package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStandardShape(t *testing.T) {
	b := NewStandard(rand.New(rand.NewSource(1)))
	require.Len(t, b.Hexes, 19)
	require.Len(t, b.Nodes, 54)
	require.Len(t, b.Edges, 72)
	require.NotEqual(t, NoneHex, b.RobberHex)
	require.Equal(t, None, b.Hexes[b.RobberHex].Resource)
}

func TestNewStandardResourceDistribution(t *testing.T) {
	b := NewStandard(rand.New(rand.NewSource(2)))
	counts := map[Resource]int{}
	for _, h := range b.Hexes {
		counts[h.Resource]++
	}
	require.Equal(t, 1, counts[None])
	require.Equal(t, 3, counts[Clay])
	require.Equal(t, 3, counts[Ore])
	require.Equal(t, 4, counts[Sheep])
	require.Equal(t, 4, counts[Wheat])
	require.Equal(t, 4, counts[Wood])
}

func TestEveryNodeHasAtMostThreeHexesAndEdges(t *testing.T) {
	b := NewStandard(rand.New(rand.NewSource(3)))
	for _, n := range b.Nodes {
		require.LessOrEqual(t, len(n.Hexes), 3)
		require.LessOrEqual(t, len(n.Edges), 3)
		require.Equal(t, len(n.Edges), len(n.Adjacent))
	}
}

func TestEdgeBetweenIsSymmetric(t *testing.T) {
	b := NewStandard(rand.New(rand.NewSource(4)))
	e := b.Edges[0]
	a, c := e.Nodes[0], e.Nodes[1]
	require.Equal(t, e.ID, b.EdgeBetween(a, c))
	require.Equal(t, e.ID, b.EdgeBetween(c, a))
	require.Equal(t, c, b.OtherEnd(e.ID, a))
}

func TestPortsAssigned(t *testing.T) {
	b := NewStandard(rand.New(rand.NewSource(5)))
	ports := 0
	for _, n := range b.Nodes {
		if n.Port != NonePort {
			ports++
		}
	}
	require.Greater(t, ports, 0)
}

func TestDicePips(t *testing.T) {
	require.Equal(t, 5, DicePips(6))
	require.Equal(t, 5, DicePips(8))
	require.Equal(t, 1, DicePips(2))
	require.Equal(t, 0, DicePips(7))
}
