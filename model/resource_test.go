package model

import (
	"testing"

	"local/catanbrain/board"

	"github.com/stretchr/testify/require"
)

func TestResourceSetAddAndGet(t *testing.T) {
	var r ResourceSet
	r.Add(board.Clay, 2)
	r.Add(board.Clay, 1)
	require.Equal(t, 3, r.Get(board.Clay))
	require.Equal(t, 3, r.Total())
}

func TestResourceSetLoseDebitsUnknownOnShortfall(t *testing.T) {
	r := ResourceSet{Wood: 1, Unknown: 4}
	shortfall := r.Lose(board.Wood, 3)
	require.Equal(t, 2, shortfall)
	require.Equal(t, 0, r.Get(board.Wood))
	require.Equal(t, 2, r.Unknown)
}

func TestResourceSetLoseNeverGoesNegative(t *testing.T) {
	r := ResourceSet{Ore: 1}
	r.Lose(board.Ore, 5)
	require.Equal(t, 0, r.Total())
}

func TestResourceSetFlatten(t *testing.T) {
	r := ResourceSet{Clay: 2, Ore: 3, Sheep: 1}
	r.Flatten(6)
	require.Equal(t, 0, r.Clay)
	require.Equal(t, 6, r.Unknown)
	require.Equal(t, 6, r.Total())
}

func TestResourceSetCanAfford(t *testing.T) {
	r := ResourceSet{Clay: 1, Wood: 1}
	require.True(t, r.CanAfford(StandardCost(Road)))
	require.False(t, r.CanAfford(StandardCost(Settlement)))
}

func TestResourceSetSubAndAddCost(t *testing.T) {
	r := ResourceSet{Clay: 2, Wood: 2}
	r.SubCost(StandardCost(Road))
	require.Equal(t, ResourceSet{Clay: 1, Wood: 1}, r)
	r.AddCost(StandardCost(Road))
	require.Equal(t, ResourceSet{Clay: 2, Wood: 2}, r)
}

func TestResourceSetEqualIgnoresUnknown(t *testing.T) {
	a := ResourceSet{Clay: 1, Unknown: 3}
	b := ResourceSet{Clay: 1, Unknown: 9}
	require.True(t, a.Equal(b))
}
