package planner

import (
	"math/rand"
	"testing"

	"local/catanbrain/board"
	"local/catanbrain/message"
	"local/catanbrain/model"
	"local/catanbrain/oracle"
	"local/catanbrain/tracker"

	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) (*model.Game, *tracker.Set) {
	t.Helper()
	b := board.NewStandard(rand.New(rand.NewSource(3)))
	g := model.NewGame(b, 4, model.Options{})
	g.SetPhase(model.InitSettle1A)
	set := tracker.NewSet(4)
	set.Rebuild(g)
	return g, set
}

func TestPlanStuffOnlyIncludesCurrentlyPossiblePieces(t *testing.T) {
	g, set := newTestGame(t)
	plan := PlanStuff(g, set.For(0), Fast)
	require.NotEmpty(t, plan)
	for _, c := range plan {
		if c.Kind == model.Settlement {
			require.True(t, oracle.IsPotentialSettlement(g, 0, c.Node))
		}
	}
}

func TestPlanStuffIsSortedDescending(t *testing.T) {
	g, set := newTestGame(t)
	plan := PlanStuff(g, set.For(0), Smart)
	for i := 1; i < len(plan); i++ {
		require.GreaterOrEqual(t, plan[i-1].Score, plan[i].Score)
	}
}

func TestConsiderOfferRejectsWhenNotSelling(t *testing.T) {
	p := New(0)
	hand := model.ResourceSet{Wood: 2}
	offer := message.Offer{Give: model.ResourceSet{Clay: 1}, Get: model.ResourceSet{Wood: 1}}
	require.Equal(t, Reject, p.ConsiderOffer(hand, offer, nil))
}

func TestConsiderOfferAcceptsWhenItUnlocksTop(t *testing.T) {
	p := New(0)
	p.IsSelling[board.Wood] = true
	hand := model.ResourceSet{Ore: 2, Wheat: 2, Wood: 1}
	offer := message.Offer{Give: model.ResourceSet{Ore: 1}, Get: model.ResourceSet{Wood: 1}}
	top := &Candidate{Kind: model.City}
	require.Equal(t, Accept, p.ConsiderOffer(hand, offer, top))
}

func TestConsiderOfferIgnoresWhenUnaffordable(t *testing.T) {
	p := New(0)
	p.IsSelling[board.Wood] = true
	hand := model.ResourceSet{}
	offer := message.Offer{Give: model.ResourceSet{Ore: 1}, Get: model.ResourceSet{Wood: 1}}
	require.Equal(t, Ignore, p.ConsiderOffer(hand, offer, &Candidate{Kind: model.Settlement}))
}

func TestMakeOfferProposesForSingleShortResource(t *testing.T) {
	p := New(0)
	hand := model.ResourceSet{Clay: 1, Sheep: 1, Wheat: 1, Ore: 3}
	target := Candidate{Kind: model.Settlement}
	offer, ok := p.MakeOffer(hand, target, []model.Seat{1, 2, 3})
	require.True(t, ok)
	require.Equal(t, 1, offer.Get.Wood)
}

func TestMakeOfferMarksDoneTradingWhenNotSingleShort(t *testing.T) {
	p := New(0)
	hand := model.ResourceSet{} // short every resource for a settlement
	target := Candidate{Kind: model.Settlement}
	_, ok := p.MakeOffer(hand, target, nil)
	require.False(t, ok)
	require.True(t, p.DoneTrading)
}
