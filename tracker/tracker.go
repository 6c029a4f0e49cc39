// Package tracker maintains, for every seat at the table (including our
// own), a lattice of possible roads, ships, settlements and cities: spots
// that seat could build at given what we currently know of the board. Each
// placement anywhere on the board is reconciled into every tracker in three
// ordered passes, per the opponent/self tracking design: first the lattice
// is brought in line with the new world state, then stale threats are
// cleared, and only then are threats and ETAs recomputed against the
// now-current lattice.
package tracker

import (
	"local/catanbrain/board"
	"local/catanbrain/model"
	"local/catanbrain/oracle"
)

// PossibleSpot is one lattice entry, used for roads, ships, settlements and
// cities alike: a spot this seat could plausibly build at, plus the
// threat/ETA bookkeeping the planner reads when scoring plans.
type PossibleSpot struct {
	// ThreatenedBy lists the other seats whose own lattice also holds this
	// spot. Only settlement spots get threats; it stays empty elsewhere.
	ThreatenedBy []model.Seat
	// ETA is the estimated number of turns until we could build here; lower
	// is sooner. Settlement and city spots derive it from the
	// resource-rarity-weighted dice probability of touching hexes; road and
	// ship spots use a flat 1.
	ETA float64
}

// Tracker owns one seat's lattice across the four buildable kinds.
type Tracker struct {
	Seat model.Seat

	Roads        map[board.EdgeID]PossibleSpot
	Ships        map[board.EdgeID]PossibleSpot
	Settlements  map[board.NodeID]PossibleSpot
	Cities       map[board.NodeID]PossibleSpot
}

func New(seat model.Seat) *Tracker {
	return &Tracker{
		Seat:        seat,
		Roads:       map[board.EdgeID]PossibleSpot{},
		Ships:       map[board.EdgeID]PossibleSpot{},
		Settlements: map[board.NodeID]PossibleSpot{},
		Cities:      map[board.NodeID]PossibleSpot{},
	}
}

// Set is the full collection of per-seat trackers for a game, indexed by
// seat. DummyCancelSeat never owns an entry here.
type Set struct {
	bySeat map[model.Seat]*Tracker
}

func NewSet(numSeats int) *Set {
	s := &Set{bySeat: map[model.Seat]*Tracker{}}
	for i := 0; i < numSeats; i++ {
		s.bySeat[model.Seat(i)] = New(model.Seat(i))
	}
	return s
}

func (s *Set) For(seat model.Seat) *Tracker {
	return s.bySeat[seat]
}

// Rebuild recomputes every tracker's lattice from scratch against g's
// current board and pieces. Called once at game start and after any
// discontinuity (Reset) where incremental reconciliation isn't meaningful.
func (s *Set) Rebuild(g *model.Game) {
	for seat, t := range s.bySeat {
		rebuildLattice(g, seat, t)
	}
	s.recomputeThreatsAndETAs(g)
}

func rebuildLattice(g *model.Game, seat model.Seat, t *Tracker) {
	t.Roads = map[board.EdgeID]PossibleSpot{}
	t.Ships = map[board.EdgeID]PossibleSpot{}
	t.Settlements = map[board.NodeID]PossibleSpot{}
	t.Cities = map[board.NodeID]PossibleSpot{}
	for _, e := range g.Board.Edges {
		if oracle.IsPotentialRoad(g, seat, e.ID) {
			t.Roads[e.ID] = PossibleSpot{}
		}
		if oracle.IsPotentialShip(g, seat, e.ID) {
			t.Ships[e.ID] = PossibleSpot{}
		}
	}
	for _, n := range g.Board.Nodes {
		if oracle.IsPotentialSettlement(g, seat, n.ID) {
			t.Settlements[n.ID] = PossibleSpot{}
		}
		if oracle.IsPotentialCity(g, seat, n.ID) {
			t.Cities[n.ID] = PossibleSpot{}
		}
	}
}

// ReconcilePlacement runs the three-pass update for a real placement (or
// its rejection) at the given coordinate. accepted distinguishes add_new_X
// (true) from cancel_wrong_X (false). No acting seat is passed: every
// tracker applies the same update whoever placed or lost the piece.
func (s *Set) ReconcilePlacement(g *model.Game, kind model.PieceKind, node board.NodeID, edge board.EdgeID, accepted bool) {
	// Pass 1: reconcile every tracker's own lattice with the new fact.
	for _, t := range s.bySeat {
		reconcileOne(g, t, kind, node, edge, accepted)
	}
	// Pass 2: clear stale threat lists.
	for _, t := range s.bySeat {
		clearThreats(t)
	}
	// Pass 3: recompute threats and ETAs against the now-current lattices.
	s.recomputeThreatsAndETAs(g)
}

func reconcileOne(g *model.Game, t *Tracker, kind model.PieceKind, node board.NodeID, edge board.EdgeID, accepted bool) {
	switch kind {
	case model.Road:
		reconcileEdge(g, t, t.Roads, edge, accepted, model.Road)
	case model.Ship:
		reconcileEdge(g, t, t.Ships, edge, accepted, model.Ship)
	case model.Settlement:
		reconcileNode(g, t, t.Settlements, node, accepted, model.Settlement)
		// A new settlement removes every now-adjacent node from every
		// tracker's settlement lattice (the two-away rule), regardless of
		// whose settlement it is.
		if accepted {
			for _, adj := range g.Board.Node(node).Adjacent {
				delete(t.Settlements, adj)
			}
			delete(t.Cities, node) // can't be both yet; recomputed below once owned
		}
	case model.City:
		reconcileNode(g, t, t.Cities, node, accepted, model.City)
	}
}

func reconcileEdge(g *model.Game, t *Tracker, lattice map[board.EdgeID]PossibleSpot, edge board.EdgeID, accepted bool, kind model.PieceKind) {
	if edge == board.NoneEdge {
		return
	}
	if !accepted {
		// cancel_wrong_X: our believed possibility was wrong; drop it and
		// let recompute repopulate anything still genuinely possible.
		delete(lattice, edge)
		return
	}
	// add_new_X: the edge is now built on by someone, so it can no longer
	// be a *possible* spot for this tracker's seat (even the builder's own
	// tracker drops it; a built edge isn't a "possible" edge anymore).
	delete(lattice, edge)
	var isRoad bool
	switch kind {
	case model.Road:
		isRoad = true
	case model.Ship:
		isRoad = false
	}
	// Extend the lattice from the new piece's far endpoint if that endpoint
	// is now a legitimate anchor for this tracker's seat.
	e := g.Board.Edge(edge)
	if e == nil {
		return
	}
	for _, node := range e.Nodes {
		for _, nextEdge := range g.Board.Node(node).Edges {
			if nextEdge == edge {
				continue
			}
			if isRoad && oracle.IsPotentialRoad(g, t.Seat, nextEdge) {
				lattice[nextEdge] = PossibleSpot{}
			}
			if !isRoad && oracle.IsPotentialShip(g, t.Seat, nextEdge) {
				lattice[nextEdge] = PossibleSpot{}
			}
		}
	}
}

func reconcileNode(g *model.Game, t *Tracker, lattice map[board.NodeID]PossibleSpot, node board.NodeID, accepted bool, kind model.PieceKind) {
	if node == board.NoneNode {
		return
	}
	if !accepted {
		delete(lattice, node)
		return
	}
	delete(lattice, node)
}

func clearThreats(t *Tracker) {
	for e, p := range t.Roads {
		p.ThreatenedBy = nil
		t.Roads[e] = p
	}
	for e, p := range t.Ships {
		p.ThreatenedBy = nil
		t.Ships[e] = p
	}
	for n, p := range t.Settlements {
		p.ThreatenedBy = nil
		t.Settlements[n] = p
	}
	for n, p := range t.Cities {
		p.ThreatenedBy = nil
		t.Cities[n] = p
	}
}

// recomputeThreatsAndETAs walks every tracker once the lattices are
// settled: a settlement spot is threatened by any other seat whose
// tracker also lists it as possible (they are racing for the same corner),
// and ETA is the rarity-weighted inverse of the dice pips touching it.
func (s *Set) recomputeThreatsAndETAs(g *model.Game) {
	rarity := oracle.EstimateResourceRarity(g)
	for seat, t := range s.bySeat {
		for n, p := range t.Settlements {
			p.ThreatenedBy = competingSeats(s, seat, n)
			p.ETA = settlementETA(g, rarity, n)
			t.Settlements[n] = p
		}
		for n, p := range t.Cities {
			p.ETA = settlementETA(g, rarity, n)
			t.Cities[n] = p
		}
		for e, p := range t.Roads {
			p.ETA = 1
			t.Roads[e] = p
		}
		for e, p := range t.Ships {
			p.ETA = 1
			t.Ships[e] = p
		}
	}
}

func competingSeats(s *Set, seat model.Seat, node board.NodeID) []model.Seat {
	var out []model.Seat
	for other, t := range s.bySeat {
		if other == seat {
			continue
		}
		if _, ok := t.Settlements[node]; ok {
			out = append(out, other)
		}
	}
	return out
}

// settlementETA scores a node by the scarcity-weighted production of its
// touching hexes: pips on a resource with a low board-wide rarity score
// (scarce) count for more than pips on a common one, and more weighted
// production means a sooner (lower) ETA, expressed as 100 divided by the
// weighted total.
func settlementETA(g *model.Game, rarity map[board.Resource]int, node board.NodeID) float64 {
	total := 0.0
	for _, hid := range g.Board.HexesOf(node) {
		h := g.Board.Hex(hid)
		if h == nil || h.Resource == board.None {
			continue
		}
		pips := board.DicePips(h.DiceNumber)
		total += float64(pips) / float64(rarity[h.Resource])
	}
	if total == 0 {
		return 100
	}
	return 100.0 / total
}
