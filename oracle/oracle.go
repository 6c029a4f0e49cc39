// Package oracle answers read-only questions about a model.Game: what is
// legal to build where, what a move would cost, and how good a hex or a
// resource is. Oracle functions never mutate the Game and never perform I/O;
// they are the brain's only way of reasoning about board legality without
// duplicating the server's own rule engine.
package oracle

import (
	"local/catanbrain/board"
	"local/catanbrain/model"
)

// IsPotentialSettlement reports whether seat could legally build a
// settlement at node, ignoring turn order and resources: the node and every
// neighboring node must be empty, and (outside initial placement) node must
// touch one of seat's own roads or ships.
func IsPotentialSettlement(g *model.Game, seat model.Seat, node board.NodeID) bool {
	n := g.Board.Node(node)
	if n == nil {
		return false
	}
	if occupied(g, node) {
		return false
	}
	for _, adj := range n.Adjacent {
		if occupied(g, adj) {
			return false
		}
	}
	if g.Phase.IsInitialPlacement() {
		return true
	}
	return hasOwnRoadOrShipTouching(g, seat, node)
}

// IsPotentialCity reports whether seat has a settlement at node that could
// be upgraded to a city.
func IsPotentialCity(g *model.Game, seat model.Seat, node board.NodeID) bool {
	for _, pc := range g.Pieces {
		if pc.Kind == model.Settlement && pc.Owner == seat && pc.Node == node {
			return true
		}
	}
	return false
}

// IsPotentialRoad reports whether seat could legally place a road on edge:
// the edge must be empty and one of its ends must be an anchor for seat, as
// nodeBlocksRoute defines it (an own settlement or city, or an own road or
// ship on another edge there). Opponent settlements at a junction are not
// checked.
func IsPotentialRoad(g *model.Game, seat model.Seat, edge board.EdgeID) bool {
	return isPotentialRoute(g, seat, edge, model.Road)
}

// IsPotentialShip reports the same as IsPotentialRoad but for ships, which
// require a coastal edge (one touching fewer than two land hexes) and the
// sea-board option. Without that option it is always false.
func IsPotentialShip(g *model.Game, seat model.Seat, edge board.EdgeID) bool {
	return isPotentialRoute(g, seat, edge, model.Ship)
}

func isPotentialRoute(g *model.Game, seat model.Seat, edge board.EdgeID, kind model.PieceKind) bool {
	e := g.Board.Edge(edge)
	if e == nil {
		return false
	}
	if kind == model.Ship && (!g.Options.SeaBoard || len(e.Hexes) > 1) {
		return false
	}
	for _, pc := range g.Pieces {
		if pc.Kind == model.NoneKind {
			continue
		}
		if (pc.Kind == model.Road || pc.Kind == model.Ship) && pc.Edge == edge {
			return false
		}
	}
	for _, node := range e.Nodes {
		if nodeBlocksRoute(g, seat, node) {
			return true
		}
	}
	return false
}

// nodeBlocksRoute reports whether node gives seat a valid route anchor: an
// own settlement/city there, or an own road/ship on another edge touching
// it (an opposing settlement at the corner cuts the route, per the standard
// rule, but we model that conservatively by only granting anchors, never
// denying through foreign pieces, since full interruption logic belongs to
// the server).
func nodeBlocksRoute(g *model.Game, seat model.Seat, node board.NodeID) bool {
	for _, pc := range g.Pieces {
		if pc.Owner != seat {
			continue
		}
		switch pc.Kind {
		case model.Settlement, model.City:
			if pc.Node == node {
				return true
			}
		case model.Road, model.Ship:
			e := g.Board.Edge(pc.Edge)
			if e != nil && (e.Nodes[0] == node || e.Nodes[1] == node) {
				return true
			}
		}
	}
	return false
}

func occupied(g *model.Game, node board.NodeID) bool {
	for _, pc := range g.Pieces {
		if pc.Node == node && (pc.Kind == model.Settlement || pc.Kind == model.City) {
			return true
		}
	}
	return false
}

func hasOwnRoadOrShipTouching(g *model.Game, seat model.Seat, node board.NodeID) bool {
	return nodeBlocksRoute(g, seat, node)
}

// ResourcesToBuild returns the standing cost of kind; a thin wrapper kept in
// oracle so callers reason about "what would it cost" without reaching into
// model directly.
func ResourcesToBuild(kind model.PieceKind) model.ResourceSet {
	return model.StandardCost(kind)
}

// MayPlayKnight reports whether seat may legally play a Knight card: one
// available from last turn or earlier, and no dev card already played this
// turn.
func MayPlayKnight(g *model.Game, seat model.Seat) bool {
	return mayPlayDevCard(g, seat, model.Knight)
}

// MayPlayRoadBuilding reports whether seat may legally play a Road Building
// card.
func MayPlayRoadBuilding(g *model.Game, seat model.Seat) bool {
	return mayPlayDevCard(g, seat, model.RoadBuilding)
}

// MayPlayYearOfPlenty reports whether seat may legally play a Year of
// Plenty card.
func MayPlayYearOfPlenty(g *model.Game, seat model.Seat) bool {
	return mayPlayDevCard(g, seat, model.YearOfPlenty)
}

// MayPlayMonopoly reports whether seat may legally play a Monopoly card.
func MayPlayMonopoly(g *model.Game, seat model.Seat) bool {
	return mayPlayDevCard(g, seat, model.Monopoly)
}

func mayPlayDevCard(g *model.Game, seat model.Seat, kind model.DevCardType) bool {
	p := g.Player(seat)
	if p == nil {
		return false
	}
	if p.PlayedDevCardThisTurn {
		return false
	}
	return p.DevCardsPlayableNow[kind] > 0
}

// DiceProbabilityForHex returns the relative production weight (dice pips)
// of the hex's number, 0 for the desert or an invalid hex.
func DiceProbabilityForHex(g *model.Game, hex board.HexID) int {
	h := g.Board.Hex(hex)
	if h == nil {
		return 0
	}
	return board.DicePips(h.DiceNumber)
}

// EstimateResourceRarity scores each resource by the total dice pips of
// hexes producing it on the board still in play; a lower score means a
// scarcer resource this game. The trackers and the brain's initial placement
// use it to weight settlement spots toward scarce-producing hexes, and the
// brain uses it for free-resource picks when it has no plan.
func EstimateResourceRarity(g *model.Game) map[board.Resource]int {
	out := map[board.Resource]int{}
	for _, res := range board.AllResources {
		out[res] = 0
	}
	for _, h := range g.Board.Hexes {
		if h.Resource == board.None {
			continue
		}
		out[h.Resource] += board.DicePips(h.DiceNumber)
	}
	for res, pips := range out {
		if pips == 0 {
			// No hex produces this resource at all this game; treat it as
			// maximally rare rather than zero so planners don't divide by
			// zero when computing a rarity-weighted score.
			out[res] = 1
		}
	}
	return out
}

// IsInitialPlacement reports whether the game's current phase is one of the
// initial-settlement/road placement rounds.
func IsInitialPlacement(g *model.Game) bool {
	return g.Phase.IsInitialPlacement()
}

// IsSpecialBuilding reports whether the game is currently in the special
// building phase (6+ player scenario).
func IsSpecialBuilding(g *model.Game) bool {
	return g.Phase == model.SpecialBuilding
}

// CanAttackPirateFortress reports whether seat has a ship adjacent to hex
// and hex carries a pirate-islands fortress, per the scenario's attack
// precondition.
func CanAttackPirateFortress(g *model.Game, seat model.Seat, hex board.HexID) bool {
	h := g.Board.Hex(hex)
	if h == nil || !h.Fortress {
		return false
	}
	for _, node := range h.Nodes {
		if node == board.NoneNode {
			continue
		}
		n := g.Board.Node(node)
		if n == nil {
			continue
		}
		for _, eid := range n.Edges {
			for _, pc := range g.Pieces {
				if pc.Owner == seat && pc.Kind == model.Ship && pc.Edge == eid {
					return true
				}
			}
		}
	}
	return false
}
