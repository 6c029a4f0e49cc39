package model

import "local/catanbrain/board"

// Options are the boolean scenario switches named in spec.md §3: sea board,
// 6-player, pirate-islands, 3-initial-placements.
type Options struct {
	SeaBoard               bool
	SixPlayer              bool
	PirateIslands          bool
	ThreeInitialPlacements bool
}

// Game is the Game Model Mirror (C1): a local replica of board, players,
// resources, dev-card inventories, dice, robber/pirate position and current
// phase. It is mutated only by the pure mutators below, invoked by the brain
// (C5) as it applies inbound messages; mutators never fail on well-formed
// input and never perform I/O, per spec.md §4.1.
type Game struct {
	Board *board.Board

	Players []Player

	Phase    Phase
	OldPhase Phase

	CurrentPlayer Seat
	FirstPlayer   Seat

	Dice              int
	DevCardsRemaining int

	Options Options

	// Pieces is the arena of every piece ever placed. Entries are never
	// removed from the slice: a city gets a new entry and the settlement it
	// replaces is marked NoneKind, and UndoPutPiece marks its entry NoneKind
	// too. Handles into this slice are used by trackers instead of pointers,
	// per spec.md §9's arena pattern.
	Pieces []PlacedPiece
}

func NewGame(b *board.Board, numSeats int, opts Options) *Game {
	g := &Game{
		Board:             b,
		Options:           opts,
		DevCardsRemaining: 25,
		CurrentPlayer:     NoneSeat,
		FirstPlayer:       NoneSeat,
	}
	for i := 0; i < numSeats; i++ {
		g.Players = append(g.Players, NewPlayer(Seat(i), ""))
	}
	return g
}

func (g *Game) Player(s Seat) *Player {
	if s < 0 || int(s) >= len(g.Players) {
		return nil
	}
	return &g.Players[s]
}

// SetPhase records the previous phase in OldPhase before overwriting, per
// spec.md §4.1.
func (g *Game) SetPhase(newPhase Phase) {
	g.OldPhase = g.Phase
	g.Phase = newPhase
}

// SetCurrentPlayer updates whose turn it is without touching per-turn state;
// use AdvanceTurn to both rotate and reset per-turn flags.
func (g *Game) SetCurrentPlayer(seat Seat) {
	g.CurrentPlayer = seat
}

// AdvanceTurn clears per-turn flags and rotates to the given seat (the
// server is authoritative about whose turn is next; we never compute it
// ourselves beyond display bookkeeping).
func (g *Game) AdvanceTurn(nextSeat Seat) {
	g.CurrentPlayer = nextSeat
	if p := g.Player(nextSeat); p != nil {
		p.resetPerTurnFlags()
	}
}

// ApplyPutPiece places a piece with no legality check — that is the
// server's job, per spec.md §4.1. Returns the new piece's handle.
func (g *Game) ApplyPutPiece(seat Seat, kind PieceKind, node board.NodeID, edge board.EdgeID) PieceID {
	id := PieceID(len(g.Pieces))
	g.Pieces = append(g.Pieces, PlacedPiece{ID: id, Kind: kind, Owner: seat, Node: node, Edge: edge})
	if p := g.Player(seat); p != nil {
		p.PlacedPieceIDs = append(p.PlacedPieceIDs, id)
		switch kind {
		case Road:
			p.RoadsAvailable--
		case Ship:
			p.ShipsAvailable--
		case Settlement:
			p.SettlementsAvailable--
			if port := g.Board.Node(node).Port; port != board.NonePort {
				if port == board.ThreeForOne {
					p.PortThreeForOne = true
				} else {
					p.PortResource[portResource(port)] = true
				}
			}
		case City:
			p.CitiesAvailable--
			p.SettlementsAvailable++
			g.removeSettlementAt(seat, node)
		}
	}
	return id
}

// UndoPutPiece reverses one ApplyPutPiece: it restores inventory counts,
// removes the handle from the player's list and marks the arena slot
// NoneKind. The slot stays in Game.Pieces, so the arena does not shrink.
// Undoing a city appends a new Settlement entry at the node instead of
// reviving the one the city replaced. Only tests call it.
func (g *Game) UndoPutPiece(id PieceID) {
	if int(id) < 0 || int(id) >= len(g.Pieces) {
		return
	}
	pc := g.Pieces[id]
	p := g.Player(pc.Owner)
	if p == nil {
		return
	}
	switch pc.Kind {
	case Road:
		p.RoadsAvailable++
	case Ship:
		p.ShipsAvailable++
	case Settlement:
		p.SettlementsAvailable++
		if port := g.Board.Node(pc.Node).Port; port != board.NonePort {
			if port == board.ThreeForOne {
				p.PortThreeForOne = false
			} else {
				delete(p.PortResource, portResource(port))
			}
		}
	case City:
		p.CitiesAvailable++
		p.SettlementsAvailable--
		g.Pieces = append(g.Pieces, PlacedPiece{ID: PieceID(len(g.Pieces)), Kind: Settlement, Owner: pc.Owner, Node: pc.Node})
	}
	for i, pid := range p.PlacedPieceIDs {
		if pid == id {
			p.PlacedPieceIDs = append(p.PlacedPieceIDs[:i], p.PlacedPieceIDs[i+1:]...)
			break
		}
	}
	g.Pieces[id] = PlacedPiece{ID: id, Kind: NoneKind}
}

func (g *Game) removeSettlementAt(seat Seat, node board.NodeID) {
	for i, id := range g.Pieces {
		if id.Owner == seat && id.Kind == Settlement && id.Node == node {
			g.Pieces[i].Kind = NoneKind
			return
		}
	}
}

func portResource(p board.PortType) board.Resource {
	switch p {
	case board.ClayPort:
		return board.Clay
	case board.OrePort:
		return board.Ore
	case board.SheepPort:
		return board.Sheep
	case board.WheatPort:
		return board.Wheat
	case board.WoodPort:
		return board.Wood
	}
	return board.None
}

// ApplyMovePiece relocates a ship from one edge to another (ships only, per
// spec.md §4.1).
func (g *Game) ApplyMovePiece(seat Seat, from, to board.EdgeID) {
	for i := range g.Pieces {
		pc := &g.Pieces[i]
		if pc.Owner == seat && pc.Kind == Ship && pc.Edge == from {
			pc.Edge = to
			return
		}
	}
}

func (g *Game) ApplyDice(n int) {
	g.Dice = n
}

// ApplyRobberOrPirateHex moves the robber, or the pirate if coded is
// negative (spec.md §4.1: "a negative incoming coordinate is a pirate
// move"). The encoding is coded = hex for the robber, coded = -hex-1 for the
// pirate, so hex 0 is still representable on the pirate side.
func (g *Game) ApplyRobberOrPirateHex(coded int) {
	if coded >= 0 {
		g.Board.RobberHex = board.HexID(coded)
	} else {
		g.Board.PirateHex = board.HexID(-coded - 1)
	}
}

// ApplyPlayerElement updates a single resource or counter with SET/GAIN/LOSE
// semantics. Losing more of a resource than we believe a player holds debits
// the excess from that player's Unknown pool (spec.md §3/§4.1).
func (g *Game) ApplyPlayerElement(seat Seat, field ElementField, op ElementOp, value int) {
	p := g.Player(seat)
	if p == nil {
		return
	}
	if res, ok := field.resource(); ok {
		switch op {
		case SET:
			p.Hand.Set(res, value)
		case GAIN:
			p.Hand.Add(res, value)
		case LOSE:
			p.Hand.Lose(res, value)
		}
		return
	}
	switch field {
	case FieldUnknown:
		switch op {
		case SET:
			p.Hand.Unknown = value
		case GAIN:
			p.Hand.Unknown += value
		case LOSE:
			p.Hand.Unknown -= value
			if p.Hand.Unknown < 0 {
				p.Hand.Unknown = 0
			}
		}
	case FieldRoadsAvailable:
		p.RoadsAvailable = applyOp(p.RoadsAvailable, op, value)
	case FieldShipsAvailable:
		p.ShipsAvailable = applyOp(p.ShipsAvailable, op, value)
	case FieldSettlementsAvailable:
		p.SettlementsAvailable = applyOp(p.SettlementsAvailable, op, value)
	case FieldCitiesAvailable:
		p.CitiesAvailable = applyOp(p.CitiesAvailable, op, value)
	case FieldKnightsPlayed:
		p.KnightsPlayed = applyOp(p.KnightsPlayed, op, value)
	}
}

func applyOp(cur int, op ElementOp, value int) int {
	switch op {
	case SET:
		return value
	case GAIN:
		return cur + value
	case LOSE:
		r := cur - value
		if r < 0 {
			r = 0
		}
		return r
	}
	return cur
}

// ApplyResourceCountAssert flattens the seat's hand to all-Unknown of total
// if it disagrees with our mirror. Returns true if a mismatch was found, so
// the brain can log it (spec.md §3 invariant / §7 error taxonomy #2).
func (g *Game) ApplyResourceCountAssert(seat Seat, total int) (mismatched bool) {
	p := g.Player(seat)
	if p == nil {
		return false
	}
	if p.Hand.Total() == total {
		return false
	}
	p.Hand.Flatten(total)
	return true
}

// ApplyDevCardAction mutates a player's dev card inventory: Draw adds to
// new-this-turn, Play moves one from playable-now and marks the turn flag,
// AddOld/AddNew are used for corrective server messages.
func (g *Game) ApplyDevCardAction(seat Seat, kind DevCardType, op DevCardOp) {
	p := g.Player(seat)
	if p == nil {
		return
	}
	switch op {
	case Draw:
		p.DevCardsNewThisTurn[kind]++
		g.DevCardsRemaining--
	case PlayCard:
		if p.DevCardsPlayableNow[kind] > 0 {
			p.DevCardsPlayableNow[kind]--
		}
		p.PlayedDevCardThisTurn = true
		if kind == Knight {
			p.KnightsPlayed++
		}
	case AddOld:
		p.DevCardsPlayableNow[kind]++
	case AddNew:
		p.DevCardsNewThisTurn[kind]++
	}
}

func (g *Game) ApplyDevCardCount(n int) {
	g.DevCardsRemaining = n
}
