package model

import "local/catanbrain/board"

// PieceKind enumerates everything that can be built or bought, including
// the non-board "pieces" (dev cards, special items) the planner treats
// uniformly as candidates per spec.md's Possible Piece data model.
type PieceKind int

const (
	NoneKind PieceKind = iota
	Road
	Ship
	Settlement
	City
	BuyDevCard
	PickSpecialItem
)

var PieceKindNames = map[PieceKind]string{
	NoneKind:        "None",
	Road:            "Road",
	Ship:            "Ship",
	Settlement:      "Settlement",
	City:            "City",
	BuyDevCard:      "BuyDevCard",
	PickSpecialItem: "PickSpecialItem",
}

// IsBoardPiece reports whether a kind occupies a node or edge (as opposed to
// buy-dev-card/pick-special-item, which have no board coordinate).
func (k PieceKind) IsBoardPiece() bool {
	return k == Road || k == Ship || k == Settlement || k == City
}

// PlacedPiece is an arena entry: Game.Pieces is a flat slice and everything
// else (trackers, brain) refers to a placement by its PieceID handle rather
// than holding a pointer, per spec.md §9's arena-storage design note.
type PieceID int

const NonePiece PieceID = -1

type PlacedPiece struct {
	ID    PieceID
	Kind  PieceKind
	Owner Seat
	Node  board.NodeID // valid for Settlement/City
	Edge  board.EdgeID // valid for Road/Ship
}

// StandardCost is the fixed resource cost to build or buy a piece kind.
func StandardCost(kind PieceKind) ResourceSet {
	switch kind {
	case Road:
		return ResourceSet{Clay: 1, Wood: 1}
	case Ship:
		return ResourceSet{Sheep: 1, Wood: 1}
	case Settlement:
		return ResourceSet{Clay: 1, Sheep: 1, Wheat: 1, Wood: 1}
	case City:
		return ResourceSet{Ore: 3, Wheat: 2}
	case BuyDevCard:
		return ResourceSet{Ore: 1, Sheep: 1, Wheat: 1}
	default:
		return ResourceSet{}
	}
}

// DevCardType enumerates development cards.
type DevCardType int

const (
	NoneDevCard DevCardType = iota
	Knight
	RoadBuilding
	YearOfPlenty
	Monopoly
	VictoryPoint
)

var DevCardNames = map[DevCardType]string{
	NoneDevCard:  "None",
	Knight:       "Knight",
	RoadBuilding: "RoadBuilding",
	YearOfPlenty: "YearOfPlenty",
	Monopoly:     "Monopoly",
	VictoryPoint: "VictoryPoint",
}

type DevCardOp int

const (
	Draw DevCardOp = iota
	PlayCard
	AddOld
	AddNew
)

// ElementField names a single mutable scalar on a Player that
// ApplyPlayerElement can SET/GAIN/LOSE.
type ElementField int

const (
	FieldClay ElementField = iota
	FieldOre
	FieldSheep
	FieldWheat
	FieldWood
	FieldUnknown
	FieldRoadsAvailable
	FieldShipsAvailable
	FieldSettlementsAvailable
	FieldCitiesAvailable
	FieldKnightsPlayed
)

type ElementOp int

const (
	SET ElementOp = iota
	GAIN
	LOSE
)

func (f ElementField) resource() (board.Resource, bool) {
	switch f {
	case FieldClay:
		return board.Clay, true
	case FieldOre:
		return board.Ore, true
	case FieldSheep:
		return board.Sheep, true
	case FieldWheat:
		return board.Wheat, true
	case FieldWood:
		return board.Wood, true
	}
	return board.None, false
}
