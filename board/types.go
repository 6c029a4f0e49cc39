// Package board models the hex graph a game is played on: hexes, the nodes
// (corners) and edges between them, dice numbers, ports, and the
// robber/pirate positions. It holds no player state; it is pure geometry
// plus the static per-game assignment of resources, numbers and ports.
package board

// Resource identifies one of the five production resources, or a hex that
// produces nothing (desert).
type Resource int

const (
	None Resource = iota
	Clay
	Ore
	Sheep
	Wheat
	Wood
)

var ResourceNames = map[Resource]string{
	None:  "Desert",
	Clay:  "Clay",
	Ore:   "Ore",
	Sheep: "Sheep",
	Wheat: "Wheat",
	Wood:  "Wood",
}

// AllResources enumerates the five tradeable resources, excluding None.
var AllResources = []Resource{Clay, Ore, Sheep, Wheat, Wood}

// PortType identifies a trading port. ThreeForOne accepts any resource;
// the rest accept only their named resource at 2:1.
type PortType int

const (
	NonePort PortType = iota
	ThreeForOne
	ClayPort
	OrePort
	SheepPort
	WheatPort
	WoodPort
)

// NodeID and EdgeID are small-integer arena handles into Board.Nodes and
// Board.Edges, per the arena-storage pattern: no back-pointers, no cycles.
type NodeID int
type EdgeID int
type HexID int

const NoneNode NodeID = -1
const NoneEdge EdgeID = -1
const NoneHex HexID = -1

// CubeCoord is a cube hex coordinate (x+y+z == 0).
type CubeCoord struct {
	X, Y, Z int
}

type Hex struct {
	ID         HexID
	Coord      CubeCoord
	Resource   Resource
	DiceNumber int // 0 on the desert hex
	Nodes      [6]NodeID
	Edges      [6]EdgeID
	Fortress   bool // scenario: pirate-islands fortress hex
}

type Node struct {
	ID        NodeID
	Hexes     []HexID
	Edges     []EdgeID
	Adjacent  []NodeID
	Port      PortType
}

type Edge struct {
	ID    EdgeID
	Nodes [2]NodeID
	Hexes []HexID
}

// Board is the static geometry plus the mutable robber/pirate position. The
// rest of a game's mutable state (pieces, players, phase) lives in model.Game;
// Board only tracks what is intrinsic to the map.
type Board struct {
	Hexes []Hex
	Nodes []Node
	Edges []Edge

	RobberHex HexID
	PirateHex HexID // NoneHex unless a sea-board scenario is active
}

// DicePips returns the relative production weight of a dice number (number of
// ways to roll it with two six-sided dice), used for ETA and rarity estimates.
func DicePips(n int) int {
	switch n {
	case 2, 12:
		return 1
	case 3, 11:
		return 2
	case 4, 10:
		return 3
	case 5, 9:
		return 4
	case 6, 8:
		return 5
	default:
		return 0
	}
}

func (b *Board) Hex(id HexID) *Hex {
	if id == NoneHex || int(id) < 0 || int(id) >= len(b.Hexes) {
		return nil
	}
	return &b.Hexes[id]
}

func (b *Board) Node(id NodeID) *Node {
	if id == NoneNode || int(id) < 0 || int(id) >= len(b.Nodes) {
		return nil
	}
	return &b.Nodes[id]
}

func (b *Board) Edge(id EdgeID) *Edge {
	if id == NoneEdge || int(id) < 0 || int(id) >= len(b.Edges) {
		return nil
	}
	return &b.Edges[id]
}

// EdgeBetween returns the edge connecting a and b, or NoneEdge if they are
// not adjacent.
func (b *Board) EdgeBetween(a, c NodeID) EdgeID {
	for _, eid := range b.Nodes[a].Edges {
		e := b.Edges[eid]
		if e.Nodes[0] == c || e.Nodes[1] == c {
			return eid
		}
	}
	return NoneEdge
}

// OtherEnd returns the node at the far end of edge e from n.
func (b *Board) OtherEnd(e EdgeID, n NodeID) NodeID {
	edge := b.Edges[e]
	if edge.Nodes[0] == n {
		return edge.Nodes[1]
	}
	return edge.Nodes[0]
}

// HexesOf returns the hexes touching a node, the desert included.
func (b *Board) HexesOf(n NodeID) []HexID {
	return b.Nodes[n].Hexes
}
