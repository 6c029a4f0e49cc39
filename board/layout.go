package board

import (
	"math"
	"math/rand"
)

// NewStandard builds the classic 19-hex, 4-player Catan board: a hexagon of
// radius 2 in cube coordinates, standard resource/number distribution, and
// nine ports around the coast. rng controls the shuffle of tiles, numbers
// and ports, so tests can pass a seeded source for determinism.
func NewStandard(rng *rand.Rand) *Board {
	coords := hexagonOfRadius(2)
	resources := standardResourceBag()
	numbers := standardNumberBag()
	rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })

	b := &Board{}
	nodeKey := map[cornerKey]NodeID{}
	edgeKey := map[[2]NodeID]EdgeID{}

	resIdx, numIdx := 0, 0
	for i, c := range coords {
		h := Hex{ID: HexID(i), Coord: c}
		res := resources[resIdx]
		resIdx++
		h.Resource = res
		if res == None {
			h.DiceNumber = 0
			b.RobberHex = h.ID
		} else {
			h.DiceNumber = numbers[numIdx]
			numIdx++
		}

		corners := hexCorners(c)
		for k := 0; k < 6; k++ {
			key := snapCorner(corners[k])
			nid, ok := nodeKey[key]
			if !ok {
				nid = NodeID(len(b.Nodes))
				b.Nodes = append(b.Nodes, Node{ID: nid})
				nodeKey[key] = nid
			}
			h.Nodes[k] = nid
			n := &b.Nodes[nid]
			if !containsHex(n.Hexes, h.ID) {
				n.Hexes = append(n.Hexes, h.ID)
			}
		}

		for k := 0; k < 6; k++ {
			a, c2 := h.Nodes[k], h.Nodes[(k+1)%6]
			ek := edgeKeyOf(a, c2)
			eid, ok := edgeKey[ek]
			if !ok {
				eid = EdgeID(len(b.Edges))
				b.Edges = append(b.Edges, Edge{ID: eid, Nodes: [2]NodeID{a, c2}})
				edgeKey[ek] = eid
				na, nc := &b.Nodes[a], &b.Nodes[c2]
				na.Edges = append(na.Edges, eid)
				nc.Edges = append(nc.Edges, eid)
				na.Adjacent = append(na.Adjacent, c2)
				nc.Adjacent = append(nc.Adjacent, a)
			}
			h.Edges[k] = eid
			e := &b.Edges[eid]
			if !containsHex(e.Hexes, h.ID) {
				e.Hexes = append(e.Hexes, h.ID)
			}
		}

		b.Hexes = append(b.Hexes, h)
	}

	b.PirateHex = NoneHex
	assignPorts(b, rng)
	return b
}

func hexagonOfRadius(r int) []CubeCoord {
	coords := []CubeCoord{}
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			z := -x - y
			if z < -r || z > r {
				continue
			}
			coords = append(coords, CubeCoord{x, y, z})
		}
	}
	return coords
}

func standardResourceBag() []Resource {
	return []Resource{
		None,
		Clay, Clay, Clay,
		Ore, Ore, Ore,
		Sheep, Sheep, Sheep, Sheep,
		Wheat, Wheat, Wheat, Wheat,
		Wood, Wood, Wood, Wood,
	}
}

func standardNumberBag() []int {
	return []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}
}

// cornerKey is a rounded pixel coordinate used to merge the same physical
// corner shared by up to three adjacent hexes.
type cornerKey struct {
	X, Y int
}

const hexSize = 100.0

func hexCenter(c CubeCoord) (float64, float64) {
	q, r := float64(c.X), float64(c.Z)
	x := hexSize * math.Sqrt(3) * (q + r/2)
	y := hexSize * 1.5 * r
	return x, y
}

func hexCorners(c CubeCoord) [6][2]float64 {
	cx, cy := hexCenter(c)
	var corners [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi / 180 * float64(60*i-30)
		corners[i] = [2]float64{cx + hexSize*math.Cos(angle), cy + hexSize*math.Sin(angle)}
	}
	return corners
}

func snapCorner(p [2]float64) cornerKey {
	return cornerKey{int(math.Round(p[0] * 10)), int(math.Round(p[1] * 10))}
}

func edgeKeyOf(a, b NodeID) [2]NodeID {
	if a < b {
		return [2]NodeID{a, b}
	}
	return [2]NodeID{b, a}
}

func containsHex(hs []HexID, h HexID) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}

// assignPorts walks the coastal edges (edges touching exactly one hex) in
// angular order around the board and assigns the nine standard ports,
// spacing them evenly.
type coastalEdge struct {
	edge  EdgeID
	angle float64
}

func assignPorts(b *Board, rng *rand.Rand) {
	var coast []coastalEdge
	for _, e := range b.Edges {
		if len(e.Hexes) != 1 {
			continue
		}
		hx := b.Hexes[e.Hexes[0]]
		cx, cy := hexCenter(hx.Coord)
		angle := math.Atan2(cy, cx)
		coast = append(coast, coastalEdge{e.ID, angle})
	}
	if len(coast) == 0 {
		return
	}
	sortCoastalByAngle(coast)

	types := []PortType{ThreeForOne, ClayPort, ThreeForOne, SheepPort, ThreeForOne, WheatPort, ThreeForOne, OrePort, WoodPort}
	rng.Shuffle(len(types), func(i, j int) { types[i], types[j] = types[j], types[i] })

	step := len(coast) / len(types)
	if step == 0 {
		step = 1
	}
	ti := 0
	for i := 0; i < len(coast) && ti < len(types); i += step {
		e := b.Edges[coast[i].edge]
		b.Nodes[e.Nodes[0]].Port = types[ti]
		b.Nodes[e.Nodes[1]].Port = types[ti]
		ti++
	}
}

func sortCoastalByAngle(c []coastalEdge) {
	for i := 1; i < len(c); i++ {
		j := i
		for j > 0 && c[j-1].angle > c[j].angle {
			c[j-1], c[j] = c[j], c[j-1]
			j--
		}
	}
}
