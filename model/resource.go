package model

import "local/catanbrain/board"

// ResourceSet is a resource hand: counts of the five tradeable resources
// plus an "unknown" catch-all used for opponents whose exact composition is
// hidden from us. Per spec.md §3, the unknown count is only meaningful for
// opponent hands; our own hand must always match the server's asserted
// counts exactly.
type ResourceSet struct {
	Clay, Ore, Sheep, Wheat, Wood int
	Unknown                       int
}

func (r ResourceSet) Get(res board.Resource) int {
	switch res {
	case board.Clay:
		return r.Clay
	case board.Ore:
		return r.Ore
	case board.Sheep:
		return r.Sheep
	case board.Wheat:
		return r.Wheat
	case board.Wood:
		return r.Wood
	}
	return 0
}

func (r *ResourceSet) Set(res board.Resource, v int) {
	switch res {
	case board.Clay:
		r.Clay = v
	case board.Ore:
		r.Ore = v
	case board.Sheep:
		r.Sheep = v
	case board.Wheat:
		r.Wheat = v
	case board.Wood:
		r.Wood = v
	}
}

func (r *ResourceSet) Add(res board.Resource, n int) {
	r.Set(res, r.Get(res)+n)
}

// Lose removes n of res, debiting any shortfall from Unknown so the total
// count never goes negative for a field we don't have full information on.
// Returns the amount that had to come from Unknown.
func (r *ResourceSet) Lose(res board.Resource, n int) int {
	have := r.Get(res)
	taken := n
	if taken > have {
		taken = have
	}
	r.Set(res, have-taken)
	shortfall := n - taken
	if shortfall > 0 {
		r.Unknown -= shortfall
		if r.Unknown < 0 {
			r.Unknown = 0
		}
	}
	return shortfall
}

func (r ResourceSet) Total() int {
	return r.Clay + r.Ore + r.Sheep + r.Wheat + r.Wood + r.Unknown
}

// Flatten collapses the whole hand into Unknown of the given total. Used
// when a ResourceCount assertion from the server disagrees with our mirror
// of an opponent's hand (spec.md §3 invariant).
func (r *ResourceSet) Flatten(total int) {
	*r = ResourceSet{Unknown: total}
}

// CanAfford reports whether r contains at least cost of every resource.
func (r ResourceSet) CanAfford(cost ResourceSet) bool {
	return r.Clay >= cost.Clay && r.Ore >= cost.Ore && r.Sheep >= cost.Sheep &&
		r.Wheat >= cost.Wheat && r.Wood >= cost.Wood
}

func (r *ResourceSet) SubCost(cost ResourceSet) {
	r.Clay -= cost.Clay
	r.Ore -= cost.Ore
	r.Sheep -= cost.Sheep
	r.Wheat -= cost.Wheat
	r.Wood -= cost.Wood
}

func (r *ResourceSet) AddCost(cost ResourceSet) {
	r.Clay += cost.Clay
	r.Ore += cost.Ore
	r.Sheep += cost.Sheep
	r.Wheat += cost.Wheat
	r.Wood += cost.Wood
}

// Equal compares only the five known fields; Unknown is deliberately
// excluded since it has no server-side analogue to compare against.
func (r ResourceSet) Equal(o ResourceSet) bool {
	return r.Clay == o.Clay && r.Ore == o.Ore && r.Sheep == o.Sheep &&
		r.Wheat == o.Wheat && r.Wood == o.Wood
}
