// Package sampling implements the 3D (offset, speed, horizon) sampling grid
// and its fix/heuristic cost model: spec §4.C.
package sampling

import "github.com/motionstack/frenetplan/frenet"

// Cell is one grid seed: an end state plus the precomputable costs, the
// lifecycle flags from spec §3 (is_generated / is_used), a lane tag, and
// (once materialized) the real candidate trajectory.
type Cell struct {
	End           frenet.EndState
	LaneID        int
	FixCost       float64
	HeuristicCost float64
	IsGenerated   bool
	IsUsed        bool
	Path          *frenet.Path
}

// Index identifies one cell by its three grid coordinates.
type Index struct {
	I, J, K int
}

// Grid is the dense Nw x Nv x Nt array of sampling-engine seeds (spec §3:
// "Sampling grid").
type Grid struct {
	Nw, Nv, Nt int
	cells      []Cell
}

func newGrid(nw, nv, nt int) *Grid {
	return &Grid{Nw: nw, Nv: nv, Nt: nt, cells: make([]Cell, nw*nv*nt)}
}

func (g *Grid) flatten(idx Index) int {
	return (idx.I*g.Nv+idx.J)*g.Nt + idx.K
}

// At returns a pointer to the cell at idx, suitable for mutation (marking
// is_used/is_generated, storing the materialized Path).
func (g *Grid) At(idx Index) *Cell {
	return &g.cells[g.flatten(idx)]
}

// InBounds reports whether idx names a valid cell.
func (g *Grid) InBounds(idx Index) bool {
	return idx.I >= 0 && idx.I < g.Nw &&
		idx.J >= 0 && idx.J < g.Nv &&
		idx.K >= 0 && idx.K < g.Nt
}

// Size returns the total number of cells, Nw*Nv*Nt.
func (g *Grid) Size() int {
	return g.Nw * g.Nv * g.Nt
}
