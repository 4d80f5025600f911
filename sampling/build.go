package sampling

import (
	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
)

// Axes holds the three sampled coordinate spaces (lateral offset, end
// speed, horizon) computed once per planning call.
type Axes struct {
	D []float64
	V []float64
	T []float64
}

// laneBand classifies a lateral offset into a lane_id (spec glossary: "used
// by callers for downstream selection"). See DESIGN.md Open Question 3: a
// three-band split relative to center_offset, sized to the lateral grid
// spacing.
func laneBand(d, centerOffset, deltaW float64) int {
	switch {
	case d > centerOffset+deltaW/2:
		return 0 // left of center
	case d < centerOffset-deltaW/2:
		return 2 // right of center
	default:
		return 1 // center band
	}
}

// Build enumerates the (d, v, T) grid exactly per spec §4.C and returns it
// along with the seed index idx* = argmin(fix_cost + heuristic_cost).
//
// leftWidth and rightWidth are positive lane-width magnitudes (spec §6);
// internally the right boundary is the negative-d side since d is signed
// with left positive.
func Build(cfg config.Configuration, leftWidth, rightWidth, currentSpeed float64, start frenet.State) (*Grid, Index, Axes) {
	nw, nv, nt := cfg.NumWidth, cfg.NumSpeed, cfg.NumT

	leftBoundary := leftWidth
	rightBoundary := -rightWidth
	deltaW := (leftBoundary - cfg.CenterOffset) / (float64(nw-1) / 2)

	axes := Axes{
		D: make([]float64, nw),
		V: make([]float64, nv),
		T: make([]float64, nt),
	}
	for i := 0; i < nw; i++ {
		axes.D[i] = rightBoundary + float64(i)*deltaW
	}
	speedStep := (cfg.HighestSpeed - cfg.LowestSpeed) / float64(nv-1)
	for j := 0; j < nv; j++ {
		axes.V[j] = cfg.LowestSpeed + float64(j)*speedStep
	}
	tStep := (cfg.MaxT - cfg.MinT) / float64(nt-1)
	for k := 0; k < nt; k++ {
		axes.T[k] = cfg.MinT + float64(k)*tStep
	}

	latDenom := maxFloat(sq(leftBoundary-cfg.CenterOffset), sq(rightBoundary-cfg.CenterOffset))

	grid := newGrid(nw, nv, nt)
	best := Index{}
	bestCost := 0.0
	first := true

	for i := 0; i < nw; i++ {
		d := axes.D[i]
		lane := laneBand(d, cfg.CenterOffset, deltaW)
		latCost := sq(d-cfg.CenterOffset) / latDenom
		hurCost := cfg.KLat * cfg.KDiff * sq(start.D-d)

		for j := 0; j < nv; j++ {
			v := axes.V[j]
			speedCost := sq(cfg.HighestSpeed-v) + 0.5*sq(currentSpeed-v)

			for k := 0; k < nt; k++ {
				t := axes.T[k]
				timeCost := 1 - t/cfg.MaxT
				fixCost := cfg.KLat*cfg.KDiff*latCost + cfg.KLon*(cfg.KTime*timeCost+cfg.KDiff*speedCost)

				idx := Index{I: i, J: j, K: k}
				cell := grid.At(idx)
				cell.End = frenet.EndState{D: d, V: v, T: t}
				cell.LaneID = lane
				cell.FixCost = fixCost
				cell.HeuristicCost = hurCost

				total := fixCost + hurCost
				if first || total < bestCost {
					first = false
					bestCost = total
					best = idx
				}
			}
		}
	}

	return grid, best, axes
}

func sq(x float64) float64 { return x * x }

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
