package search

import (
	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/logging"
	"github.com/motionstack/frenetplan/sampling"
)

// Selector walks the 3D sampling grid with discrete coordinate descent,
// materializing trajectories on demand and pushing their real cost into a
// CandidateQueue (spec §4.D).
type Selector struct {
	grid   *sampling.Grid
	cfg    config.Configuration
	start  frenet.State
	logger logging.Logger
	queue  *CandidateQueue

	visited int
}

// NewSelector builds a Selector over grid, ready to run from seed.
func NewSelector(grid *sampling.Grid, cfg config.Configuration, start frenet.State, logger logging.Logger) *Selector {
	return &Selector{grid: grid, cfg: cfg, start: start, logger: logger, queue: NewCandidateQueue()}
}

// Queue returns the candidate queue the selector has been pushing into.
func (s *Selector) Queue() *CandidateQueue { return s.queue }

// Visited returns the number of distinct cells the descent visited; bounded
// by Nw*Nv*Nt (spec §8 property 6).
func (s *Selector) Visited() int { return s.visited }

// axisSize returns the grid's size along axis a (0=width,1=speed,2=horizon).
func (s *Selector) axisSize(a int) int {
	switch a {
	case 0:
		return s.grid.Nw
	case 1:
		return s.grid.Nv
	default:
		return s.grid.Nt
	}
}

func withAxis(idx sampling.Index, axis, value int) sampling.Index {
	switch axis {
	case 0:
		idx.I = value
	case 1:
		idx.J = value
	default:
		idx.K = value
	}
	return idx
}

func axisValue(idx sampling.Index, axis int) int {
	switch axis {
	case 0:
		return idx.I
	case 1:
		return idx.J
	default:
		return idx.K
	}
}

// realCost materializes the cell at idx if needed (generating its
// trajectory and pushing it into the queue) and returns its FinalCost.
func (s *Selector) realCost(idx sampling.Index) (float64, error) {
	cell := s.grid.At(idx)
	if !cell.IsGenerated {
		path, err := materialize(s.start, cell.End, cell.LaneID, cell.FixCost, cell.HeuristicCost, s.cfg)
		if err != nil {
			return 0, err
		}
		cell.Path = path
		cell.IsGenerated = true
		s.queue.Push(path, idx)
	}
	return cell.Path.FinalCost(), nil
}

// Run executes the descent of spec §4.D starting at seed, returning once
// the loop converges (a revisited cell) or the grid is exhausted.
func (s *Selector) Run(seed sampling.Index) error {
	idx := seed
	maxSteps := s.grid.Size()

	for step := 0; step <= maxSteps; step++ {
		cell := s.grid.At(idx)
		if cell.IsUsed {
			// Converged: this cell was already visited.
			return nil
		}
		cell.IsUsed = true
		s.visited++

		currentCost, err := s.realCost(idx)
		if err != nil {
			return err
		}

		var grads [3]float64
		for axis := 0; axis < 3; axis++ {
			size := s.axisSize(axis)
			cur := axisValue(idx, axis)
			dir := 1
			if cur == size-1 {
				dir = -1
			}
			neighborIdx := withAxis(idx, axis, cur+dir)

			neighborCost, err := s.realCost(neighborIdx)
			if err != nil {
				return err
			}

			var g float64
			if dir == 1 {
				g = neighborCost - currentCost
			} else {
				g = currentCost - neighborCost
			}

			// Desired step under the +1/-1 convention of step 4 below.
			desiredStep := 1
			if g > 0 {
				desiredStep = -1
			}
			if next := cur + desiredStep; next < 0 || next >= size {
				g = 0
			}
			grads[axis] = g
		}

		best := -1
		bestAbs := 0.0
		for axis, g := range grads {
			abs := g
			if abs < 0 {
				abs = -abs
			}
			if abs > bestAbs {
				bestAbs = abs
				best = axis
			}
		}

		if best == -1 || bestAbs == 0 {
			// No descent direction: the next iteration will re-check idx,
			// which is already marked used, and converge.
			continue
		}

		delta := 1
		if grads[best] > 0 {
			delta = -1
		}
		idx = withAxis(idx, best, axisValue(idx, best)+delta)
	}

	return nil
}
