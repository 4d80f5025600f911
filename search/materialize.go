package search

import (
	"github.com/motionstack/frenetplan/config"
	"github.com/motionstack/frenetplan/frenet"
	"github.com/motionstack/frenetplan/polynomial"
)

// materialize builds the quintic lateral and quartic longitudinal
// polynomials for a grid cell's end state, samples them at tick_t, computes
// the jerk-integral dynamic cost, and returns a populated frenet.Path (spec
// §4.D "Real cost of a cell, on first visit"). The lateral polynomial
// targets a stable (d, 0, 0) end state and the longitudinal polynomial
// targets (v, 0) end velocity/acceleration with free end position, matching
// the boundary conditions §4.A defines for the quintic/quartic primitives.
func materialize(start frenet.State, end frenet.EndState, laneID int, fixCost, heuristicCost float64, cfg config.Configuration) (*frenet.Path, error) {
	lat, err := polynomial.NewQuintic(
		[3]float64{start.D, start.Dd, start.Ddd},
		[3]float64{end.D, 0, 0},
		end.T,
	)
	if err != nil {
		return nil, err
	}
	lon, err := polynomial.NewQuartic(
		[3]float64{start.S, start.Sd, start.Sdd},
		end.V, 0,
		end.T,
	)
	if err != nil {
		return nil, err
	}

	numTicks := int(end.T/cfg.TickT) + 1
	path := &frenet.Path{
		End:    end,
		LaneID: laneID,
	}
	path.Time = make([]float64, 0, numTicks)
	path.S = make([]float64, 0, numTicks)
	path.Sd = make([]float64, 0, numTicks)
	path.Sdd = make([]float64, 0, numTicks)
	path.Sddd = make([]float64, 0, numTicks)
	path.D = make([]float64, 0, numTicks)
	path.Dd = make([]float64, 0, numTicks)
	path.Ddd = make([]float64, 0, numTicks)
	path.Dddd = make([]float64, 0, numTicks)

	var jerkS, jerkD float64
	for k := 0; k < numTicks; k++ {
		t := float64(k) * cfg.TickT
		if t > end.T {
			break
		}
		sddd := lon.D3(t)
		dddd := lat.D3(t)
		jerkS += sddd * sddd
		jerkD += dddd * dddd

		path.Time = append(path.Time, t)
		path.S = append(path.S, lon.Value(t))
		path.Sd = append(path.Sd, lon.D1(t))
		path.Sdd = append(path.Sdd, lon.D2(t))
		path.Sddd = append(path.Sddd, sddd)
		path.D = append(path.D, lat.Value(t))
		path.Dd = append(path.Dd, lat.D1(t))
		path.Ddd = append(path.Ddd, lat.D2(t))
		path.Dddd = append(path.Dddd, dddd)
	}

	path.DynCost = cfg.KJerk * (cfg.KLon*jerkS + cfg.KLat*jerkD)
	path.FixCost = fixCost
	path.HeuristicCost = heuristicCost
	path.IsGenerated = true

	return path, nil
}
