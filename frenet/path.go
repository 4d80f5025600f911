package frenet

// EndState is the (d, v, T) end state a candidate trajectory targets: a
// lateral offset, a longitudinal end speed, and a time horizon. It is the
// coordinate of one cell in the sampling grid (component C).
type EndState struct {
	D, V, T float64
}

// Path is a candidate trajectory: the grid cell's end state plus, once
// materialized, per-tick samples in both Frenet and Cartesian form, status
// flags, and cost breakdown (spec §3).
//
// Lifecycle: the pre-generation seed (end state, FixCost, HeuristicCost)
// lives in sampling.Cell; a Path is created, with IsGenerated already set,
// exactly once per cell, when the search selector first asks for that
// cell's real cost; it may later be retrieved from the candidate queue for
// validation. All fields are dropped at the end of a planning call except
// the single returned winner.
type Path struct {
	End    EndState
	LaneID int

	// Frenet-frame samples, one entry per tick.
	Time     []float64
	S        []float64
	Sd       []float64
	Sdd      []float64
	Sddd     []float64
	D        []float64
	Dd       []float64
	Ddd      []float64
	Dddd     []float64

	// Cartesian extension, populated by convert.ToCartesian (component E).
	X         []float64
	Y         []float64
	Yaw       []float64
	Ds        []float64
	Curvature []float64

	IsGenerated      bool
	ConstraintPassed bool
	CollisionPassed  bool

	FixCost       float64
	HeuristicCost float64
	DynCost       float64
}

// FinalCost returns FixCost + DynCost, the real cost used to order the
// candidate queue. Before generation (DynCost == 0) this is only a lower
// bound when combined with HeuristicCost; see spec §5's ordering guarantee.
func (p *Path) FinalCost() float64 {
	return p.FixCost + p.DynCost
}

// Ticks returns the number of samples in the path.
func (p *Path) Ticks() int {
	return len(p.Time)
}

// Truncate drops all samples from index k onward, used when Cartesian
// conversion hits a non-finite point (spec §4.E, §7 numerical degeneracy).
func (p *Path) Truncate(k int) {
	if k < 0 || k >= len(p.Time) {
		return
	}
	p.Time = p.Time[:k]
	for _, s := range []*[]float64{&p.S, &p.Sd, &p.Sdd, &p.Sddd, &p.D, &p.Dd, &p.Ddd, &p.Dddd} {
		if len(*s) > k {
			*s = (*s)[:k]
		}
	}
	if len(p.X) > k {
		p.X = p.X[:k]
		p.Y = p.Y[:k]
	}
	if len(p.Yaw) > k {
		p.Yaw = p.Yaw[:k]
	}
	if len(p.Ds) > k {
		p.Ds = p.Ds[:k]
	}
	if len(p.Curvature) > k {
		p.Curvature = p.Curvature[:k]
	}
}
