package simplex

const (
	// DefaultTolerance is shared by the optimality test, the ratio tests,
	// the feasibility test on right-hand sides and the pivot guard.
	DefaultTolerance = 1e-9

	// DefaultArtificialTolerance is the value above which a basic
	// artificial variable makes a Big-M optimum infeasible.
	DefaultArtificialTolerance = 1e-5

	DefaultBigM          = 1e6
	DefaultMaxIterations = 1000
)

// Observer receives one snapshot per iteration, before the pivot.
type Observer func(Snapshot)

// SolveOption configures a solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	observer Observer
	tol      float64
	artTol   float64
	bigM     float64
	maxIter  int
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		tol:     DefaultTolerance,
		artTol:  DefaultArtificialTolerance,
		bigM:    DefaultBigM,
		maxIter: DefaultMaxIterations,
	}
}

func newSolveConfig(opts []SolveOption) *solveConfig {
	c := defaultSolveConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *solveConfig) emit(s Snapshot) {
	if c.observer != nil {
		c.observer(s)
	}
}

// WithObserver registers a callback for the per-iteration snapshots.
func WithObserver(o Observer) SolveOption {
	return func(c *solveConfig) {
		c.observer = o
	}
}

// WithTolerance sets the numeric tolerance used by every test of the
// pivoting loops.
func WithTolerance(tol float64) SolveOption {
	return func(c *solveConfig) {
		c.tol = tol
	}
}

// WithArtificialTolerance sets the Big-M feasibility threshold.
func WithArtificialTolerance(tol float64) SolveOption {
	return func(c *solveConfig) {
		c.artTol = tol
	}
}

// WithBigM sets the penalty applied to artificial variables.
func WithBigM(m float64) SolveOption {
	return func(c *solveConfig) {
		c.bigM = m
	}
}

// WithMaxIterations caps the number of pivots of one solve.
func WithMaxIterations(n int) SolveOption {
	return func(c *solveConfig) {
		c.maxIter = n
	}
}
