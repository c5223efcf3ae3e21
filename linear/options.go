package linear

// Solver selects how Fit solves the normal equations.
type Solver int

const (
	// SolverInverse solves coef = (XᵀX)⁻¹ Xᵀ y with an explicit matrix
	// inverse. This is the default. A singular or near-singular XᵀX fails
	// the inversion instead of degrading gracefully.
	SolverInverse Solver = iota

	// SolverQR solves the least-squares system by QR factorization with
	// back substitution. More stable on ill-conditioned data; same Fit
	// contract and validation.
	SolverQR
)

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithSolver sets the solver used by Fit
func WithSolver(s Solver) Option {
	return func(lr *LinearRegression) {
		lr.solver = s
	}
}
