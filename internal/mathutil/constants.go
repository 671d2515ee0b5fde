package mathutil

// Modified-Lentz continued fraction parameters.
const (
	// Convergence is declared when ||ratio| − 1| drops below this tolerance.
	lentzConvergenceTol = 1e-12

	// Iteration bound. Well-conditioned arguments converge in tens of
	// iterations; the bound turns a pathological input into an error
	// instead of a hang.
	maxLentzIterations = 500

	// Seed offsets for order n: the leading partial numerator is
	// (n + 0.5)·(2/z) and the first denominator term is (−n − 1.5)·(2/z).
	lentzAlphaOffset = 0.5
	lentzSeedOffset  = 1.5
)
