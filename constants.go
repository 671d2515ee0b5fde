package miescatter

// Angular sampling.
const (
	// NAngles is the default number of sampled scattering angles, shared
	// with the transport engine's angle table.
	NAngles = 1000
)

// Validated parameter ranges.
const (
	// MaxSizeParameter is the largest size parameter the Mie series has
	// been validated for.
	MaxSizeParameter = 20000.0

	// maxCV bounds the coefficient of variation so the sampled radius
	// interval r̄ ± 3σ stays strictly positive.
	maxCV = 1.0 / 3.0
)
