package engine

// Validity limits for the Mie series.
const (
	// maxSizeParameter bounds x; larger spheres have not been validated
	// against reference data.
	maxSizeParameter = 20000.0

	// smallParticleLimit routes spheres with x·|m| (bare x for perfect
	// conductors) below this threshold to the closed-form small-particle
	// expansion, where the full series loses accuracy and efficiency.
	smallParticleLimit = 0.1
)

// Wiscombe series truncation: nstop = ⌊x + 4.05·x^(1/3) + 2⌋.
const (
	wiscombeCubeRootCoeff = 4.05
	wiscombeOffset        = 2.0
)

// Wiscombe stability envelope for the upward Dₙ recurrence: upward is used
// iff |Im(m)·x| < (13.78·Re(m) − 10.8)·Re(m) + 3.9. Empirical; do not
// simplify.
const (
	upwardEnvelopeA = 13.78
	upwardEnvelopeB = 10.8
	upwardEnvelopeC = 3.9
)

// Gaussian radius distribution sampling in the polydisperse wrapper.
const (
	// radiusSamples is the number of radii sampled across the distribution.
	radiusSamples = 1001

	// radiusSpanSigmas extends the sampled radius interval this many
	// standard deviations to each side of the mean.
	radiusSpanSigmas = 3.0
)
