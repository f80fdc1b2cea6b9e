package morph

import "errors"

// Errors reported by the morph engine. Callers match them with errors.Is;
// returned errors wrap them with context.
var (
	// ErrInvalidMesh is returned when a mesh has no triangles to sample.
	ErrInvalidMesh = errors.New("invalid mesh")

	// ErrMismatchedParticleCount is returned when animation sets or the
	// position buffer disagree on the particle count.
	ErrMismatchedParticleCount = errors.New("mismatched particle count")

	// ErrOutOfRangeParameter is returned for negative counts, non-positive
	// durations and similar configuration mistakes.
	ErrOutOfRangeParameter = errors.New("parameter out of range")
)
