package morph

import (
	"fmt"
	"math/rand"

	"github.com/Faultbox/pointmorph/pkg/math"
)

// Pair is the animation data of one particle for one model: where it rests
// in the model's shape and where it flies to when the model explodes.
type Pair struct {
	Init   math.Vec3
	Target math.Vec3
}

// Set holds one Pair per particle, indexed like the position buffer.
type Set []Pair

// BuildPairs normalizes every sampled point into scene space by dividing it
// by unscale, then displaces it by a random offset inside the cube
// [-force, force]^3 to produce its explosion target.
func BuildPairs(points []math.Vec3, unscale, force float32, rng *rand.Rand) (Set, error) {
	if unscale <= 0 {
		return nil, fmt.Errorf("%w: unscale must be positive, got %v", ErrOutOfRangeParameter, unscale)
	}
	if force < 0 {
		return nil, fmt.Errorf("%w: explosion force must not be negative, got %v", ErrOutOfRangeParameter, force)
	}

	set := make(Set, len(points))
	for i, p := range points {
		init := p.Div(unscale)
		offset := math.Vec3{
			X: randomFloat(rng, -force, force),
			Y: randomFloat(rng, -force, force),
			Z: randomFloat(rng, -force, force),
		}
		set[i] = Pair{Init: init, Target: init.Add(offset)}
	}
	return set, nil
}

// randomFloat returns a uniform value in [lo, hi).
func randomFloat(rng *rand.Rand, lo, hi float32) float32 {
	return rng.Float32()*(hi-lo) + lo
}

// Positions flattens the Init positions into an x,y,z buffer.
func (s Set) Positions() []float32 {
	buf := make([]float32, 3*len(s))
	s.writeInit(buf)
	return buf
}

func (s Set) writeInit(buf []float32) {
	for i, p := range s {
		buf[i*3+0] = p.Init.X
		buf[i*3+1] = p.Init.Y
		buf[i*3+2] = p.Init.Z
	}
}
