package morph

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/pkg/geometry"
)

// Model is a mesh together with the factor that maps its model-space
// coordinates into scene space.
type Model struct {
	Name    string
	Mesh    geometry.Mesh
	Unscale float32
}

// CloudConfig holds the tunables of a Cloud.
type CloudConfig struct {
	ParticleCount  int
	ExplosionForce float32
	Sampling       SampleMode
	Timing         Timing
	Seed           int64 // 0 seeds from the wall clock
}

// Cloud owns the animation sets of every model, the shared position buffer
// and the machine that animates it.
type Cloud struct {
	models []Model
	cfg    CloudConfig
	rng    *rand.Rand
	log    *zap.Logger

	sets      []Set
	positions []float32
	machine   *Machine
}

// NewCloud samples every model and settles the buffer on the first one.
func NewCloud(models []Model, cfg CloudConfig, log *zap.Logger) (*Cloud, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: no models", ErrOutOfRangeParameter)
	}
	if err := cfg.Timing.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Cloud{
		models: models,
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		log:    log,
	}
	if err := c.rebuild(cfg.ParticleCount, cfg.ExplosionForce, 0); err != nil {
		return nil, err
	}

	log.Info("particle cloud ready",
		zap.Int("models", len(models)),
		zap.Int("particles", cfg.ParticleCount),
		zap.Float32("explosion_force", cfg.ExplosionForce),
		zap.Stringer("sampling", cfg.Sampling),
		zap.Int64("seed", seed),
	)
	return c, nil
}

// Positions returns the shared x,y,z buffer read by the renderer.
// The slice is replaced on Rebuild; callers must not keep it across one.
func (c *Cloud) Positions() []float32 { return c.positions }

// Machine returns the state machine animating the buffer.
func (c *Cloud) Machine() *Machine { return c.machine }

// Sets returns the animation set of every model, in model order.
func (c *Cloud) Sets() []Set { return c.sets }

// Config returns the active configuration.
func (c *Cloud) Config() CloudConfig { return c.cfg }

// Tick advances the animation to nowMs.
func (c *Cloud) Tick(nowMs float64) error {
	return c.machine.Tick(nowMs, c.positions)
}

// Settle writes the resting shape of the current model into buf.
func (c *Cloud) Settle(buf []float32) error {
	return c.machine.Settle(buf)
}

// RequestAdvance starts a transition towards the neighbouring model.
func (c *Cloud) RequestAdvance(dir Direction, nowMs float64) error {
	return c.machine.RequestAdvance(dir, nowMs)
}

// SetTiming changes durations and easing of subsequent ticks.
func (c *Cloud) SetTiming(t Timing) error {
	if err := c.machine.SetTiming(t); err != nil {
		return err
	}
	c.cfg.Timing = c.machine.Timing()
	return nil
}

// Rebuild resamples every model with a new particle count. On error the
// previous sets, buffer and machine stay in place.
func (c *Cloud) Rebuild(count int) error {
	return c.rebuild(count, c.cfg.ExplosionForce, c.machine.Settled())
}

// SetExplosionForce regenerates every explosion target with a new force.
func (c *Cloud) SetExplosionForce(force float32) error {
	return c.rebuild(c.cfg.ParticleCount, force, c.machine.Settled())
}

// rebuild samples all models, then swaps sets, buffer and machine in one
// step. The new machine is idle on model index start.
func (c *Cloud) rebuild(count int, force float32, start int) error {
	if count < 0 {
		return fmt.Errorf("%w: particle count %d", ErrOutOfRangeParameter, count)
	}
	if force < 0 {
		return fmt.Errorf("%w: explosion force %v", ErrOutOfRangeParameter, force)
	}

	sampler := NewSampler(c.cfg.Sampling, c.rng, c.log)
	sets := make([]Set, len(c.models))
	for i, model := range c.models {
		points, err := sampler.Sample(model.Mesh, count)
		if err != nil {
			return fmt.Errorf("sampling model %q: %w", model.Name, err)
		}
		set, err := BuildPairs(points, model.Unscale, force, c.rng)
		if err != nil {
			return fmt.Errorf("building pairs for model %q: %w", model.Name, err)
		}
		sets[i] = set
	}

	machine, err := NewMachine(sets, c.cfg.Timing)
	if err != nil {
		return err
	}
	machine.current = start
	machine.next = start

	positions := make([]float32, 3*count)
	if err := machine.Settle(positions); err != nil {
		return err
	}

	c.sets = sets
	c.positions = positions
	c.machine = machine
	c.cfg.ParticleCount = count
	c.cfg.ExplosionForce = force

	c.log.Debug("particle cloud rebuilt",
		zap.Int("particles", count),
		zap.Float32("explosion_force", force),
		zap.Int("model", start),
	)
	return nil
}
