// Package scene ties the morph engine to configuration: it builds the
// model library, owns the particle cloud and tracks display state such as
// the current title and the cloud's rotation.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/pkg/easing"
	"github.com/Faultbox/pointmorph/pkg/geometry"
	"github.com/Faultbox/pointmorph/pkg/math"
)

// InitialYaw is the rotation every model starts from, -90 degrees.
const InitialYaw = -math32.Pi / 2

// Cue is a notable moment in a transition.
type Cue int

const (
	CueExplode Cue = iota
	CueImplode
	CueSettle
)

// String returns a readable cue name.
func (c Cue) String() string {
	switch c {
	case CueExplode:
		return "explode"
	case CueImplode:
		return "implode"
	case CueSettle:
		return "settle"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// CueListener is notified when a transition changes phase.
type CueListener interface {
	OnCue(c Cue)
}

// Style is how particles are drawn.
type Style struct {
	Color   [3]float32
	Size    float32
	Opacity float32
}

// Scene is the model carousel shown by the front-ends.
type Scene struct {
	cfg   *config.Config
	clock morph.Clock
	log   *zap.Logger

	library *geometry.Library
	cloud   *morph.Cloud
	titles  []string

	style         Style
	rotation      float32
	rotationSpeed float32
	offsetY       float32

	lastPhase morph.Phase
	listeners []CueListener
}

// New builds every configured model and samples the particle cloud. cfg
// must already be validated; New keeps a pointer to it and writes accepted
// live changes back so that cfg can be saved later.
func New(cfg *config.Config, clock morph.Clock, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}

	color, err := config.ParseColor(cfg.Particles.Color)
	if err != nil {
		return nil, err
	}

	lib, models, err := buildModels(cfg.Models)
	if err != nil {
		return nil, err
	}

	cloudCfg, err := cloudConfig(cfg.Morph)
	if err != nil {
		return nil, err
	}

	cloud, err := morph.NewCloud(models, cloudCfg, log.Named("morph"))
	if err != nil {
		return nil, fmt.Errorf("creating particle cloud: %w", err)
	}

	titles := make([]string, len(models))
	for i, m := range models {
		titles[i] = m.Name
	}

	s := &Scene{
		cfg:     cfg,
		clock:   clock,
		log:     log,
		library: lib,
		cloud:   cloud,
		titles:  titles,
		style: Style{
			Color:   color,
			Size:    cfg.Particles.Size,
			Opacity: cfg.Particles.Opacity,
		},
		rotation:      InitialYaw,
		rotationSpeed: cfg.Particles.RotationSpeed,
		offsetY:       cfg.Particles.OffsetY,
	}

	log.Info("scene ready",
		zap.Strings("models", titles),
		zap.String("title", s.Title()),
	)
	return s, nil
}

// buildModels creates the mesh library and the ordered model list. Each
// mesh is built at its configured scale and unscaled by the same factor,
// so every model ends up about one scene unit in radius.
func buildModels(mcs []config.ModelConfig) (*geometry.Library, []morph.Model, error) {
	specs := make(map[string]geometry.Spec, len(mcs))
	for _, mc := range mcs {
		specs[mc.Name] = geometry.Spec{
			Shape:    geometry.Shape(mc.Shape),
			Size:     mc.Scale,
			Segments: mc.Segments,
		}
	}

	lib, err := geometry.NewLibrary(specs)
	if err != nil {
		return nil, nil, fmt.Errorf("building models: %w", err)
	}

	models := make([]morph.Model, len(mcs))
	for i, mc := range mcs {
		mesh, err := lib.Mesh(mc.Name)
		if err != nil {
			return nil, nil, err
		}
		models[i] = morph.Model{Name: mc.Name, Mesh: mesh, Unscale: mc.Scale}
	}
	return lib, models, nil
}

func cloudConfig(mc config.MorphConfig) (morph.CloudConfig, error) {
	timing, err := timing(mc.ExplodeMs, mc.ImplodeMs, mc.ExplodeEasing, mc.ImplodeEasing)
	if err != nil {
		return morph.CloudConfig{}, err
	}
	mode, err := morph.ParseSampleMode(mc.Sampling)
	if err != nil {
		return morph.CloudConfig{}, err
	}
	return morph.CloudConfig{
		ParticleCount:  mc.ParticleCount,
		ExplosionForce: mc.ExplosionForce,
		Sampling:       mode,
		Timing:         timing,
		Seed:           mc.Seed,
	}, nil
}

func timing(explodeMs, implodeMs float64, explodeEase, implodeEase string) (morph.Timing, error) {
	ex, err := easing.Lookup(explodeEase)
	if err != nil {
		return morph.Timing{}, err
	}
	im, err := easing.Lookup(implodeEase)
	if err != nil {
		return morph.Timing{}, err
	}
	t := morph.Timing{ExplodeMs: explodeMs, ImplodeMs: implodeMs, ExplodeEase: ex, ImplodeEase: im}
	return t, t.Validate()
}

// AddListener registers l for transition cues.
func (s *Scene) AddListener(l CueListener) {
	s.listeners = append(s.listeners, l)
}

// Update advances the animation to the clock's current time and spins the
// cloud by one frame's worth of rotation.
func (s *Scene) Update() error {
	m := s.cloud.Machine()
	if err := s.cloud.Tick(s.clock.NowMs()); err != nil {
		return err
	}
	s.rotation -= s.rotationSpeed

	if phase := m.Phase(); phase != s.lastPhase {
		switch phase {
		case morph.PhaseImploding:
			s.emit(CueImplode)
		case morph.PhaseIdle:
			s.emit(CueSettle)
			s.log.Debug("model settled", zap.String("title", s.Title()))
		}
		s.lastPhase = phase
	}
	return nil
}

// Advance starts a morph towards the previous or next model.
func (s *Scene) Advance(dir morph.Direction) error {
	if err := s.cloud.RequestAdvance(dir, s.clock.NowMs()); err != nil {
		return err
	}
	s.lastPhase = morph.PhaseExploding
	s.emit(CueExplode)
	s.log.Debug("advance requested",
		zap.Stringer("direction", dir),
		zap.String("title", s.Title()),
	)
	return nil
}

func (s *Scene) emit(c Cue) {
	for _, l := range s.listeners {
		l.OnCue(c)
	}
}

// CurrentModel returns the index of the model on display, or the one being
// morphed into while a transition is running.
func (s *Scene) CurrentModel() int {
	return s.cloud.Machine().Settled()
}

// Title returns the name of CurrentModel.
func (s *Scene) Title() string {
	return s.titles[s.CurrentModel()]
}

// Titles returns every model name in display order.
func (s *Scene) Titles() []string { return s.titles }

// Positions returns the particle buffer to upload each frame.
func (s *Scene) Positions() []float32 { return s.cloud.Positions() }

// ParticleCount returns the number of particles in the buffer.
func (s *Scene) ParticleCount() int { return s.cloud.Machine().ParticleCount() }

// Phase returns the phase of the running transition.
func (s *Scene) Phase() morph.Phase { return s.cloud.Machine().Phase() }

// Progress returns how far the current phase has run, in [0,1].
func (s *Scene) Progress() float32 { return s.cloud.Machine().Progress(s.clock.NowMs()) }

// Library returns the mesh library the models were built from.
func (s *Scene) Library() *geometry.Library { return s.library }

// Style returns the particle drawing style.
func (s *Scene) Style() Style { return s.style }

// Rotation returns the current yaw of the cloud in radians.
func (s *Scene) Rotation() float32 { return s.rotation }

// ModelMatrix places the cloud in the world: lowered by the configured
// offset and spun around Y.
func (s *Scene) ModelMatrix() math.Mat4 {
	return math.Translate(0, s.offsetY, 0).Mul(math.RotateY(s.rotation))
}

// Config returns the configuration, including accepted live changes.
func (s *Scene) Config() *config.Config { return s.cfg }
