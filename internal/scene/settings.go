package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/morph"
)

// Live setters validate their input and keep the previous value on error.
// Accepted values are written back into the scene's config.

// SetParticleCount resamples every model with n particles. The scene
// settles on the current model without animating.
func (s *Scene) SetParticleCount(n int) error {
	if n < 0 {
		return s.reject("particle count", fmt.Errorf("%w: particle count %d", morph.ErrOutOfRangeParameter, n))
	}
	if err := s.cloud.Rebuild(n); err != nil {
		return s.reject("particle count", err)
	}
	s.lastPhase = morph.PhaseIdle
	s.cfg.Morph.ParticleCount = n
	s.log.Info("particle count changed", zap.Int("particles", n))
	return nil
}

// SetExplosionForce regenerates every explosion target.
func (s *Scene) SetExplosionForce(force float32) error {
	if err := s.cloud.SetExplosionForce(force); err != nil {
		return s.reject("explosion force", err)
	}
	s.lastPhase = morph.PhaseIdle
	s.cfg.Morph.ExplosionForce = force
	s.log.Info("explosion force changed", zap.Float32("force", force))
	return nil
}

// SetTiming changes durations and easing curves by name. A running
// transition continues with the new values.
func (s *Scene) SetTiming(explodeMs, implodeMs float64, explodeEase, implodeEase string) error {
	t, err := timing(explodeMs, implodeMs, explodeEase, implodeEase)
	if err != nil {
		return s.reject("timing", err)
	}
	if err := s.cloud.SetTiming(t); err != nil {
		return s.reject("timing", err)
	}
	s.cfg.Morph.ExplodeMs = explodeMs
	s.cfg.Morph.ImplodeMs = implodeMs
	s.cfg.Morph.ExplodeEasing = explodeEase
	s.cfg.Morph.ImplodeEasing = implodeEase
	return nil
}

// SetStyle changes how particles are drawn.
func (s *Scene) SetStyle(st Style) error {
	if st.Size <= 0 {
		return s.reject("style", fmt.Errorf("%w: particle size %v", morph.ErrOutOfRangeParameter, st.Size))
	}
	if st.Opacity < 0 || st.Opacity > 1 {
		return s.reject("style", fmt.Errorf("%w: opacity %v", morph.ErrOutOfRangeParameter, st.Opacity))
	}
	s.style = st
	s.cfg.Particles.Color = config.FormatColor(st.Color)
	s.cfg.Particles.Size = st.Size
	s.cfg.Particles.Opacity = st.Opacity
	return nil
}

// SetRotationSpeed changes how far the yaw turns back each frame. Negative values
// spin the other way.
func (s *Scene) SetRotationSpeed(radPerFrame float32) {
	s.rotationSpeed = radPerFrame
	s.cfg.Particles.RotationSpeed = radPerFrame
}

// RotationSpeed returns the per-frame yaw step.
func (s *Scene) RotationSpeed() float32 { return s.rotationSpeed }

func (s *Scene) reject(setting string, err error) error {
	s.log.Warn("rejected setting", zap.String("setting", setting), zap.Error(err))
	return fmt.Errorf("setting %s: %w", setting, err)
}
