package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/pkg/easing"
	"github.com/Faultbox/pointmorph/pkg/geometry"
)

// Validate checks every setting the engine depends on. Range errors wrap
// morph.ErrOutOfRangeParameter.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return outOfRange("graphics size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}

	m := c.Morph
	if m.ParticleCount < 0 {
		return outOfRange("morph.particle_count %d", m.ParticleCount)
	}
	if m.ExplosionForce < 0 {
		return outOfRange("morph.explosion_force %v", m.ExplosionForce)
	}
	if m.ExplodeMs <= 0 || m.ImplodeMs <= 0 {
		return outOfRange("morph durations %vms/%vms", m.ExplodeMs, m.ImplodeMs)
	}
	if _, err := easing.Lookup(m.ExplodeEasing); err != nil {
		return fmt.Errorf("morph.explode_easing: %w", err)
	}
	if _, err := easing.Lookup(m.ImplodeEasing); err != nil {
		return fmt.Errorf("morph.implode_easing: %w", err)
	}
	if _, err := morph.ParseSampleMode(m.Sampling); err != nil {
		return fmt.Errorf("morph.sampling: %w", err)
	}

	p := c.Particles
	if _, err := ParseColor(p.Color); err != nil {
		return fmt.Errorf("particles.color: %w", err)
	}
	if p.Size <= 0 {
		return outOfRange("particles.size %v", p.Size)
	}
	if p.Opacity < 0 || p.Opacity > 1 {
		return outOfRange("particles.opacity %v", p.Opacity)
	}

	if len(c.Models) == 0 {
		return outOfRange("no models configured")
	}
	seen := make(map[string]bool, len(c.Models))
	for i, mc := range c.Models {
		if mc.Name == "" {
			return fmt.Errorf("models[%d]: missing name", i)
		}
		if seen[mc.Name] {
			return fmt.Errorf("models[%d]: duplicate name %q", i, mc.Name)
		}
		seen[mc.Name] = true
		if mc.Scale <= 0 {
			return outOfRange("models[%d] %q scale %v", i, mc.Name, mc.Scale)
		}
		switch geometry.Shape(mc.Shape) {
		case geometry.ShapeSphere, geometry.ShapeTorus, geometry.ShapeKnot, geometry.ShapeBox:
		default:
			return fmt.Errorf("models[%d] %q: unknown shape %q", i, mc.Name, mc.Shape)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return outOfRange("audio.volume %v", c.Audio.Volume)
	}
	return nil
}

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{morph.ErrOutOfRangeParameter}, args...)...)
}

// ParseColor converts "#rrggbb" into RGB components in [0,1].
func ParseColor(s string) ([3]float32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return [3]float32{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]float32{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return [3]float32{
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(rgb [3]float32) string {
	c := func(f float32) uint8 {
		f = min(max(f, 0), 1)
		return uint8(f*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", c(rgb[0]), c(rgb[1]), c(rgb[2]))
}
