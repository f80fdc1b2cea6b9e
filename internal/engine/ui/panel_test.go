package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/internal/scene"
)

// fakeVolume clamps like the audio manager does.
type fakeVolume struct {
	vol float64
}

func (f *fakeVolume) SetMasterVolume(v float64) { f.vol = min(max(v, 0), 1) }
func (f *fakeVolume) GetMasterVolume() float64  { return f.vol }

func newTestScene(t *testing.T) *scene.Scene {
	t.Helper()
	cfg := config.Default()
	cfg.Morph.ParticleCount = 30
	cfg.Morph.Seed = 5
	for i := range cfg.Models {
		cfg.Models[i].Segments = 8
	}
	s, err := scene.New(cfg, &morph.ManualClock{}, nil)
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	return s
}

func TestControlPanelSync(t *testing.T) {
	s := newTestScene(t)
	p := NewControlPanel(s)

	if p.particles != 30 || p.force != 4.5 {
		t.Errorf("particles %d force %v, want 30 and 4.5", p.particles, p.force)
	}
	if p.explodeEase != "out-quad" || p.implodeEase != "in-out-quad" {
		t.Errorf("easing %q/%q", p.explodeEase, p.implodeEase)
	}
	if p.volume != s.Config().Audio.Volume {
		t.Errorf("volume = %v, want config value %v", p.volume, s.Config().Audio.Volume)
	}
}

func TestControlPanelVolume(t *testing.T) {
	s := newTestScene(t)
	p := NewControlPanel(s)

	// Without audio the slider does nothing.
	p.setVolume(0.1)
	if s.Config().Audio.Volume == 0.1 {
		t.Error("volume changed without an audio output")
	}

	out := &fakeVolume{vol: 0.25}
	p.SetAudio(out)
	if p.volume != 0.25 {
		t.Errorf("volume after SetAudio = %v, want 0.25", p.volume)
	}

	tests := []struct {
		in, want float32
	}{
		{0.8, 0.8},
		{1.7, 1},
		{-0.2, 0},
	}
	for _, tt := range tests {
		p.setVolume(tt.in)
		if out.vol != float64(tt.want) {
			t.Errorf("setVolume(%v): output %v, want %v", tt.in, out.vol, tt.want)
		}
		if got := s.Config().Audio.Volume; got != tt.want {
			t.Errorf("setVolume(%v): config volume %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestControlPanelApplyRejected(t *testing.T) {
	s := newTestScene(t)
	p := NewControlPanel(s)

	p.force = -3
	p.apply(s.SetExplosionForce(p.force))
	if p.force != 4.5 {
		t.Errorf("force = %v, want it to snap back to 4.5", p.force)
	}
	if p.Status() == "" {
		t.Error("rejected edit left no status")
	}

	p.apply(nil)
	if p.Status() != "" {
		t.Errorf("status = %q after a good edit", p.Status())
	}

	p.SetStatus("loaded")
	if p.Status() != "loaded" {
		t.Errorf("Status() = %q", p.Status())
	}
	p.apply(errors.New("boom"))
	if p.Status() != "boom" {
		t.Errorf("Status() = %q, want boom", p.Status())
	}
}

func TestControlPanelSetScene(t *testing.T) {
	p := NewControlPanel(newTestScene(t))

	other := newTestScene(t)
	if err := other.SetParticleCount(12); err != nil {
		t.Fatalf("SetParticleCount: %v", err)
	}
	p.SetScene(other)
	if p.particles != 12 {
		t.Errorf("particles = %d, want 12 from the new scene", p.particles)
	}
}

func TestLibrarySummary(t *testing.T) {
	s := newTestScene(t)
	lines := LibrarySummary(s.Library())

	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	for i, prefix := range []string{"Knot:", "Sphere:", "Torus:"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
		if !strings.Contains(lines[i], "triangles") {
			t.Errorf("line %d = %q lacks a triangle count", i, lines[i])
		}
	}
}
