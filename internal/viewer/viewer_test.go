package viewer

import (
	"testing"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/internal/scene"
)

func TestTitle(t *testing.T) {
	if got, want := Title("Torus"), "PointMorph - Torus"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestFrame(t *testing.T) {
	cfg := config.Default()
	cfg.Morph.ParticleCount = 20
	cfg.Morph.Seed = 3
	for i := range cfg.Models {
		cfg.Models[i].Segments = 8
	}

	s, err := scene.New(cfg, &morph.ManualClock{}, nil)
	if err != nil {
		t.Fatalf("scene.New() error = %v", err)
	}

	f := Frame(s)
	if len(f.Positions) != 20*3 {
		t.Errorf("len(Positions) = %d, want 60", len(f.Positions))
	}
	if f.Model != s.ModelMatrix() {
		t.Error("Model should equal the scene's model matrix")
	}
	st := s.Style()
	if f.Style.Color != st.Color || f.Style.Size != st.Size || f.Style.Opacity != st.Opacity {
		t.Errorf("Style = %+v, want %+v", f.Style, st)
	}
}
