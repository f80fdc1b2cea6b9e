package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/scene"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func newTestManager() *Manager {
	cfg := config.Default()
	return New(cfg.Audio, &cfg.Morph, nil)
}

func TestNewManager(t *testing.T) {
	m := newTestManager()
	if m == nil {
		t.Fatal("New() returned nil")
	}
	if m.IsInitialized() {
		t.Error("new manager should not be initialized")
	}
	if got := m.GetMasterVolume(); math.Abs(got-0.6) > 1e-6 {
		t.Errorf("GetMasterVolume() = %f, want 0.6", got)
	}
}

func TestSetVolume(t *testing.T) {
	m := newTestManager()

	m.SetMasterVolume(0.5)
	if m.GetMasterVolume() != 0.5 {
		t.Errorf("GetMasterVolume() = %f, want 0.5", m.GetMasterVolume())
	}

	m.SetMasterVolume(1.5)
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("GetMasterVolume() = %f, want 1.0 (clamped)", m.GetMasterVolume())
	}

	m.SetMasterVolume(-1)
	if m.GetMasterVolume() != 0 {
		t.Errorf("GetMasterVolume() = %f, want 0 (clamped)", m.GetMasterVolume())
	}
}

func TestPlayCueBeforeInit(t *testing.T) {
	m := newTestManager()
	if err := m.PlayCue(scene.CueExplode); err == nil {
		t.Error("PlayCue() before Init should fail")
	}
	// OnCue must stay silent when audio is unavailable.
	m.OnCue(scene.CueSettle)
}

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestWhoosh(t *testing.T) {
	sr := beep.SampleRate(8000)
	tests := []struct {
		name   string
		d      time.Duration
		rising bool
	}{
		{"explode", 1300 * time.Millisecond, true},
		{"implode", 1700 * time.Millisecond, false},
		{"short", 10 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(t, Whoosh(sr, tt.d, tt.rising, 1))
			if want := sr.N(tt.d); n != want {
				t.Errorf("samples = %d, want %d", n, want)
			}
			if peak > 1 {
				t.Errorf("peak = %f, want <= 1", peak)
			}
		})
	}
}

func TestWhooshDeterministic(t *testing.T) {
	sr := beep.SampleRate(8000)
	a := make([][2]float64, 256)
	b := make([][2]float64, 256)
	Whoosh(sr, time.Second, true, 42).Stream(a)
	Whoosh(sr, time.Second, true, 42).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestChime(t *testing.T) {
	sr := beep.SampleRate(8000)
	d := 180 * time.Millisecond
	n, peak := drain(t, Chime(sr, d, 880))
	if want := sr.N(d); n != want {
		t.Errorf("samples = %d, want %d", n, want)
	}
	if peak <= 0 || peak > 0.3 {
		t.Errorf("peak = %f, want in (0, 0.3]", peak)
	}
}
