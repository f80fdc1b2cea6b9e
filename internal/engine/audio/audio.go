// Package audio plays short procedural sound cues for morph transitions.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/scene"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager turns scene cues into sound. It implements scene.CueListener.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate
	rng         *rand.Rand
	log         *zap.Logger

	// Cue durations follow the morph timing, read when a cue fires.
	morph *config.MorphConfig

	// Output volume (0.0 to 1.0)
	masterVolume float64

	// Mixer for overlapping cues
	mixer *beep.Mixer
}

// New creates a new audio manager. Cue lengths track morph, which may be
// changed while the manager is running.
func New(cfg config.AudioConfig, morph *config.MorphConfig, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		log:          log,
		morph:        morph,
		masterVolume: clamp(float64(cfg.Volume), 0, 1),
		mixer:        &beep.Mixer{},
	}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.mixer)

	m.initialized = true
	m.log.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// OnCue plays the sound for c. It does nothing before Init.
func (m *Manager) OnCue(c scene.Cue) {
	if err := m.PlayCue(c); err != nil && m.IsInitialized() {
		m.log.Warn("play cue", zap.Stringer("cue", c), zap.Error(err))
	}
}

// PlayCue mixes the sound for c into the output.
func (m *Manager) PlayCue(c scene.Cue) error {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return fmt.Errorf("audio not initialized")
	}
	vol := m.masterVolume
	s := m.cueStreamer(c)
	m.mu.Unlock()

	if s == nil {
		return fmt.Errorf("unknown cue %v", c)
	}

	volStreamer := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToDb(vol) / 6,
		Silent:   vol <= 0,
	}

	speaker.Lock()
	m.mixer.Add(volStreamer)
	speaker.Unlock()
	return nil
}

// cueStreamer builds the sound for c. Caller holds m.mu.
func (m *Manager) cueStreamer(c scene.Cue) beep.Streamer {
	switch c {
	case scene.CueExplode:
		return Whoosh(m.sampleRate, msDuration(m.morph.ExplodeMs), true, m.rng.Int63())
	case scene.CueImplode:
		return Whoosh(m.sampleRate, msDuration(m.morph.ImplodeMs), false, m.rng.Int63())
	case scene.CueSettle:
		return Chime(m.sampleRate, 180*time.Millisecond, 880)
	default:
		return nil
	}
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
