package morph

import (
	"fmt"

	"github.com/Faultbox/pointmorph/pkg/easing"
	"github.com/Faultbox/pointmorph/pkg/math"
)

// Phase is the state of a morph transition.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExploding
	PhaseImploding
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExploding:
		return "exploding"
	case PhaseImploding:
		return "imploding"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Direction selects the neighbouring model to morph into.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// String returns a readable direction name.
func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Timing holds transition durations in milliseconds and their easing curves.
type Timing struct {
	ExplodeMs   float64
	ImplodeMs   float64
	ExplodeEase easing.Func
	ImplodeEase easing.Func
}

// DefaultTiming returns the stock 1300ms out-quad explosion followed by a
// 1700ms in-out-quad implosion.
func DefaultTiming() Timing {
	return Timing{
		ExplodeMs:   1300,
		ImplodeMs:   1700,
		ExplodeEase: easing.OutQuad,
		ImplodeEase: easing.InOutQuad,
	}
}

// Validate checks durations and fills in missing curves.
func (t *Timing) Validate() error {
	if t.ExplodeMs <= 0 {
		return fmt.Errorf("%w: explode duration %vms", ErrOutOfRangeParameter, t.ExplodeMs)
	}
	if t.ImplodeMs <= 0 {
		return fmt.Errorf("%w: implode duration %vms", ErrOutOfRangeParameter, t.ImplodeMs)
	}
	if t.ExplodeEase == nil {
		t.ExplodeEase = easing.OutQuad
	}
	if t.ImplodeEase == nil {
		t.ImplodeEase = easing.InOutQuad
	}
	return nil
}

// Machine drives a position buffer through explode and implode transitions
// between index-aligned animation sets. It is not safe for concurrent use;
// advance requests and ticks are expected on the same goroutine.
type Machine struct {
	sets      []Set
	particles int
	timing    Timing

	phase   Phase
	current int
	next    int
	pending Direction // direction of the in-flight transition, 0 when idle
	start   float64   // start of the current phase, ms
}

// NewMachine creates an idle machine showing the first set. All sets must
// hold the same number of particles.
func NewMachine(sets []Set, timing Timing) (*Machine, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no animation sets", ErrOutOfRangeParameter)
	}
	particles := len(sets[0])
	for i, s := range sets {
		if len(s) != particles {
			return nil, fmt.Errorf("%w: set %d has %d particles, set 0 has %d",
				ErrMismatchedParticleCount, i, len(s), particles)
		}
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	return &Machine{
		sets:      sets,
		particles: particles,
		timing:    timing,
	}, nil
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase { return m.phase }

// Current returns the index of the model being shown or morphed from.
func (m *Machine) Current() int { return m.current }

// Next returns the index of the most recently requested target.
func (m *Machine) Next() int { return m.next }

// Settled returns the index the machine will rest on once the in-flight
// transition completes.
func (m *Machine) Settled() int {
	if m.phase == PhaseIdle {
		return m.current
	}
	return m.next
}

// ModelCount returns the number of animation sets.
func (m *Machine) ModelCount() int { return len(m.sets) }

// ParticleCount returns the number of particles in every set.
func (m *Machine) ParticleCount() int { return m.particles }

// Timing returns the active timing.
func (m *Machine) Timing() Timing { return m.timing }

// SetTiming replaces durations and curves. An in-flight phase picks up the
// new values on its next tick.
func (m *Machine) SetTiming(t Timing) error {
	if err := t.Validate(); err != nil {
		return err
	}
	m.timing = t
	return nil
}

// RequestAdvance starts a transition towards the neighbouring model. If a
// transition is already in flight, its index change is applied first, so
// every request moves the model index exactly once and only the latest
// transition is animated.
func (m *Machine) RequestAdvance(dir Direction, nowMs float64) error {
	if dir != Next && dir != Prev {
		return fmt.Errorf("%w: direction %v", ErrOutOfRangeParameter, dir)
	}
	if m.pending != 0 {
		m.current = m.step(m.current, m.pending)
	}

	m.next = m.step(m.current, dir)
	m.pending = dir
	m.phase = PhaseExploding
	m.start = nowMs
	return nil
}

// Tick advances the transition to nowMs and writes every particle position
// into buf. Idle machines leave buf untouched, and the tick that ends an
// explosion leaves the last eased frame in place. The tick that ends an
// implosion writes the settled model's Init positions exactly. buf must
// hold exactly three floats per particle; otherwise nothing is written.
func (m *Machine) Tick(nowMs float64, buf []float32) error {
	if err := m.checkBuffer(buf); err != nil {
		return err
	}

	switch m.phase {
	case PhaseExploding:
		t := m.progress(nowMs, m.timing.ExplodeMs)
		if t < 1 {
			e := m.timing.ExplodeEase(t)
			for i, p := range m.sets[m.current] {
				writePoint(buf, i, p.Init.Lerp(p.Target, e))
			}
			return nil
		}
		m.phase = PhaseImploding
		m.start = nowMs

	case PhaseImploding:
		t := m.progress(nowMs, m.timing.ImplodeMs)
		if t < 1 {
			e := m.timing.ImplodeEase(t)
			next := m.sets[m.next]
			for i, p := range m.sets[m.current] {
				writePoint(buf, i, p.Target.Lerp(next[i].Init, e))
			}
			return nil
		}
		m.current = m.next
		m.pending = 0
		m.phase = PhaseIdle
		m.sets[m.current].writeInit(buf)
	}
	return nil
}

// Progress returns the linear progress of the current phase in [0,1].
// Idle machines report 0.
func (m *Machine) Progress(nowMs float64) float32 {
	var t float32
	switch m.phase {
	case PhaseExploding:
		t = m.progress(nowMs, m.timing.ExplodeMs)
	case PhaseImploding:
		t = m.progress(nowMs, m.timing.ImplodeMs)
	}
	return min(t, 1)
}

// Settle writes the resting shape of the current model into buf.
func (m *Machine) Settle(buf []float32) error {
	if err := m.checkBuffer(buf); err != nil {
		return err
	}
	m.sets[m.current].writeInit(buf)
	return nil
}

// progress returns elapsed/duration. It is floored at 0 so a clock read
// taken before the phase start never eases backwards.
func (m *Machine) progress(nowMs, durationMs float64) float32 {
	t := float32((nowMs - m.start) / durationMs)
	return max(t, 0)
}

func (m *Machine) step(i int, dir Direction) int {
	n := len(m.sets)
	return ((i+int(dir))%n + n) % n
}

func (m *Machine) checkBuffer(buf []float32) error {
	if len(buf) != 3*m.particles {
		return fmt.Errorf("%w: buffer holds %d floats, want %d",
			ErrMismatchedParticleCount, len(buf), 3*m.particles)
	}
	return nil
}

func writePoint(buf []float32, i int, p math.Vec3) {
	buf[i*3+0] = p.X
	buf[i*3+1] = p.Y
	buf[i*3+2] = p.Z
}
