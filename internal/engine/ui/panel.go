package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/internal/scene"
	"github.com/Faultbox/pointmorph/pkg/easing"
	"github.com/Faultbox/pointmorph/pkg/geometry"
)

// Slider ranges.
const (
	MaxParticles     = 50000
	MaxForce         = 20
	MaxDurationMs    = 5000
	MaxRotationSpeed = 0.05
)

// VolumeControl is the audio output the panel adjusts.
type VolumeControl interface {
	SetMasterVolume(vol float64)
	GetMasterVolume() float64
}

// ControlPanel edits a scene's live settings. Widgets hold local copies so
// that a rejected value snaps back to what the scene accepted.
type ControlPanel struct {
	scene *scene.Scene
	audio VolumeControl

	particles     int32
	force         float32
	explodeMs     float32
	implodeMs     float32
	explodeEase   string
	implodeEase   string
	style         scene.Style
	rotationSpeed float32
	volume        float32

	// OnSave is called by the Save settings button.
	OnSave func() error
	// OnSaveAs and OnLoad open file pickers. The buttons are hidden while
	// they are nil.
	OnSaveAs func()
	OnLoad   func()

	status string
}

// NewControlPanel creates a panel showing the scene's current settings.
func NewControlPanel(s *scene.Scene) *ControlPanel {
	p := &ControlPanel{scene: s}
	p.Sync()
	return p
}

// SetScene points the panel at a replacement scene.
func (p *ControlPanel) SetScene(s *scene.Scene) {
	p.scene = s
	p.Sync()
}

// SetAudio enables the volume slider. Passing nil disables it.
func (p *ControlPanel) SetAudio(a VolumeControl) {
	p.audio = a
	p.Sync()
}

// Sync reloads every widget value from the scene.
func (p *ControlPanel) Sync() {
	m := p.scene.Config().Morph
	p.particles = int32(m.ParticleCount)
	p.force = m.ExplosionForce
	p.explodeMs = float32(m.ExplodeMs)
	p.implodeMs = float32(m.ImplodeMs)
	p.explodeEase = m.ExplodeEasing
	p.implodeEase = m.ImplodeEasing
	p.style = p.scene.Style()
	p.rotationSpeed = p.scene.RotationSpeed()
	p.volume = p.scene.Config().Audio.Volume
	if p.audio != nil {
		p.volume = float32(p.audio.GetMasterVolume())
	}
}

// Status returns the message from the last action, if any.
func (p *ControlPanel) Status() string { return p.status }

// SetStatus replaces the status line.
func (p *ControlPanel) SetStatus(msg string) { p.status = msg }

// Render draws the panel contents into the current ImGui window.
func (p *ControlPanel) Render() {
	p.renderModel()
	imgui.Separator()
	p.renderMorph()
	imgui.Separator()
	p.renderStyle()
	imgui.Separator()
	p.renderAudio()
	imgui.Separator()
	p.renderLibrary()
	imgui.Separator()

	if imgui.Button("Save settings") && p.OnSave != nil {
		if err := p.OnSave(); err != nil {
			p.status = fmt.Sprintf("Save failed: %v", err)
		} else {
			p.status = "Settings saved"
		}
	}
	if p.OnSaveAs != nil {
		imgui.SameLine()
		if imgui.Button("Save as...") {
			p.OnSaveAs()
		}
	}
	if p.OnLoad != nil {
		imgui.SameLine()
		if imgui.Button("Load...") {
			p.OnLoad()
		}
	}
	if p.status != "" {
		imgui.TextDisabled(p.status)
	}
}

func (p *ControlPanel) renderModel() {
	imgui.Text(fmt.Sprintf("Model: %s (%d/%d)",
		p.scene.Title(), p.scene.CurrentModel()+1, len(p.scene.Titles())))

	if imgui.Button("< Prev") {
		p.advance(morph.Prev)
	}
	imgui.SameLine()
	if imgui.Button("Next >") {
		p.advance(morph.Next)
	}

	phase := p.scene.Phase()
	overlay := phase.String()
	if phase == morph.PhaseIdle {
		imgui.ProgressBarV(1, imgui.NewVec2(-1, 0), overlay)
	} else {
		imgui.ProgressBarV(p.scene.Progress(), imgui.NewVec2(-1, 0), overlay)
	}
}

func (p *ControlPanel) renderMorph() {
	imgui.Text("Morph")

	imgui.SliderIntV("Particles", &p.particles, 0, MaxParticles, "%d", imgui.SliderFlagsNone)
	// Resampling is expensive, so it waits for the slider to be released.
	if imgui.IsItemDeactivatedAfterEdit() {
		p.apply(p.scene.SetParticleCount(int(p.particles)))
	}

	imgui.SliderFloatV("Explosion force", &p.force, 0, MaxForce, "%.2f", imgui.SliderFlagsNone)
	if imgui.IsItemDeactivatedAfterEdit() {
		p.apply(p.scene.SetExplosionForce(p.force))
	}

	changed := imgui.SliderFloatV("Explode (ms)", &p.explodeMs, 50, MaxDurationMs, "%.0f", imgui.SliderFlagsNone)
	changed = imgui.SliderFloatV("Implode (ms)", &p.implodeMs, 50, MaxDurationMs, "%.0f", imgui.SliderFlagsNone) || changed
	changed = easingCombo("Explode easing", &p.explodeEase) || changed
	changed = easingCombo("Implode easing", &p.implodeEase) || changed
	if changed {
		p.apply(p.scene.SetTiming(float64(p.explodeMs), float64(p.implodeMs), p.explodeEase, p.implodeEase))
	}
}

func (p *ControlPanel) renderStyle() {
	imgui.Text("Particles")

	changed := imgui.ColorEdit3("Color", &p.style.Color)
	changed = imgui.SliderFloatV("Size", &p.style.Size, 0.005, 0.2, "%.3f", imgui.SliderFlagsNone) || changed
	changed = imgui.SliderFloatV("Opacity", &p.style.Opacity, 0, 1, "%.2f", imgui.SliderFlagsNone) || changed
	if changed {
		p.apply(p.scene.SetStyle(p.style))
	}

	if imgui.SliderFloatV("Rotation", &p.rotationSpeed, -MaxRotationSpeed, MaxRotationSpeed, "%.4f", imgui.SliderFlagsNone) {
		p.scene.SetRotationSpeed(p.rotationSpeed)
	}
}

func (p *ControlPanel) renderAudio() {
	imgui.Text("Audio")
	if p.audio == nil {
		imgui.TextDisabled("Sound is off")
		return
	}
	if imgui.SliderFloatV("Volume", &p.volume, 0, 1, "%.2f", imgui.SliderFlagsNone) {
		p.setVolume(p.volume)
	}
}

// setVolume applies v to the audio output and records the accepted value
// in the config so that saving keeps it.
func (p *ControlPanel) setVolume(v float32) {
	if p.audio == nil {
		return
	}
	p.audio.SetMasterVolume(float64(v))
	p.volume = float32(p.audio.GetMasterVolume())
	p.scene.Config().Audio.Volume = p.volume
}

func (p *ControlPanel) renderLibrary() {
	if !imgui.TreeNodeExStrV("Mesh library", imgui.TreeNodeFlagsNone) {
		return
	}
	for _, line := range LibrarySummary(p.scene.Library()) {
		imgui.Text(line)
	}
	imgui.TreePop()
}

// LibrarySummary describes every mesh in lib, one line per mesh in name
// order.
func LibrarySummary(lib *geometry.Library) []string {
	names := lib.Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		m, err := lib.Mesh(name)
		if err != nil {
			continue
		}
		b := m.Bounds()
		size := b.Max.Sub(b.Min)
		lines = append(lines, fmt.Sprintf("%s: %d triangles, area %.0f, %.0f x %.0f x %.0f",
			name, len(m.Triangles), m.Area(), size.X, size.Y, size.Z))
	}
	return lines
}

func (p *ControlPanel) advance(dir morph.Direction) {
	p.apply(p.scene.Advance(dir))
}

// apply records err and resyncs the widgets so rejected edits snap back.
func (p *ControlPanel) apply(err error) {
	if err != nil {
		p.status = err.Error()
		p.Sync()
		return
	}
	p.status = ""
}

func easingCombo(label string, current *string) bool {
	changed := false
	if imgui.BeginCombo(label, *current) {
		for _, name := range easing.Names() {
			selected := name == *current
			if imgui.SelectableBoolV(name, selected, 0, imgui.NewVec2(0, 0)) && !selected {
				*current = name
				changed = true
			}
		}
		imgui.EndCombo()
	}
	return changed
}
