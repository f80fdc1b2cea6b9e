// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Morph     MorphConfig     `yaml:"morph"`
	Particles ParticlesConfig `yaml:"particles"`
	Models    []ModelConfig   `yaml:"models"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`

	// path is the file the config was read from or last saved to.
	path string
}

// Path returns the file the config was read from or last saved to, or ""
// for a config built from defaults only.
func (c *Config) Path() string { return c.path }

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// MorphConfig holds the particle engine tunables.
type MorphConfig struct {
	ParticleCount  int     `yaml:"particle_count"`
	ExplosionForce float32 `yaml:"explosion_force"`
	ExplodeMs      float64 `yaml:"explode_ms"`
	ImplodeMs      float64 `yaml:"implode_ms"`
	ExplodeEasing  string  `yaml:"explode_easing"`
	ImplodeEasing  string  `yaml:"implode_easing"`
	Sampling       string  `yaml:"sampling"` // area or triangle
	Seed           int64   `yaml:"seed"`     // 0 seeds from the clock
}

// ParticlesConfig holds how particles are drawn.
type ParticlesConfig struct {
	Color         string  `yaml:"color"` // #rrggbb
	Size          float32 `yaml:"size"`  // scene units
	Opacity       float32 `yaml:"opacity"`
	RotationSpeed float32 `yaml:"rotation_speed"` // radians per frame
	OffsetY       float32 `yaml:"offset_y"`
}

// ModelConfig describes one model in display order.
type ModelConfig struct {
	Name     string  `yaml:"name"`
	Shape    string  `yaml:"shape"`
	Scale    float32 `yaml:"scale"`
	Segments int     `yaml:"segments"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float32 `yaml:"volume"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Morph: MorphConfig{
			ParticleCount:  6000,
			ExplosionForce: 4.5,
			ExplodeMs:      1300,
			ImplodeMs:      1700,
			ExplodeEasing:  "out-quad",
			ImplodeEasing:  "in-out-quad",
			Sampling:       "area",
		},
		Particles: ParticlesConfig{
			Color:         "#000000",
			Size:          0.04,
			Opacity:       0.7,
			RotationSpeed: 1.0 / 400,
			OffsetY:       -1.2,
		},
		Models: []ModelConfig{
			{Name: "Sphere", Shape: "sphere", Scale: 300, Segments: 48},
			{Name: "Torus", Shape: "torus", Scale: 200, Segments: 48},
			{Name: "Knot", Shape: "knot", Scale: 200, Segments: 96},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
