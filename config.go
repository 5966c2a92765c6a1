package orrery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const epochFormat = "2006-01-02"

// Config is the whole application configuration.
type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Clock    ClockConfig    `mapstructure:"clock"`
	Eclipse  EclipseConfig  `mapstructure:"eclipse"`
	Bodies   BodiesConfig   `mapstructure:"bodies"`
	Orbits   OrbitsConfig   `mapstructure:"orbits"`
	Stars    StarsConfig    `mapstructure:"stars"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Colors   ColorsConfig   `mapstructure:"colors"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// WindowConfig describes the window and the projection.
type WindowConfig struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Title     string  `mapstructure:"title"`
	FOV       float64 `mapstructure:"fov"` // degrees
	Near      float64 `mapstructure:"near"`
	Far       float64 `mapstructure:"far"`
	LineWidth float64 `mapstructure:"line_width"`
}

// CameraConfig is the free camera start point and feel.
type CameraConfig struct {
	Position    []float64 `mapstructure:"position"`
	Speed       float64   `mapstructure:"speed"`
	Sensitivity float64   `mapstructure:"sensitivity"`
	Follow      string    `mapstructure:"follow"` // body the camera travels with, empty for free flight
}

// ClockConfig holds the simulation rates.
type ClockConfig struct {
	BaseRate        float64 `mapstructure:"base_rate"`
	AcceleratedRate float64 `mapstructure:"accelerated_rate"`
}

// EclipseConfig holds the alignment tolerance.
type EclipseConfig struct {
	Tolerance float64 `mapstructure:"tolerance"`
}

// BodyConfig overrides the orbit and look of one body.
type BodyConfig struct {
	RadiusX float64 `mapstructure:"radius_x"`
	RadiusZ float64 `mapstructure:"radius_z"`
	Rate    float64 `mapstructure:"rate"`
	Spin    float64 `mapstructure:"spin"`
	Scale   float64 `mapstructure:"scale"`
}

// BodiesConfig groups the three bodies.
type BodiesConfig struct {
	Sun   BodyConfig `mapstructure:"sun"`
	Earth BodyConfig `mapstructure:"earth"`
	Moon  BodyConfig `mapstructure:"moon"`
}

// OrbitsConfig sets how finely the orbit overlays are sampled.
type OrbitsConfig struct {
	EarthSegments int `mapstructure:"earth_segments"`
	MoonSegments  int `mapstructure:"moon_segments"`
}

// StarsConfig sets up the starfield. A zero seed means a time-based seed.
type StarsConfig struct {
	Count  int     `mapstructure:"count"`
	Extent float64 `mapstructure:"extent"`
	Size   float64 `mapstructure:"size"`
	Seed   int64   `mapstructure:"seed"`
}

// AssetsConfig points at the textures and, optionally, replacement shaders.
type AssetsConfig struct {
	SunTexture     string `mapstructure:"sun_texture"`
	EarthTexture   string `mapstructure:"earth_texture"`
	MoonTexture    string `mapstructure:"moon_texture"`
	VertexShader   string `mapstructure:"vertex_shader"`
	FragmentShader string `mapstructure:"fragment_shader"`
}

// ColorsConfig holds hex colors; empty orbit colors keep the built-in tints.
type ColorsConfig struct {
	Background string `mapstructure:"background"`
	EarthOrbit string `mapstructure:"earth_orbit"`
	MoonOrbit  string `mapstructure:"moon_orbit"`
}

// CalendarConfig sets the date at simulation time zero.
type CalendarConfig struct {
	Epoch string `mapstructure:"epoch"`
}

// setDefaults registers the reference scene on the provided viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Solar System")
	v.SetDefault("window.fov", 45.0)
	v.SetDefault("window.near", 0.1)
	v.SetDefault("window.far", 200.0)
	v.SetDefault("window.line_width", 2.5)

	v.SetDefault("camera.position", []float64{9, 2, 20})
	v.SetDefault("camera.speed", 2.5)
	v.SetDefault("camera.sensitivity", 0.1)
	v.SetDefault("camera.follow", "")

	v.SetDefault("clock.base_rate", DefaultBaseRate)
	v.SetDefault("clock.accelerated_rate", DefaultAcceleratedRate)
	v.SetDefault("eclipse.tolerance", DefaultEclipseTolerance)

	for name, body := range map[string]CelestialBody{"sun": Sun, "earth": Earth, "moon": Moon} {
		v.SetDefault("bodies."+name+".radius_x", body.OrbitRadiusX)
		v.SetDefault("bodies."+name+".radius_z", body.OrbitRadiusZ)
		v.SetDefault("bodies."+name+".rate", body.OrbitRate)
		v.SetDefault("bodies."+name+".spin", body.SpinRate)
		v.SetDefault("bodies."+name+".scale", body.Scale)
	}

	v.SetDefault("orbits.earth_segments", 256)
	v.SetDefault("orbits.moon_segments", 128)

	v.SetDefault("stars.count", 300)
	v.SetDefault("stars.extent", 200.0)
	v.SetDefault("stars.size", 0.4)
	v.SetDefault("stars.seed", 0)

	v.SetDefault("assets.sun_texture", "./textures/sun.jpg")
	v.SetDefault("assets.earth_texture", "./textures/earth.jpg")
	v.SetDefault("assets.moon_texture", "./textures/moon.jpg")
	v.SetDefault("assets.vertex_shader", "")
	v.SetDefault("assets.fragment_shader", "")

	v.SetDefault("colors.background", "#1f1f1f")
	v.SetDefault("colors.earth_orbit", "")
	v.SetDefault("colors.moon_orbit", "")

	v.SetDefault("calendar.epoch", "2000-01-01")
}

// LoadConfig reads the configuration into the provided viper instance. An empty path
// searches for "orrery.{toml,yaml,...}" in the working directory and ~/.orrery; when no
// file is found the defaults are used.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("ORRERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("orrery")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".orrery"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// DefaultConfig returns the reference configuration without reading any file.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		panic(fmt.Errorf("default configuration does not decode: %s", err))
	}
	return conf
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the configuration for values the scene cannot work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Near <= 0 || c.Window.Far <= c.Window.Near {
		return invalid("clip planes near=%f far=%f", c.Window.Near, c.Window.Far)
	}
	if len(c.Camera.Position) != 3 {
		return invalid("camera position needs three components, got %d", len(c.Camera.Position))
	}
	if c.Camera.Follow != "" {
		if _, err := CelestialBodyFromString(c.Camera.Follow); err != nil {
			return invalid("camera.follow: %s", err)
		}
	}
	if c.Clock.BaseRate <= 0 || c.Clock.AcceleratedRate <= 0 {
		return invalid("clock rates must be positive (base=%f accelerated=%f)", c.Clock.BaseRate, c.Clock.AcceleratedRate)
	}
	if c.Eclipse.Tolerance <= 0 || c.Eclipse.Tolerance >= 1 {
		return invalid("eclipse tolerance %f not in (0, 1)", c.Eclipse.Tolerance)
	}
	for name, body := range map[string]BodyConfig{"earth": c.Bodies.Earth, "moon": c.Bodies.Moon} {
		if body.RadiusX <= 0 || body.RadiusZ <= 0 {
			return invalid("%s orbit radii must be positive", name)
		}
	}
	for name, body := range map[string]BodyConfig{"sun": c.Bodies.Sun, "earth": c.Bodies.Earth, "moon": c.Bodies.Moon} {
		if body.Scale <= 0 {
			return invalid("%s scale must be positive, got %f", name, body.Scale)
		}
	}
	if c.Orbits.EarthSegments < 3 || c.Orbits.MoonSegments < 3 {
		return invalid("orbit segments must be at least 3")
	}
	if c.Stars.Count < 0 || c.Stars.Extent <= 0 || c.Stars.Size <= 0 {
		return invalid("stars count=%d extent=%f size=%f", c.Stars.Count, c.Stars.Extent, c.Stars.Size)
	}
	if _, err := c.Epoch(); err != nil {
		return invalid("calendar epoch: %s", err)
	}
	for key, hex := range map[string]string{"background": c.Colors.Background, "earth_orbit": c.Colors.EarthOrbit, "moon_orbit": c.Colors.MoonOrbit} {
		if hex == "" {
			continue
		}
		if _, err := colorful.Hex(hex); err != nil {
			return invalid("colors.%s: %s", key, err)
		}
	}
	return nil
}

// Epoch returns the parsed calendar epoch.
func (c Config) Epoch() (time.Time, error) {
	return time.Parse(epochFormat, c.Calendar.Epoch)
}

// System returns the bodies with the configured orbits.
func (c Config) System() System {
	s := NewSystem()
	apply := func(b *CelestialBody, bc BodyConfig) {
		b.OrbitRadiusX, b.OrbitRadiusZ = bc.RadiusX, bc.RadiusZ
		b.OrbitRate, b.SpinRate, b.Scale = bc.Rate, bc.Spin, bc.Scale
	}
	apply(&s.Sun, c.Bodies.Sun)
	apply(&s.Earth, c.Bodies.Earth)
	apply(&s.Moon, c.Bodies.Moon)
	return s
}

// Background returns the clear color.
func (c Config) Background() mgl32.Vec3 {
	return hexColor(c.Colors.Background, uniform(0.12))
}

// Tints returns the orbit overlay tints, falling back to the built-in ones.
func (c Config) Tints() Tints {
	t := DefaultTints()
	t.EarthOrbit = hexColor(c.Colors.EarthOrbit, t.EarthOrbit)
	t.MoonOrbit = hexColor(c.Colors.MoonOrbit, t.MoonOrbit)
	return t
}

func hexColor(hex string, fallback mgl32.Vec3) mgl32.Vec3 {
	if hex == "" {
		return fallback
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return mgl32.Vec3{float32(col.R), float32(col.G), float32(col.B)}
}
