package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/armchain/internal/chain"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFPS    = 60
	DefaultTitle  = "Multi-Arm Pendulum"
)

var (
	ErrInvalidColor  = errors.New("config: invalid colour")
	ErrInvalidWindow = errors.New("config: invalid window settings")
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Seed   int64        `yaml:"seed"`
	Origin *PointConfig `yaml:"origin,omitempty"`
	Chain  ChainConfig  `yaml:"chain"`
	Colors ColorConfig  `yaml:"colors"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ChainConfig struct {
	RadiusMin  float64 `yaml:"radius_min"`
	RadiusMax  float64 `yaml:"radius_max"`
	LengthMin  float64 `yaml:"length_min"`
	LengthMax  float64 `yaml:"length_max"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
	RootRadius float64 `yaml:"root_radius"`
}

// ColorConfig holds hex colours ("#rrggbb").
type ColorConfig struct {
	Palette    []string `yaml:"palette"`
	Root       string   `yaml:"root"`
	Link       string   `yaml:"link"`
	Background string   `yaml:"background"`
}

func DefaultConfig() *Config {
	palette := chain.DefaultPalette()
	hex := make([]string, len(palette))
	for i, c := range palette {
		hex[i] = FormatColor(c)
	}
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Chain: ChainConfig{
			RadiusMin:  chain.DefaultRadiusMin,
			RadiusMax:  chain.DefaultRadiusMax,
			LengthMin:  chain.DefaultLengthMin,
			LengthMax:  chain.DefaultLengthMax,
			SpeedMin:   0,
			SpeedMax:   chain.MaxAngularSpeed,
			RootRadius: chain.DefaultRootSize,
		},
		Colors: ColorConfig{
			Palette:    hex,
			Root:       FormatColor(chain.Red),
			Link:       FormatColor(chain.Gray),
			Background: FormatColor(chain.Black),
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads path over base, so keys missing from the file keep the
// values already in base (a preset, usually). base is modified and returned.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks window settings, colours and chain ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidWindow)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("fps %d: %w", c.Window.FPS, ErrInvalidWindow)
	}
	if _, err := c.LinkColor(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	p, err := c.ChainParams()
	if err != nil {
		return err
	}
	return p.Validate()
}

// OriginPoint is the root position: the configured origin, or the window
// centre.
func (c *Config) OriginPoint() chain.Vec2 {
	if c.Origin != nil {
		return chain.Vec2{X: c.Origin.X, Y: c.Origin.Y}
	}
	return chain.Vec2{X: float64(c.Window.Width) / 2, Y: float64(c.Window.Height) / 2}
}

func (c *Config) ChainParams() (chain.Params, error) {
	palette := make([]color.RGBA, 0, len(c.Colors.Palette))
	for _, s := range c.Colors.Palette {
		col, err := ParseColor(s)
		if err != nil {
			return chain.Params{}, err
		}
		palette = append(palette, col)
	}
	root, err := ParseColor(c.Colors.Root)
	if err != nil {
		return chain.Params{}, err
	}
	return chain.Params{
		Radius:       chain.Range{Min: c.Chain.RadiusMin, Max: c.Chain.RadiusMax},
		Length:       chain.Range{Min: c.Chain.LengthMin, Max: c.Chain.LengthMax},
		AngularSpeed: chain.Range{Min: c.Chain.SpeedMin, Max: c.Chain.SpeedMax},
		Palette:      palette,
		RootRadius:   c.Chain.RootRadius,
		RootColor:    root,
	}, nil
}

func (c *Config) LinkColor() (color.RGBA, error)       { return ParseColor(c.Colors.Link) }
func (c *Config) BackgroundColor() (color.RGBA, error) { return ParseColor(c.Colors.Background) }

// NewChain builds a root-only chain from the config with the given source.
func (c *Config) NewChain(src chain.Source) (*chain.Chain, error) {
	p, err := c.ChainParams()
	if err != nil {
		return nil, err
	}
	return chain.New(c.OriginPoint(), p, src)
}

// ParseColor parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func FormatColor(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
