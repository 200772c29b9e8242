package chain

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
)

const (
	MaxAngularSpeed = 3.0

	DefaultRadiusMin = 10.0
	DefaultRadiusMax = 30.0
	DefaultLengthMin = 50.0
	DefaultLengthMax = 150.0
	DefaultRootSize  = 20.0
)

// Palette colours, matching raylib's named colours.
var (
	Red    = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Yellow = color.RGBA{R: 253, G: 249, B: 0, A: 255}
	Purple = color.RGBA{R: 200, G: 122, B: 255, A: 255}
	Blue   = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray   = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// DefaultPalette returns a fresh copy of the five segment colours.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{Red, Yellow, Purple, Blue, White}
}

// Source supplies randomness for new segments. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Range is the half-open interval [Min, Max). Min == Max always yields Min.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Sample(src Source) float64 {
	return r.Min + src.Float64()*(r.Max-r.Min)
}

func (r Range) Contains(v float64) bool {
	if r.Min == r.Max {
		return v == r.Min
	}
	return v >= r.Min && v < r.Max
}

func (r Range) validate(name string, nonNegative bool) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%s: non-finite range [%v, %v): %w", name, r.Min, r.Max, ErrParameterBounds)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s: max %v below min %v: %w", name, r.Max, r.Min, ErrParameterBounds)
	}
	if nonNegative && r.Min < 0 {
		return fmt.Errorf("%s: negative min %v: %w", name, r.Min, ErrParameterBounds)
	}
	return nil
}

// Params controls how new segments are generated and how the root looks.
type Params struct {
	Radius       Range
	Length       Range
	AngularSpeed Range
	Palette      []color.RGBA
	RootRadius   float64
	RootColor    color.RGBA
}

func DefaultParams() Params {
	return Params{
		Radius:       Range{DefaultRadiusMin, DefaultRadiusMax},
		Length:       Range{DefaultLengthMin, DefaultLengthMax},
		AngularSpeed: Range{0, MaxAngularSpeed},
		Palette:      DefaultPalette(),
		RootRadius:   DefaultRootSize,
		RootColor:    Red,
	}
}

// Validate reports the first invalid field, wrapping ErrParameterBounds or
// ErrEmptyPalette.
func (p Params) Validate() error {
	if err := p.Radius.validate("radius", true); err != nil {
		return err
	}
	if err := p.Length.validate("length", true); err != nil {
		return err
	}
	// Angular speed is signed.
	if err := p.AngularSpeed.validate("angular speed", false); err != nil {
		return err
	}
	if len(p.Palette) == 0 {
		return ErrEmptyPalette
	}
	if p.RootRadius < 0 || math.IsNaN(p.RootRadius) || math.IsInf(p.RootRadius, 0) {
		return fmt.Errorf("root radius %v: %w", p.RootRadius, ErrParameterBounds)
	}
	return nil
}
