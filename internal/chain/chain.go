package chain

import (
	"fmt"
	"image/color"
	"math"
)

// Segment is one link of the chain. Position is derived from the predecessor
// on every Update.
type Segment struct {
	Length       float64 // distance kept from the predecessor, 0 for the root
	Angle        float64
	AngularSpeed float64
	Radius       float64
	Color        color.RGBA
	Position     Vec2
}

// Joint is the draw record for one segment. Parent is only meaningful when
// HasParent is set.
type Joint struct {
	Parent    Vec2
	HasParent bool
	Position  Vec2
	Radius    float64
	Color     color.RGBA
}

type Chain struct {
	segments []Segment
	params   Params
	src      Source
}

// New creates a chain holding only the root, fixed at origin.
func New(origin Vec2, params Params, src Source) (*Chain, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chain params: %w", err)
	}
	if src == nil {
		return nil, fmt.Errorf("nil random source: %w", ErrParameterBounds)
	}
	palette := make([]color.RGBA, len(params.Palette))
	copy(palette, params.Palette)
	params.Palette = palette

	c := &Chain{params: params, src: src}
	c.segments = append(c.segments, Segment{
		Radius:   params.RootRadius,
		Color:    params.RootColor,
		Position: origin,
	})
	return c, nil
}

func (c *Chain) Params() Params { return c.params }

func (c *Chain) Len() int { return len(c.segments) }

func (c *Chain) Root() Segment { return c.segments[0] }

func (c *Chain) Tail() Segment { return c.segments[len(c.segments)-1] }

// At returns the i-th segment, root at 0. It panics when i is out of range.
func (c *Chain) At(i int) Segment { return c.segments[i] }

func (c *Chain) Origin() Vec2 { return c.segments[0].Position }

// Segments returns a copy of all segments in chain order.
func (c *Chain) Segments() []Segment {
	out := make([]Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

// Append adds a randomized segment collocated with the current tail and
// returns it.
func (c *Chain) Append() Segment {
	tail := c.segments[len(c.segments)-1]
	s := Segment{
		Radius:       c.params.Radius.Sample(c.src),
		Length:       c.params.Length.Sample(c.src),
		AngularSpeed: c.params.AngularSpeed.Sample(c.src),
		Color:        c.params.Palette[c.src.Intn(len(c.params.Palette))],
		Position:     tail.Position,
	}
	c.segments = append(c.segments, s)
	return s
}

// RemoveTail drops the tail segment. The root is never removed; on a
// root-only chain it does nothing and reports false.
func (c *Chain) RemoveTail() bool {
	if len(c.segments) <= 1 {
		return false
	}
	last := len(c.segments) - 1
	c.segments[last] = Segment{}
	c.segments = c.segments[:last]
	return true
}

// Reset tears the chain down to the root.
func (c *Chain) Reset() {
	for i := 1; i < len(c.segments); i++ {
		c.segments[i] = Segment{}
	}
	c.segments = c.segments[:1]
}

// Update advances every non-root segment by dt seconds, predecessor first.
// Negative or non-finite dt is treated as zero.
func (c *Chain) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	for i := 1; i < len(c.segments); i++ {
		s := &c.segments[i]
		s.Angle += s.AngularSpeed * dt
		s.Position = c.segments[i-1].Position.Add(Polar(s.Length, s.Angle))
	}
}

// RenderData returns the draw records in chain order.
func (c *Chain) RenderData() []Joint {
	joints := make([]Joint, len(c.segments))
	for i, s := range c.segments {
		j := Joint{Position: s.Position, Radius: s.Radius, Color: s.Color}
		if i > 0 {
			j.Parent = c.segments[i-1].Position
			j.HasParent = true
		}
		joints[i] = j
	}
	return joints
}

// Reach is the distance between the root and the tail.
func (c *Chain) Reach() float64 {
	return c.Origin().Dist(c.Tail().Position)
}
