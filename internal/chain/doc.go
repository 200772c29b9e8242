// Package chain implements the kinematic arm chain behind the multi-arm
// pendulum.
//
// A [Chain] is an ordered sequence of [Segment] values, root first. Every
// non-root segment orbits its predecessor at a fixed distance and a constant
// angular speed, so the tail traces a composition of circular motions:
//
//   - [Chain.Append]: add a randomized segment at the tail
//   - [Chain.RemoveTail]: drop the tail (the root is never removed)
//   - [Chain.Update]: advance angles and recompute positions
//   - [Chain.RenderData]: read pass producing [Joint] draw records
//
// # Example
//
//	c, _ := chain.New(chain.Vec2{X: 400, Y: 300}, chain.DefaultParams(), chain.NewSource(42))
//	c.Append()
//	c.Update(1.0 / 60)
//	for _, j := range c.RenderData() {
//	    // draw j
//	}
//
// # Thread Safety
//
// Chain instances are NOT thread-safe. They are owned and mutated by a single
// frame loop.
package chain
