// Package viz renders the arm chain in a terminal.
//
// The package implements a TUI using the Bubble Tea framework:
//
//   - [Model]: the interactive chain view with a telemetry pane
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Left click, A  - Append a segment
//	Right click, D - Remove the tail segment
//	Space          - Pause/Resume
//	R              - Reset to the root
//	T              - Cycle color themes
//	?              - Show help overlay
//	Q              - Quit
package viz
