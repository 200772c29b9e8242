package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/armchain/internal/chain"
)

// RaylibPlatform draws with raylib. Only one window may be open per process.
type RaylibPlatform struct{}

func NewRaylibPlatform() *RaylibPlatform { return &RaylibPlatform{} }

// Open initializes the window and sets the target FPS.
func (p *RaylibPlatform) Open(width, height int, title string, fps int) {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))
}

func (p *RaylibPlatform) Close()            { rl.CloseWindow() }
func (p *RaylibPlatform) ShouldClose() bool { return rl.WindowShouldClose() }
func (p *RaylibPlatform) FrameTime() float64 {
	return float64(rl.GetFrameTime())
}
func (p *RaylibPlatform) FPS() int { return int(rl.GetFPS()) }

func (p *RaylibPlatform) MousePressed(b MouseButton) bool {
	switch b {
	case MouseLeft:
		return rl.IsMouseButtonPressed(rl.MouseLeftButton)
	case MouseRight:
		return rl.IsMouseButtonPressed(rl.MouseRightButton)
	}
	return false
}

func (p *RaylibPlatform) BeginFrame() { rl.BeginDrawing() }
func (p *RaylibPlatform) EndFrame()   { rl.EndDrawing() }

func (p *RaylibPlatform) ClearBackground(c color.RGBA) {
	rl.ClearBackground(toRL(c))
}

func (p *RaylibPlatform) DrawLine(p0, p1 chain.Vec2, c color.RGBA) {
	rl.DrawLineV(toVec(p0), toVec(p1), toRL(c))
}

func (p *RaylibPlatform) DrawCircle(center chain.Vec2, radius float64, c color.RGBA) {
	rl.DrawCircleV(toVec(center), float32(radius), toRL(c))
}

func (p *RaylibPlatform) DrawText(text string, x, y, size int, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toRL(c))
}

func toRL(c color.RGBA) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func toVec(v chain.Vec2) rl.Vector2 { return rl.NewVector2(float32(v.X), float32(v.Y)) }
