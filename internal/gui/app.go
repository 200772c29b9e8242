package gui

import (
	"fmt"
	"image/color"

	"github.com/san-kum/armchain/internal/chain"
	"github.com/san-kum/armchain/internal/config"
)

// HUD colours
var (
	ColText    = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	ColTextDim = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	ColSelect  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

// Platform is the windowing and drawing backend the frame loop runs on.
type Platform interface {
	Open(width, height int, title string, fps int)
	Close()
	ShouldClose() bool
	MousePressed(b MouseButton) bool
	FrameTime() float64
	FPS() int

	BeginFrame()
	ClearBackground(c color.RGBA)
	DrawLine(p0, p1 chain.Vec2, c color.RGBA)
	DrawCircle(center chain.Vec2, radius float64, c color.RGBA)
	DrawText(text string, x, y, size int, c color.RGBA)
	EndFrame()
}

type App struct {
	Chain      *chain.Chain
	Platform   Platform
	Link       color.RGBA
	Background color.RGBA
	Width      int
	Height     int
	ShowHUD    bool
	Frames     int
	Time       float64
}

// NewApp wires a chain built from cfg to the given platform. The window is not
// opened until RunLoop.
func NewApp(cfg *config.Config, p Platform, src chain.Source) (*App, error) {
	c, err := cfg.NewChain(src)
	if err != nil {
		return nil, err
	}
	link, err := cfg.LinkColor()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	return &App{
		Chain:      c,
		Platform:   p,
		Link:       link,
		Background: bg,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		ShowHUD:    true,
	}, nil
}

// Run opens a raylib window for cfg and blocks until it is closed.
func Run(cfg *config.Config, src chain.Source) error {
	app, err := NewApp(cfg, NewRaylibPlatform(), src)
	if err != nil {
		return err
	}
	app.Platform.Open(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.FPS)
	defer app.Platform.Close()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !a.Platform.ShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update applies clicks, then advances the chain by the last frame time.
func (a *App) Update() {
	if a.Platform.MousePressed(MouseLeft) {
		a.Chain.Append()
	}
	if a.Platform.MousePressed(MouseRight) {
		a.Chain.RemoveTail()
	}

	dt := a.Platform.FrameTime()
	a.Chain.Update(dt)
	a.Time += dt
	a.Frames++
}

func (a *App) Draw() {
	p := a.Platform
	p.BeginFrame()
	p.ClearBackground(a.Background)

	joints := a.Chain.RenderData()
	// Links first so circles sit on top of them.
	for _, j := range joints {
		if j.HasParent {
			p.DrawLine(j.Parent, j.Position, a.Link)
		}
	}
	for _, j := range joints {
		p.DrawCircle(j.Position, j.Radius, j.Color)
	}

	if a.ShowHUD {
		a.drawHUD()
	}
	p.EndFrame()
}

func (a *App) drawHUD() {
	p := a.Platform
	p.DrawText(fmt.Sprintf("segments %d", a.Chain.Len()), 10, 10, 16, ColText)
	p.DrawText(fmt.Sprintf("reach %.0f", a.Chain.Reach()), 10, 30, 16, ColText)
	p.DrawText(fmt.Sprintf("%d FPS", p.FPS()), a.Width-70, 10, 14, ColTextDim)
	p.DrawText("[LMB] ADD  [RMB] REMOVE  [ESC] QUIT", 10, a.Height-24, 14, ColTextDim)
}
