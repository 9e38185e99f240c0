package pinball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pinball/internal/core"
)

// Visual characters for rendering.
const (
	BallChar    = '●'
	BumperChar  = '◉'
	FlipperChar = '▀'
	RailChar    = '·'
	TargetChar  = '▒'
	TargetHit   = '█'
	LaneChar    = '│'
)

// hitFlashMillis is how long a bumper or target stays highlighted after a
// hit. Purely visual; the scoring cooldowns live in the config.
const hitFlashMillis = 250.0

// Render draws the current game state into the screen buffer. Table
// coordinates are scaled to whatever cell grid the platform provides; the
// top row is reserved for the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	g.renderHUD(dst, snap)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	if field.W < 20 || field.H < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}
	dst.DrawBox(field)

	p := projector{snap: snap, field: field}

	for _, r := range snap.Rails {
		p.drawSegment(dst, r.A, r.B, RailChar, core.ColorGray)
	}
	for _, t := range snap.Targets {
		g.renderTarget(dst, p, snap, t)
	}
	for _, b := range snap.Bumpers {
		g.renderBumper(dst, p, snap, b)
	}
	for _, f := range snap.Flippers {
		p.drawSegment(dst, f.Pivot, f.Tip, FlipperChar, core.ColorBrightCyan)
	}
	if snap.HasBall {
		x, y := p.cell(snap.BallPos)
		dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
	}

	g.renderOverlay(dst, snap)
}

// projector maps table coordinates onto the playfield cell rectangle.
type projector struct {
	snap  Snapshot
	field core.Rect
}

func (p projector) cell(v Vec2) (int, int) {
	// Inset by one cell so geometry never lands on the border box.
	w := float64(p.field.W - 2)
	h := float64(p.field.H - 2)
	x := p.field.X + 1 + int(v.X/p.snap.TableW*w)
	y := p.field.Y + 1 + int(v.Y/p.snap.TableH*h)
	return core.Clamp(x, p.field.X+1, p.field.Right()-2),
		core.Clamp(y, p.field.Y+1, p.field.Bottom()-2)
}

// drawSegment plots a table-space segment by sampling it densely enough
// that no cell along it is skipped.
func (p projector) drawSegment(dst *core.Screen, a, b Vec2, r rune, c core.Color) {
	steps := int(b.Sub(a).Length()/4) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x, y := p.cell(a.Add(b.Sub(a).Scale(t)))
		dst.SetColored(x, y, r, c)
	}
}

func (g *Game) renderBumper(dst *core.Screen, p projector, snap Snapshot, b BumperView) {
	color := core.ColorMagenta
	if b.LastHitMillis >= 0 && snap.ClockMillis-b.LastHitMillis < hitFlashMillis {
		color = core.ColorBrightYellow
	}

	// Ring plus center; the ring radius collapses gracefully on small
	// screens because cell() clamps.
	for i := 0; i < 12; i++ {
		ang := float64(i) / 12 * 2 * math.Pi
		ring := b.Pos.Add(Vec2{X: math.Cos(ang), Y: math.Sin(ang)}.Scale(b.Radius))
		x, y := p.cell(ring)
		dst.SetColored(x, y, '∘', color)
	}
	x, y := p.cell(b.Pos)
	dst.SetColored(x, y, BumperChar, color)
}

func (g *Game) renderTarget(dst *core.Screen, p projector, snap Snapshot, t TargetView) {
	char := TargetChar
	color := core.ColorGreen
	if t.LastHitMillis >= 0 && snap.ClockMillis-t.LastHitMillis < hitFlashMillis {
		char = TargetHit
		color = core.ColorBrightGreen
	}

	x1, y1 := p.cell(t.Pos)
	x2, y2 := p.cell(Vec2{X: t.Pos.X + t.W, Y: t.Pos.Y + t.H})
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			dst.SetColored(x, y, char, color)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d  x%.1f", snap.Balls, snap.Multiplier))
	best := fmt.Sprintf("Best: %d", snap.Best)
	dst.DrawText(dst.Width()-len(best)-1, 0, best)
}

func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	h := dst.Height()

	switch snap.Phase {
	case PhaseIdle:
		dst.DrawTextCentered(h/2-1, "P I N B A L L")
		dst.DrawTextCentered(h/2+1, "Press S to start")

	case PhaseLaunch:
		bar := chargeBar(snap.Charge, 12)
		dst.DrawTextCentered(h-2, fmt.Sprintf("CHARGE %s  SPACE to launch", bar))

	case PhaseGameOver:
		dst.DrawTextCentered(h/2-1, "GAME OVER")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("Score %d  |  Press R to restart", snap.Score))
	}

	if g.paused {
		dst.DrawTextCentered(h/2, "PAUSED - press P to resume")
	}
}

// chargeBar renders the plunger charge as a fixed-width bar.
func chargeBar(charge float64, width int) string {
	filled := int(charge * float64(width))
	bar := make([]rune, width+2)
	bar[0] = '['
	for i := 0; i < width; i++ {
		if i < filled {
			bar[i+1] = '#'
		} else {
			bar[i+1] = ' '
		}
	}
	bar[width+1] = ']'
	return string(bar)
}
