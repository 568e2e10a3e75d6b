package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/andrejewski/rematch/wheel"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hako/durafmt"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var (
	wheelImage     *ebiten.Image
	wheelImageSize int
)

func (g *Game) Draw(screen *ebiten.Image) {
	if state == nil {
		return
	}
	switch state.Scene {
	case wheel.SceneHome:
		drawHome(screen)
	case wheel.SceneAbout:
		drawAbout(screen)
	case wheel.SceneGame:
		drawGame(screen)
	case wheel.SceneGameOver:
		drawGameOver(screen)
	}
	if gs.ShowFPS {
		drawText(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), smallFont, 8, 8, pal.Muted)
	}
}

// wheelTexture uploads the surface pixels into an Ebiten image. The surface
// content only changes when its resolution does, so the upload happens once
// per repaint, not per frame.
func wheelTexture() *ebiten.Image {
	w, _ := surface.Resolution()
	if w <= 0 {
		return nil
	}
	if wheelImage == nil || wheelImageSize != w {
		wheelImage = ebiten.NewImage(w, w)
		wheelImageSize = w
		wheelImage.WritePixels(surface.Pix())
	}
	return wheelImage
}

// drawWheel blits the oversampled wheel at screen size, rotated about its
// center.
func drawWheel(screen *ebiten.Image, alpha float32) {
	img := wheelTexture()
	if img == nil {
		return
	}
	size := float64(state.WheelSize())
	ox, oy := wheelOrigin()

	op := &ebiten.DrawImageOptions{}
	half := float64(wheelImageSize) / 2
	op.GeoM.Translate(-half, -half)
	op.GeoM.Rotate(state.WheelRotation * math.Pi / 180)
	op.GeoM.Scale(1.0/wheel.Oversample, 1.0/wheel.Oversample)
	op.GeoM.Translate(float64(ox)+size/2, float64(oy)+size/2)
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}

func drawHome(screen *ebiten.Image) {
	screen.Fill(pal.Background)
	drawWheel(screen, 1)

	cx := float64(state.WindowW) / 2
	drawTextCentered(screen, "rematch", titleFont, cx, 40, pal.Text)
	if sessionBest > 0 {
		line := fmt.Sprintf("Session best: %d, set %s", sessionBest, humanize.Time(sessionBestAt))
		drawTextCentered(screen, line, smallFont, cx, 104, pal.Muted)
	}
	drawButtons(screen)
}

func drawAbout(screen *ebiten.Image) {
	screen.Fill(pal.Background)
	drawWheel(screen, 0.25)

	cx := float64(state.WindowW) / 2
	drawTextCentered(screen, "about", titleFont, cx, 40, pal.Text)
	lines := []string{
		"A wall of color is closing in on you.",
		"Click the point of the wheel that matches it to push it back.",
		"",
		"Every match scores a point, respins the wheel,",
		"and shortens the next round.",
	}
	y := 140.0
	for _, line := range lines {
		drawTextCentered(screen, line, mainFont, cx, y, pal.Text)
		y += 28
	}
	drawButtons(screen)
}

func drawGame(screen *ebiten.Image) {
	w := float32(state.WindowW)
	h := float64(state.WindowH)

	// The old wall fills the screen; the incoming target color slides down
	// over it as the round runs out.
	screen.Fill(rgbColor(state.PrevWall))
	wallH := float32(h * state.WallProgress)
	vector.DrawFilledRect(screen, 0, 0, w, wallH, rgbColor(state.NextWall), false)
	if state.WallProgress > 0 && state.WallProgress < 1 {
		edge := wallEdgeColor(state.PrevWall, state.NextWall, state.WallProgress)
		vector.DrawFilledRect(screen, 0, wallH, w, 2, edge, false)
	}

	drawWheel(screen, 1)

	fg := textColorFor(state.PrevWall)
	drawText(screen, fmt.Sprintf("Score: %d", state.Score), mainFont, 16, float64(state.WindowH)-40, fg)
}

func drawGameOver(screen *ebiten.Image) {
	// The wall that caught up is the new background.
	screen.Fill(rgbColor(state.PrevWall))
	fg := textColorFor(state.PrevWall)

	cx := float64(state.WindowW) / 2
	drawTextCentered(screen, "game over", titleFont, cx, 60, fg)
	drawTextCentered(screen, fmt.Sprintf("Score: %d", state.Score), mainFont, cx, 140, fg)
	drawTextCentered(screen, fmt.Sprintf("You lasted %s", runTimeString()), mainFont, cx, 172, fg)
	if sessionBest > 0 {
		line := fmt.Sprintf("Session best: %d, set %s", sessionBest, humanize.Time(sessionBestAt))
		drawTextCentered(screen, line, smallFont, cx, 208, fg)
	}
	drawTextCentered(screen, "press C to copy your score", smallFont, cx, 236, fg)
	drawButtons(screen)
}

func drawButtons(screen *ebiten.Image) {
	for _, b := range activeButtons {
		bg := pal.Panel
		if b.hovered {
			bg = pal.PanelEdge
		}
		x := float32(b.rect.Min.X)
		y := float32(b.rect.Min.Y)
		vector.DrawFilledRect(screen, x, y, float32(b.rect.Dx()), float32(b.rect.Dy()), bg, false)
		vector.StrokeRect(screen, x, y, float32(b.rect.Dx()), float32(b.rect.Dy()), 2, pal.PanelEdge, false)

		cx := float64(b.rect.Min.X+b.rect.Max.X) / 2
		cy := float64(b.rect.Min.Y) + (float64(b.rect.Dy())-mainFontHeight())/2
		drawTextCentered(screen, b.label, mainFont, cx, cy, pal.Text)
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawTextCentered(screen *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(screen, s, face, cx-w/2, y, clr)
}

func mainFontHeight() float64 {
	_, h := text.Measure("Ag", mainFont, 0)
	return h
}

func rgbColor(c wheel.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// textColorFor picks black or white text against a wall color by its Lab
// lightness.
func textColorFor(bg wheel.RGB) color.Color {
	if bg.Lab().L > 50 {
		return color.RGBA{10, 10, 10, 255}
	}
	return color.RGBA{245, 245, 245, 255}
}

// wallEdgeColor blends the two wall colors in Lab space for the seam
// between them.
func wallEdgeColor(a, b wheel.RGB, t float64) color.Color {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.BlendLab(cb, t).Clamped()
}

// runTimeString formats the length of the finished run, rounded to whole
// seconds, in compact units.
func runTimeString() string {
	d := lastRunTime.Round(time.Second)
	if d < time.Second {
		d = lastRunTime.Round(time.Millisecond)
	}
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}
