package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/andrejewski/rematch/wheel"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

const initialWindowW, initialWindowH = 800, 600

// Game adapts Ebiten's loop onto the wheel state machine: Update turns
// input into events, Draw renders the current state, Layout feeds window
// size changes.
type Game struct{}

var (
	gameCtx context.Context

	surface *wheel.PixSurface
	state   *wheel.State

	once     sync.Once
	lastTick time.Time

	// resizeLimiter throttles repaints while the window is being dragged.
	// The newest size stays pending, so the final size always lands.
	resizeLimiter      = rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	pendingSize        *wheel.WindowSize
	currentW, currentH int

	prevScene wheel.Scene

	runStart      time.Time
	lastRunTime   time.Duration
	sessionBest   int
	sessionBestAt time.Time
)

func initGame() {
	ebiten.SetWindowTitle("rematch")
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)

	initFont()
	initPalette()
	initClipboard()

	surface = wheel.NewPixSurface(0, 0)
	state = wheel.NewState(surface)
	lastTick = time.Now()
}

func (g *Game) Update() error {
	select {
	case <-gameCtx.Done():
		return errors.New("shutdown")
	default:
	}
	once.Do(initGame)

	now := time.Now()
	delta := now.Sub(lastTick)
	lastTick = now

	if pendingSize != nil && resizeLimiter.Allow() {
		state.Dispatch(*pendingSize)
		pendingSize = nil
	}

	mx, my := ebiten.CursorPosition()
	updateButtons(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		handleClick(mx, my)
	}
	if state.Scene == wheel.SceneGameOver && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		copyScoreLine()
	}

	state.Dispatch(wheel.DrawTick{Delta: delta})

	if state.Scene != prevScene {
		onSceneChange(prevScene, state.Scene)
		prevScene = state.Scene
	}
	return nil
}

// handleClick routes a press to a button, or into the wheel when playing.
func handleClick(mx, my int) {
	if b := buttonAt(mx, my); b != nil {
		b.action()
		return
	}
	if state.Scene == wheel.SceneGame {
		ox, oy := wheelOrigin()
		state.Dispatch(wheel.WheelClick{X: float64(mx - ox), Y: float64(my - oy)})
	}
}

// wheelOrigin is the top-left corner of the wheel's on-screen square, which
// sits centered in the window.
func wheelOrigin() (int, int) {
	size := state.WheelSize()
	return (state.WindowW - size) / 2, (state.WindowH - size) / 2
}

func onSceneChange(from, to wheel.Scene) {
	logDebug("scene %v -> %v", from, to)
	switch to {
	case wheel.SceneGame:
		runStart = time.Now()
	case wheel.SceneGameOver:
		lastRunTime = time.Since(runStart)
		if state.Score > sessionBest {
			sessionBest = state.Score
			sessionBestAt = time.Now()
			if gs.Notifications {
				notifyDesktop("rematch", fmt.Sprintf("New session best: %d", sessionBest))
			}
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != currentW || outsideHeight != currentH) {
		currentW, currentH = outsideWidth, outsideHeight
		queueResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// queueResize dispatches a window size immediately when the limiter allows,
// otherwise leaves it pending for Update. The very first Layout call lands
// here before init, which gives the eager startup resize once state exists.
func queueResize(w, h int) {
	ev := wheel.WindowSize{W: w, H: h}
	if state != nil && resizeLimiter.Allow() {
		state.Dispatch(ev)
		pendingSize = nil
		return
	}
	pendingSize = &ev
}

func runGame(ctx context.Context) {
	gameCtx = ctx

	ebiten.SetWindowSize(gs.WindowW, gs.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if gs.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(&Game{}); err != nil {
		logError("ebiten: %v", err)
	}
}
