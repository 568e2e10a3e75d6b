package main

import (
	"image/color"
	"testing"
	"time"

	"github.com/andrejewski/rematch/wheel"
)

func TestOnSceneChangeTracksSessionBest(t *testing.T) {
	oldNotify := gs.Notifications
	gs.Notifications = false
	defer func() { gs.Notifications = oldNotify; sessionBest = 0 }()

	newUIState(200, 200)
	sessionBest = 0
	runStart = time.Now().Add(-90 * time.Second)

	state.Score = 5
	onSceneChange(wheel.SceneGame, wheel.SceneGameOver)
	if sessionBest != 5 {
		t.Fatalf("session best = %d, want 5", sessionBest)
	}
	if lastRunTime < 89*time.Second {
		t.Fatalf("run time = %v, want about 90s", lastRunTime)
	}

	// A worse run leaves the best alone.
	bestAt := sessionBestAt
	state.Score = 3
	onSceneChange(wheel.SceneGame, wheel.SceneGameOver)
	if sessionBest != 5 || sessionBestAt != bestAt {
		t.Fatalf("session best changed after a worse run: %d", sessionBest)
	}
}

func TestOnSceneChangeSetsRunStart(t *testing.T) {
	newUIState(200, 200)
	runStart = time.Time{}
	onSceneChange(wheel.SceneHome, wheel.SceneGame)
	if runStart.IsZero() {
		t.Fatalf("run start not set on entering the game scene")
	}
}

func TestTextColorFor(t *testing.T) {
	light := color.RGBA{245, 245, 245, 255}
	dark := color.RGBA{10, 10, 10, 255}
	if c := textColorFor(wheel.RGB{R: 10, G: 10, B: 10}); c != light {
		t.Fatalf("dark wall should get light text, got %v", c)
	}
	if c := textColorFor(wheel.RGB{R: 245, G: 245, B: 245}); c != dark {
		t.Fatalf("light wall should get dark text, got %v", c)
	}
}

func TestRunTimeString(t *testing.T) {
	old := lastRunTime
	defer func() { lastRunTime = old }()

	lastRunTime = 90 * time.Second
	if s := runTimeString(); s != "1 m 30 s" {
		t.Fatalf("runTimeString(90s) = %q, want \"1 m 30 s\"", s)
	}

	lastRunTime = 450 * time.Millisecond
	if s := runTimeString(); s != "450 ms" {
		t.Fatalf("runTimeString(450ms) = %q, want \"450 ms\"", s)
	}
}
