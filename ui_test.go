package main

import (
	"testing"

	"github.com/andrejewski/rematch/wheel"
)

func newUIState(w, h int) {
	state = wheel.NewState(wheel.NewPixSurface(0, 0))
	state.Dispatch(wheel.WindowSize{W: w, H: h})
}

func TestButtonRowCentered(t *testing.T) {
	btns := buttonRow(800, 500, &button{label: "a"}, &button{label: "b"})
	if len(btns) != 2 {
		t.Fatalf("got %d buttons, want 2", len(btns))
	}
	left := btns[0].rect.Min.X
	right := 800 - btns[1].rect.Max.X
	if left != right {
		t.Fatalf("row not centered: %d left, %d right", left, right)
	}
	if btns[0].rect.Dy() != buttonH || btns[0].rect.Dx() != buttonW {
		t.Fatalf("button rect = %v, want %dx%d", btns[0].rect, buttonW, buttonH)
	}
	if btns[1].rect.Min.X-btns[0].rect.Max.X != buttonGap {
		t.Fatalf("gap = %d, want %d", btns[1].rect.Min.X-btns[0].rect.Max.X, buttonGap)
	}
}

func TestButtonsPerScene(t *testing.T) {
	newUIState(800, 600)

	labels := func() []string {
		var out []string
		for _, b := range layoutButtons() {
			out = append(out, b.label)
		}
		return out
	}

	got := labels()
	if len(got) != 2 || got[0] != "Play" || got[1] != "About" {
		t.Fatalf("home buttons = %v", got)
	}

	state.Dispatch(wheel.StartGame{})
	if got := labels(); len(got) != 0 {
		t.Fatalf("game scene has buttons: %v", got)
	}

	state.WallProgress = 1
	state.Dispatch(wheel.DrawTick{})
	got = labels()
	if len(got) != 2 || got[0] != "Play again" || got[1] != "Home" {
		t.Fatalf("game-over buttons = %v", got)
	}
}

func TestButtonHitTest(t *testing.T) {
	newUIState(800, 600)
	updateButtons(0, 0)
	if b := buttonAt(0, 0); b != nil {
		t.Fatalf("corner click hit button %q", b.label)
	}

	target := activeButtons[0]
	cx := (target.rect.Min.X + target.rect.Max.X) / 2
	cy := (target.rect.Min.Y + target.rect.Max.Y) / 2
	if b := buttonAt(cx, cy); b != target {
		t.Fatalf("center of %q did not hit it", target.label)
	}

	updateButtons(cx, cy)
	if !activeButtons[0].hovered {
		t.Fatalf("button under cursor not hovered")
	}
}

func TestButtonActionsDispatch(t *testing.T) {
	newUIState(800, 600)
	btns := layoutButtons()
	btns[0].action() // Play
	if state.Scene != wheel.SceneGame {
		t.Fatalf("scene after Play = %v, want game", state.Scene)
	}
}

func TestWheelOrigin(t *testing.T) {
	newUIState(800, 600)
	ox, oy := wheelOrigin()
	if ox != 100 || oy != 0 {
		t.Fatalf("wheel origin = (%d,%d), want (100,0)", ox, oy)
	}
}
