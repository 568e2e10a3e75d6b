package main

import (
	"image"

	"github.com/andrejewski/rematch/wheel"

	"github.com/pkg/browser"
)

const projectURL = "https://github.com/andrejewski/rematch"

const (
	buttonW   = 160
	buttonH   = 44
	buttonGap = 16
	buttonPad = 24
)

type button struct {
	label   string
	rect    image.Rectangle
	hovered bool
	action  func()
}

var activeButtons []*button

// layoutButtons builds the buttons for the current scene, centered in a row
// near the bottom of the window.
func layoutButtons() []*button {
	if state == nil {
		return nil
	}
	y := state.WindowH - buttonH - buttonPad
	switch state.Scene {
	case wheel.SceneHome:
		return buttonRow(state.WindowW, y,
			&button{label: "Play", action: func() { state.Dispatch(wheel.StartGame{}) }},
			&button{label: "About", action: func() { state.Dispatch(wheel.OpenAbout{}) }},
		)
	case wheel.SceneAbout:
		return buttonRow(state.WindowW, y,
			&button{label: "Source", action: openProjectPage},
			&button{label: "Back", action: func() { state.Dispatch(wheel.ReturnHome{}) }},
		)
	case wheel.SceneGameOver:
		return buttonRow(state.WindowW, y,
			&button{label: "Play again", action: func() { state.Dispatch(wheel.StartGame{}) }},
			&button{label: "Home", action: func() { state.Dispatch(wheel.ReturnHome{}) }},
		)
	}
	return nil
}

func buttonRow(winW, y int, btns ...*button) []*button {
	total := len(btns)*buttonW + (len(btns)-1)*buttonGap
	x := (winW - total) / 2
	for _, b := range btns {
		b.rect = image.Rect(x, y, x+buttonW, y+buttonH)
		x += buttonW + buttonGap
	}
	return btns
}

func updateButtons(mx, my int) {
	activeButtons = layoutButtons()
	pt := image.Pt(mx, my)
	for _, b := range activeButtons {
		b.hovered = pt.In(b.rect)
	}
}

func buttonAt(mx, my int) *button {
	pt := image.Pt(mx, my)
	for _, b := range activeButtons {
		if pt.In(b.rect) {
			return b
		}
	}
	return nil
}

func openProjectPage() {
	if err := browser.OpenURL(projectURL); err != nil {
		logWarn("open project page: %v", err)
	}
}
