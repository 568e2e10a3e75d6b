package main

import (
	"image/color"

	dark "github.com/thiagokokada/dark-mode-go"
)

// palette is the fixed chrome coloring for the non-game scenes.
type palette struct {
	Background color.RGBA
	Panel      color.RGBA
	PanelEdge  color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
}

var palDark = palette{
	Background: color.RGBA{24, 26, 32, 255},
	Panel:      color.RGBA{44, 48, 58, 255},
	PanelEdge:  color.RGBA{90, 96, 110, 255},
	Text:       color.RGBA{235, 235, 240, 255},
	Muted:      color.RGBA{150, 155, 165, 255},
}

var palLight = palette{
	Background: color.RGBA{242, 242, 245, 255},
	Panel:      color.RGBA{222, 224, 230, 255},
	PanelEdge:  color.RGBA{160, 165, 175, 255},
	Text:       color.RGBA{25, 28, 34, 255},
	Muted:      color.RGBA{110, 115, 125, 255},
}

var pal = palDark

// initPalette follows the OS appearance. A failed probe keeps the dark
// palette.
func initPalette() {
	isDark, err := dark.IsDarkMode()
	if err != nil {
		logDebug("dark mode probe failed: %v", err)
		return
	}
	if isDark {
		pal = palDark
	} else {
		pal = palLight
	}
}
