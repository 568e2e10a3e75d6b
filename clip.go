package main

import (
	"fmt"

	"golang.design/x/clipboard"
)

var clipboardOK bool

// initClipboard is best-effort; some platforms have no clipboard backend.
func initClipboard() {
	if err := clipboard.Init(); err != nil {
		logWarn("clipboard unavailable: %v", err)
		return
	}
	clipboardOK = true
}

// copyScoreLine puts a shareable summary of the finished run on the
// clipboard.
func copyScoreLine() {
	if !clipboardOK {
		return
	}
	line := fmt.Sprintf("I matched %d colors in rematch before the wall caught me (%s)", state.Score, runTimeString())
	clipboard.Write(clipboard.FmtText, []byte(line))
	logDebug("copied score line: %s", line)
}
