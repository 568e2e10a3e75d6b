package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
// Used for new session bests; gated behind the notify setting by callers.
func notifyDesktop(title, body string) {
	if body == "" || isWASM {
		return
	}
	// Skip on headless Linux without a display; beeep would error.
	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return
	}
	if err := beeep.Notify(title, body, ""); err != nil {
		logDebug("notification failed: %v", err)
	}
}
