package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
)

func main() {
	flag.BoolVar(&gs.DebugLogging, "debug", false, "enable debug logging")
	flag.BoolVar(&gs.Fullscreen, "fullscreen", false, "start fullscreen")
	flag.BoolVar(&gs.ShowFPS, "fps", false, "show frame statistics")
	flag.BoolVar(&gs.Notifications, "notify", true, "desktop notification on a new session best")
	flag.IntVar(&gs.WindowW, "width", gsdef.WindowW, "window width")
	flag.IntVar(&gs.WindowH, "height", gsdef.WindowH, "window height")
	flag.Parse()

	setupLogging(gs.DebugLogging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runGame(ctx)
}
