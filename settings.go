package main

// settings holds the runtime options. Options are session-only; nothing is
// written to disk.
type settings struct {
	Fullscreen    bool
	Notifications bool
	ShowFPS       bool
	DebugLogging  bool
	WindowW       int
	WindowH       int
}

var gsdef = settings{
	Notifications: true,
	WindowW:       initialWindowW,
	WindowH:       initialWindowH,
}

var gs = gsdef
