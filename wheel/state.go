package wheel

import (
	"math"
	"math/rand"
	"time"
)

// Scene identifies which screen is active. Exactly one scene is live at a
// time and gates which events have any effect.
type Scene int

const (
	SceneHome Scene = iota
	SceneAbout
	SceneGame
	SceneGameOver
)

var sceneNames = []string{
	"home",
	"about",
	"game",
	"game-over",
}

func (s Scene) String() string {
	if s < 0 || int(s) >= len(sceneNames) {
		return "unknown"
	}
	return sceneNames[s]
}

// homeSpinStep is the passive wheel rotation in degrees per tick on the
// home scene.
const homeSpinStep = 0.25

// baseLevelMillis is the round time at score zero.
const baseLevelMillis = 5000

// Event is one of the six inputs the state machine accepts. Events are
// delivered from a single goroutine and each is fully processed before the
// next is accepted.
type Event interface{ isEvent() }

// StartGame begins a new game from the home or game-over scene.
type StartGame struct{}

// OpenAbout switches from home to the about scene.
type OpenAbout struct{}

// ReturnHome leaves the about or game-over scene and restores defaults.
type ReturnHome struct{}

// WindowSize reports the viewport size in CSS pixels. The subscription
// fires once eagerly at startup and again on every change.
type WindowSize struct{ W, H int }

// DrawTick is one animation frame with the elapsed time since the previous
// frame.
type DrawTick struct{ Delta time.Duration }

// WheelClick is a pointer click in wheel-local CSS pixels, origin at the
// wheel's top-left corner on screen.
type WheelClick struct{ X, Y float64 }

func (StartGame) isEvent()  {}
func (OpenAbout) isEvent()  {}
func (ReturnHome) isEvent() {}
func (WindowSize) isEvent() {}
func (DrawTick) isEvent()   {}
func (WheelClick) isEvent() {}

// State is the whole game: scene, score, timing, colors, and the wheel
// surface it drives. Dispatch mutates it synchronously; the presentation
// layer renders from it between events.
type State struct {
	Scene         Scene
	Score         int
	WindowW       int
	WindowH       int
	WheelRotation float64 // degrees, [0,360)
	LevelStart    time.Time
	PrevWall      RGB
	NextWall      RGB
	WallProgress  float64 // [0,1]; 1 means the round timed out

	surface Surface
	now     func() time.Time
	rng     *rand.Rand
}

// NewState creates the session state: home scene, score zero, white walls,
// and the given (typically still empty) wheel surface. The state lives for
// the whole session; there is no teardown.
func NewState(s Surface) *State {
	st := &State{
		surface: s,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	st.reset()
	return st
}

// SetClock overrides the time source, for tests.
func (st *State) SetClock(now func() time.Time) { st.now = now }

// SetRand overrides the random source, for tests.
func (st *State) SetRand(r *rand.Rand) { st.rng = r }

// Surface returns the owned wheel surface for rendering.
func (st *State) Surface() Surface { return st.surface }

// WheelSize is the wheel diameter in CSS pixels: the window's short side.
func (st *State) WheelSize() int {
	if st.WindowW < st.WindowH {
		return st.WindowW
	}
	return st.WindowH
}

// reset restores every game field to its default. Window size and the
// surface survive; they belong to the viewport, not the run.
func (st *State) reset() {
	st.Scene = SceneHome
	st.Score = 0
	st.WheelRotation = 0
	st.LevelStart = time.Time{}
	st.PrevWall = White
	st.NextWall = White
	st.WallProgress = 0
}

// Dispatch runs one event through the transition table and returns st for
// reading.
func (st *State) Dispatch(ev Event) *State {
	switch ev := ev.(type) {
	case StartGame:
		st.startGame()
	case OpenAbout:
		if st.Scene == SceneHome {
			st.Scene = SceneAbout
		}
	case ReturnHome:
		if st.Scene == SceneAbout || st.Scene == SceneGameOver {
			st.reset()
		}
	case WindowSize:
		st.WindowW, st.WindowH = ev.W, ev.H
		Paint(st.surface, st.WheelSize())
	case DrawTick:
		st.tick()
	case WheelClick:
		st.click(ev.X, ev.Y)
	}
	return st
}

func (st *State) startGame() {
	if st.Scene != SceneHome && st.Scene != SceneGameOver {
		return
	}
	st.Scene = SceneGame
	st.Score = 0
	st.LevelStart = st.now()
	st.WallProgress = 0
	st.NextWall = SampleRandom(st.surface, st.PrevWall, st.rng)
}

func (st *State) tick() {
	// The painter no-ops when the resolution already matches, so checking
	// every frame is cheap.
	Paint(st.surface, st.WheelSize())

	switch st.Scene {
	case SceneHome:
		st.WheelRotation += homeSpinStep
		if st.WheelRotation >= 359 {
			st.WheelRotation = 0
		}
	case SceneGame:
		if st.WallProgress == 1 {
			// The wall caught up; it becomes the new background.
			st.Scene = SceneGameOver
			st.PrevWall = st.NextWall
			return
		}
		elapsed := float64(st.now().Sub(st.LevelStart).Milliseconds())
		st.WallProgress = clamp01(elapsed / float64(st.levelDuration()))
	}
}

// levelDuration is the current round length in milliseconds. The formula is
// the original game's, quirk included: past a score of 50 the subtraction
// switches from score*50 to plain score, so rounds jump back near five
// seconds and only shrink again very slowly. The progress clamp bounds any
// out-of-range result.
func (st *State) levelDuration() int {
	if st.Score > 50 {
		return baseLevelMillis - st.Score
	}
	return baseLevelMillis - st.Score*50
}

// click handles a pointer click at wheel-local CSS coordinates. Outside the
// game scene it is a no-op.
func (st *State) click(x, y float64) {
	if st.Scene != SceneGame {
		return
	}

	// Undo the visual rotation about the wheel center so the click lands in
	// the wheel's unrotated texture space, then scale up to the oversampled
	// backing resolution.
	size := float64(st.WheelSize())
	cx, cy := size/2, size/2
	rad := -st.WheelRotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := x-cx, y-cy
	ux := cx + dx*cos - dy*sin
	uy := cy + dx*sin + dy*cos

	c, ok := SamplePoint(st.surface, int(ux*Oversample), int(uy*Oversample))
	if !ok {
		return
	}
	if Distance(c, st.NextWall) > MatchThreshold {
		return // miss
	}

	st.Score++
	st.PrevWall = st.NextWall
	st.NextWall = SampleRandom(st.surface, st.PrevWall, st.rng)
	st.WallProgress = 0
	st.LevelStart = st.now()
	st.WheelRotation = st.rng.Float64() * 360
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
