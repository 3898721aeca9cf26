package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

type stubCursor struct {
	running bool
}

func (s *stubCursor) CursorGrabMode() window.CursorGrabMode       { return window.CursorGrabNone }
func (s *stubCursor) SetCursorGrabMode(mode window.CursorGrabMode) {}
func (s *stubCursor) CursorVisible() bool                          { return true }
func (s *stubCursor) SetCursorVisible(visible bool)                {}
func (s *stubCursor) Width() int                                   { return 800 }
func (s *stubCursor) Height() int                                  { return 600 }
func (s *stubCursor) IsRunning() bool                              { return s.running }

type recordingPlugin struct {
	calls *[]string
}

func (p recordingPlugin) Build(app App) {
	app.AddStartupSystem("startup", func() { *p.calls = append(*p.calls, "startup") })
	app.AddSystem("first", func(float32) { *p.calls = append(*p.calls, "first") })
	app.AddSystem("second", func(float32) { *p.calls = append(*p.calls, "second") })
}

func TestStepOrder(t *testing.T) {
	var calls []string
	e := NewEngine()
	e.AddPlugin(recordingPlugin{calls: &calls})
	e.SetTickCallback(func(float32) { calls = append(calls, "callback") })

	e.Step(0)
	e.Step(0)

	want := []string{"startup", "first", "second", "callback", "first", "second", "callback"}
	if !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestStepPassesDeltaTime(t *testing.T) {
	var got float32
	e := NewEngine()
	e.AddSystem("dt", func(dt float32) { got = dt })
	e.Step(0.25)
	if got != 0.25 {
		t.Fatalf("deltaTime = %v, want 0.25", got)
	}
}

func TestStepReportsEdgesOnce(t *testing.T) {
	e := NewEngine()
	e.InputState().KeyDown(common.KeyEsc)
	e.World().Spawn(common.NewTransform(0, 0, 0), scene.Marker("cam"))

	var sawPress, sawAdded bool
	e.AddSystem("edges", func(float32) {
		sawPress = e.Input().JustPressed(common.KeyEsc)
		sawAdded = len(e.World().Added("cam")) == 1
	})

	e.Step(0)
	if !sawPress || !sawAdded {
		t.Fatalf("first tick: press=%v added=%v, want both", sawPress, sawAdded)
	}
	e.Step(0)
	if sawPress || sawAdded {
		t.Fatalf("second tick: press=%v added=%v, want neither", sawPress, sawAdded)
	}
	if !e.Input().IsPressed(common.KeyEsc) {
		t.Fatal("held key released between ticks")
	}
}

func TestStepDefersMidTickInput(t *testing.T) {
	e := NewEngine()
	var presses, additions []bool
	e.AddSystem("reader", func(float32) {
		presses = append(presses, e.Input().JustPressed(common.KeyEsc))
		additions = append(additions, len(e.World().Added("cam")) == 1)
	})
	spawned := false
	e.AddSystem("writer", func(float32) {
		if !spawned {
			spawned = true
			e.InputState().KeyDown(common.KeyEsc)
			e.World().Spawn(common.NewTransform(0, 0, 0), scene.Marker("cam"))
		}
	})

	for i := 0; i < 3; i++ {
		e.Step(0)
	}
	want := []bool{false, true, false}
	if !slices.Equal(presses, want) {
		t.Errorf("JustPressed per tick = %v, want %v", presses, want)
	}
	if !slices.Equal(additions, want) {
		t.Errorf("Added per tick = %v, want %v", additions, want)
	}
}

func TestStartupSpawnVisibleOnFirstTick(t *testing.T) {
	e := NewEngine()
	e.AddStartupSystem("spawn", func() {
		e.World().Spawn(common.NewTransform(0, 0, 0), scene.Marker("cam"))
	})
	var added int
	e.AddSystem("reader", func(float32) { added = len(e.World().Added("cam")) })

	e.Step(0)
	if added != 1 {
		t.Fatalf("Added on first tick = %d, want 1", added)
	}
}

func TestPrimaryWindow(t *testing.T) {
	if _, err := NewEngine().PrimaryWindow(); !errors.Is(err, window.ErrNoPrimaryWindow) {
		t.Fatalf("headless PrimaryWindow() error = %v, want ErrNoPrimaryWindow", err)
	}

	c := &stubCursor{running: true}
	e := NewEngine(WithPrimaryWindow(c))
	got, err := e.PrimaryWindow()
	if err != nil || got != c {
		t.Fatalf("PrimaryWindow() = (%v, %v), want the stub", got, err)
	}

	c.running = false
	if _, err := e.PrimaryWindow(); !errors.Is(err, window.ErrNoPrimaryWindow) {
		t.Fatalf("closed PrimaryWindow() error = %v, want ErrNoPrimaryWindow", err)
	}
}

func TestSetTickRateBeforeRun(t *testing.T) {
	e := NewEngine(WithTickRate(30)).(*engine)
	if got := e.engineTickRate.Seconds(); got < 0.0333 || got > 0.0334 {
		t.Fatalf("tick period = %v, want 1/30s", got)
	}
	e.SetTickRate(0)
	if got := e.engineTickRate.Seconds(); got < 0.0166 || got > 0.0167 {
		t.Fatalf("tick period = %v, want 1/60s", got)
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	e := NewEngine()
	e.Quit()
	e.Quit()
}
