package ebitenhost

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/flycam"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

func newTestHost(t *testing.T) (*Host, *[]ebiten.CursorModeType) {
	t.Helper()
	h := New(WithSize(800, 600))
	var applied []ebiten.CursorModeType
	h.cursor.apply = func(m ebiten.CursorModeType) { applied = append(applied, m) }
	return h, &applied
}

func TestKeyMappingRoundTrip(t *testing.T) {
	for k, ek := range toEbiten {
		back, ok := EngineKey(ek)
		if !ok || back != k {
			t.Errorf("EngineKey(%v) = (%v, %v), want %v", ek, back, ok, k)
		}
	}
	for _, k := range []common.Key{common.KeyW, common.KeySpace, common.KeyEsc, common.KeyLeftShift, common.KeyUp} {
		if _, ok := EbitenKey(k); !ok {
			t.Errorf("default binding %v has no ebiten key", k)
		}
	}
	if _, ok := EbitenKey(common.Key(999)); ok {
		t.Error("unknown key mapped")
	}
}

func TestEbitenCursorMode(t *testing.T) {
	tests := []struct {
		mode    window.CursorGrabMode
		visible bool
		want    ebiten.CursorModeType
	}{
		{mode: window.CursorGrabNone, visible: true, want: ebiten.CursorModeVisible},
		{mode: window.CursorGrabNone, visible: false, want: ebiten.CursorModeHidden},
		{mode: window.CursorGrabConfined, visible: false, want: ebiten.CursorModeCaptured},
		{mode: window.CursorGrabLocked, visible: true, want: ebiten.CursorModeCaptured},
	}
	for _, tt := range tests {
		if got := ebitenCursorMode(tt.mode, tt.visible); got != tt.want {
			t.Errorf("ebitenCursorMode(%v, %v) = %v, want %v", tt.mode, tt.visible, got, tt.want)
		}
	}
}

func TestHostForwardsKeys(t *testing.T) {
	h, _ := newTestHost(t)
	in := h.Engine().InputState()

	h.pressKeys([]ebiten.Key{ebiten.KeyW, ebiten.KeyF12})
	if !in.IsPressed(common.KeyW) {
		t.Fatal("W not forwarded")
	}
	h.releaseKeys([]ebiten.Key{ebiten.KeyW})
	if in.IsPressed(common.KeyW) {
		t.Fatal("W release not forwarded")
	}
}

func TestHostCursorDeltas(t *testing.T) {
	h, _ := newTestHost(t)
	in := h.Engine().InputState()

	h.moveCursor(100, 100)
	h.moveCursor(110, 95)
	h.moveCursor(110, 95)
	got := in.ReadMotion()
	if len(got) != 1 || got[0] != (input.MouseMotion{DX: 10, DY: -5}) {
		t.Fatalf("ReadMotion() = %v, want [{10 -5}]", got)
	}

	// A mode change resets the reference point.
	h.cursor.SetCursorGrabMode(window.CursorGrabConfined)
	h.moveCursor(400, 300)
	if got := in.ReadMotion(); len(got) != 0 {
		t.Fatalf("capture jump reported as motion: %v", got)
	}
}

func TestHostLayoutUpdatesSize(t *testing.T) {
	h, _ := newTestHost(t)
	w, hh := h.Layout(1024, 768)
	if w != 1024 || hh != 768 {
		t.Fatalf("Layout() = %dx%d", w, hh)
	}
	c, err := h.Engine().PrimaryWindow()
	if err != nil {
		t.Fatalf("PrimaryWindow() error = %v", err)
	}
	if c.Width() != 1024 || c.Height() != 768 {
		t.Fatalf("size = %dx%d, want 1024x768", c.Width(), c.Height())
	}
}

func TestHostDrivesFlyCamera(t *testing.T) {
	h, applied := newTestHost(t)
	e := h.Engine()
	e.AddPlugin(flycam.NewPlugin(flycam.WithSpawnTransform(common.NewTransform(0, 0, 0))))

	h.pressKeys([]ebiten.Key{ebiten.KeyEscape})
	e.Step(0)
	if got := *applied; len(got) == 0 || got[len(got)-1] != ebiten.CursorModeCaptured {
		t.Fatalf("cursor modes applied = %v, want captured last", got)
	}

	h.releaseKeys([]ebiten.Key{ebiten.KeyEscape})
	h.pressKeys([]ebiten.Key{ebiten.KeyD})
	e.Step(0.5)

	cam := e.World().Query(flycam.Marker)[0]
	if got := cam.Transform().Translation; !got.ApproxEqualThreshold(mgl32.Vec3{6, 0, 0}, 1e-4) {
		t.Fatalf("translation = %v, want (6,0,0)", got)
	}
}
