package input

import (
	"slices"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

func TestStateHeldKeys(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyW)
	s.KeyDown(common.KeyA)
	s.KeyDown(common.KeyW)

	got := s.Pressed()
	want := []common.Key{common.KeyA, common.KeyW}
	if !slices.Equal(got, want) {
		t.Fatalf("Pressed() = %v, want %v", got, want)
	}

	s.KeyUp(common.KeyA)
	if s.IsPressed(common.KeyA) {
		t.Error("KeyA still held after KeyUp")
	}
	if !s.IsPressed(common.KeyW) {
		t.Error("KeyW released unexpectedly")
	}
}

func TestStateJustPressedIsEdgeTriggered(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyEsc)
	s.BeginTick()
	if !s.JustPressed(common.KeyEsc) {
		t.Fatal("expected Escape to be just pressed")
	}

	s.BeginTick()
	if s.JustPressed(common.KeyEsc) {
		t.Fatal("held key reported as just pressed on the next tick")
	}

	// A repeat press while held is not a new edge.
	s.KeyDown(common.KeyEsc)
	s.BeginTick()
	if s.JustPressed(common.KeyEsc) {
		t.Fatal("repeat press reported as just pressed")
	}

	s.KeyUp(common.KeyEsc)
	s.KeyDown(common.KeyEsc)
	s.BeginTick()
	if !s.JustPressed(common.KeyEsc) {
		t.Fatal("press after release not reported")
	}
}

func TestStatePressDuringTickCarriesOver(t *testing.T) {
	s := NewState()
	s.BeginTick()

	// The tick's systems already ran their checks when the press arrives.
	s.KeyDown(common.KeyEsc)
	if s.JustPressed(common.KeyEsc) {
		t.Fatal("press reported before the tick it belongs to")
	}

	s.BeginTick()
	if !s.JustPressed(common.KeyEsc) {
		t.Fatal("press arriving mid-tick was lost")
	}
	s.BeginTick()
	if s.JustPressed(common.KeyEsc) {
		t.Fatal("press reported for two ticks")
	}
}

func TestStateTapWithinOneTick(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyEsc)
	s.KeyUp(common.KeyEsc)
	s.BeginTick()

	if !s.JustPressed(common.KeyEsc) {
		t.Error("a press released before the tick should still be just pressed")
	}
	if s.IsPressed(common.KeyEsc) {
		t.Error("released key reported as held")
	}
}

func TestStateReadMotionDrains(t *testing.T) {
	s := NewState()
	s.MouseMoved(1, 2)
	s.MouseMoved(-3, 4)

	got := s.ReadMotion()
	want := []MouseMotion{{DX: 1, DY: 2}, {DX: -3, DY: 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("ReadMotion() = %v, want %v", got, want)
	}
	if again := s.ReadMotion(); len(again) != 0 {
		t.Fatalf("second ReadMotion() = %v, want empty", again)
	}
}

func TestStateMotionQueueIsBounded(t *testing.T) {
	s := NewState(WithMaxQueuedMotion(2))
	s.MouseMoved(1, 0)
	s.MouseMoved(2, 0)
	s.MouseMoved(3, 0)

	got := s.ReadMotion()
	want := []MouseMotion{{DX: 2}, {DX: 3}}
	if !slices.Equal(got, want) {
		t.Fatalf("ReadMotion() = %v, want %v", got, want)
	}
}

func TestStateReset(t *testing.T) {
	s := NewState()
	s.KeyDown(common.KeyD)
	s.BeginTick()
	s.KeyDown(common.KeyA)
	s.MouseMoved(5, 5)
	s.Reset()
	s.BeginTick()

	if len(s.Pressed()) != 0 || s.JustPressed(common.KeyD) || s.JustPressed(common.KeyA) || len(s.ReadMotion()) != 0 {
		t.Fatal("Reset left input behind")
	}
}

func TestStateConcurrentAccess(t *testing.T) {
	s := NewState()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.KeyDown(common.KeyW)
			s.MouseMoved(1, 1)
			s.KeyUp(common.KeyW)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.Pressed()
			_ = s.ReadMotion()
			s.BeginTick()
		}
	}()
	wg.Wait()
}
