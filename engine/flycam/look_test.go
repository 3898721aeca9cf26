package flycam

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestClampPitch(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{in: 0, want: 0},
		{in: 1, want: 1},
		{in: 2, want: MaxPitch},
		{in: -2, want: -MaxPitch},
		{in: MaxPitch, want: MaxPitch},
	}
	for _, tt := range tests {
		if got := ClampPitch(tt.in); got != tt.want {
			t.Errorf("ClampPitch(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWindowScale(t *testing.T) {
	if got := WindowScale(1280, 720); got != 720 {
		t.Errorf("WindowScale(1280, 720) = %v, want 720", got)
	}
	if got := WindowScale(600, 800); got != 600 {
		t.Errorf("WindowScale(600, 800) = %v, want 600", got)
	}
}

func TestPointerLookDelta(t *testing.T) {
	motion := []input.MouseMotion{{DX: 10}, {DY: -5}}
	dYaw, dPitch := PointerLookDelta(motion, 0.00012, 720)

	if want := -mgl32.DegToRad(0.00012 * 10 * 720); !mgl32.FloatEqualThreshold(dYaw, want, 1e-6) {
		t.Errorf("dYaw = %v, want %v", dYaw, want)
	}
	if want := mgl32.DegToRad(0.00012 * 5 * 720); !mgl32.FloatEqualThreshold(dPitch, want, 1e-6) {
		t.Errorf("dPitch = %v, want %v", dPitch, want)
	}
}

func TestKeyboardLookDelta(t *testing.T) {
	b := DefaultKeyBindings()
	step := mgl32.DegToRad(0.05 * 1 * 720)

	tests := []struct {
		name      string
		held      []common.Key
		wantYaw   float32
		wantPitch float32
	}{
		{name: "left", held: []common.Key{common.KeyLeft}, wantYaw: step},
		{name: "right", held: []common.Key{common.KeyRight}, wantYaw: -step},
		{name: "up", held: []common.Key{common.KeyUp}, wantPitch: step},
		{name: "down", held: []common.Key{common.KeyDown}, wantPitch: -step},
		{name: "left and right cancel", held: []common.Key{common.KeyLeft, common.KeyRight}},
		{name: "movement keys ignored", held: []common.Key{common.KeyW}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dYaw, dPitch := KeyboardLookDelta(tt.held, b, 0.05, 1, 720)
			if !mgl32.FloatEqualThreshold(dYaw, tt.wantYaw, 1e-6) || !mgl32.FloatEqualThreshold(dPitch, tt.wantPitch, 1e-6) {
				t.Errorf("got (%v, %v), want (%v, %v)", dYaw, dPitch, tt.wantYaw, tt.wantPitch)
			}
		})
	}
}

func TestApplyLook(t *testing.T) {
	t.Run("zero deltas keep identity", func(t *testing.T) {
		got := ApplyLook(mgl32.QuatIdent(), 0, 0)
		if !got.ApproxEqualThreshold(mgl32.QuatIdent(), eps) {
			t.Fatalf("ApplyLook() = %v, want identity", got)
		}
	})

	t.Run("quarter yaw is a pure turn about Y", func(t *testing.T) {
		got := ApplyLook(mgl32.QuatIdent(), mgl32.DegToRad(90), 0)
		want := mgl32.QuatRotate(mgl32.DegToRad(90), common.WorldUp)
		if !got.ApproxEqualThreshold(want, eps) {
			t.Fatalf("ApplyLook() = %v, want %v", got, want)
		}
	})

	t.Run("pitch is clamped", func(t *testing.T) {
		got := ApplyLook(mgl32.QuatIdent(), 0, 10)
		_, pitch, _ := common.EulerYXZ(got)
		if !mgl32.FloatEqualThreshold(pitch, MaxPitch, eps) {
			t.Fatalf("pitch = %v, want %v", pitch, MaxPitch)
		}
		got = ApplyLook(got, 0, -20)
		_, pitch, _ = common.EulerYXZ(got)
		if !mgl32.FloatEqualThreshold(pitch, -MaxPitch, eps) {
			t.Fatalf("pitch = %v, want %v", pitch, -MaxPitch)
		}
	})

	t.Run("roll is discarded", func(t *testing.T) {
		rolled := mgl32.QuatRotate(0.3, mgl32.Vec3{0, 0, 1})
		_, _, roll := common.EulerYXZ(ApplyLook(rolled, 0.1, 0.1))
		if !mgl32.FloatEqualThreshold(roll, 0, eps) {
			t.Fatalf("roll = %v, want 0", roll)
		}
	})
}

func TestLookModeString(t *testing.T) {
	if LookModePointer.String() != "pointer" || LookModeKeyboard.String() != "keyboard" || LookMode(9).String() != "unknown" {
		t.Fatal("unexpected LookMode names")
	}
}
