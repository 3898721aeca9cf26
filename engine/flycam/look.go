package flycam

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the pitch limit in radians (about 88.2°), just short of straight up or down.
const MaxPitch float32 = 1.54

// LookMode selects which input drives camera rotation.
type LookMode int32

const (
	// LookModePointer rotates the camera from mouse motion.
	LookModePointer LookMode = iota
	// LookModeKeyboard rotates the camera from the look keys.
	LookModeKeyboard
)

// String returns a readable name for the look mode.
func (m LookMode) String() string {
	switch m {
	case LookModePointer:
		return "pointer"
	case LookModeKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// ClampPitch limits pitch to [-MaxPitch, MaxPitch].
//
// Parameters:
//   - pitch: the pitch in radians
//
// Returns:
//   - float32: the clamped pitch
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

// WindowScale returns the smaller window dimension in pixels. Scaling look input by it keeps
// horizontal and vertical sensitivity equal regardless of aspect ratio.
//
// Parameters:
//   - width, height: window size in pixels
//
// Returns:
//   - float32: min(width, height)
func WindowScale(width, height int) float32 {
	return float32(min(width, height))
}

// PointerLookDelta accumulates yaw and pitch changes from mouse motion. Moving the pointer
// right decreases yaw (turns right) and moving it down decreases pitch (looks down).
//
// Parameters:
//   - motion: mouse motion events for this tick
//   - sensitivity: the mouse sensitivity
//   - scale: the window scale
//
// Returns:
//   - dYaw, dPitch: the rotation deltas in radians
func PointerLookDelta(motion []input.MouseMotion, sensitivity, scale float32) (dYaw, dPitch float32) {
	for _, ev := range motion {
		dPitch -= mgl32.DegToRad(sensitivity * ev.DY * scale)
		dYaw -= mgl32.DegToRad(sensitivity * ev.DX * scale)
	}
	return dYaw, dPitch
}

// KeyboardLookDelta accumulates yaw and pitch changes from held look keys.
// Up and left increase pitch and yaw; down and right decrease them.
//
// Parameters:
//   - held: the keys currently held
//   - b: the key bindings
//   - sensitivity: the keyboard sensitivity
//   - deltaTime: elapsed seconds this tick
//   - scale: the window scale
//
// Returns:
//   - dYaw, dPitch: the rotation deltas in radians
func KeyboardLookDelta(held []common.Key, b KeyBindings, sensitivity, deltaTime, scale float32) (dYaw, dPitch float32) {
	step := mgl32.DegToRad(sensitivity * deltaTime * scale)
	for _, key := range held {
		switch key {
		case b.LookUp:
			dPitch += step
		case b.LookDown:
			dPitch -= step
		case b.LookLeft:
			dYaw += step
		case b.LookRight:
			dYaw -= step
		}
	}
	return dYaw, dPitch
}

// ApplyLook extracts yaw and pitch from the rotation, adds the deltas, clamps pitch and
// rebuilds the rotation as yaw about world up followed by pitch about the local right axis.
// Any roll in the input rotation is discarded.
//
// Parameters:
//   - rotation: the current orientation
//   - dYaw, dPitch: rotation deltas in radians
//
// Returns:
//   - mgl32.Quat: the new orientation
func ApplyLook(rotation mgl32.Quat, dYaw, dPitch float32) mgl32.Quat {
	yaw, pitch, _ := common.EulerYXZ(rotation)
	yaw += dYaw
	pitch = ClampPitch(pitch + dPitch)
	return common.QuatFromYawPitch(yaw, pitch)
}

// playerLook rotates every fly camera from mouse motion or look keys while the cursor is grabbed.
func (p *plugin) playerLook(deltaTime float32) {
	win, err := p.app.PrimaryWindow()
	if err != nil {
		p.warnNoWindow("player_look", err)
		return
	}

	mode := p.LookMode()
	var motion []input.MouseMotion
	if mode == LookModePointer {
		// Drain even while free so motion made with a released cursor is not replayed after a grab.
		motion = p.app.Input().ReadMotion()
	}
	if !IsGrabbed(win) {
		return
	}

	scale := WindowScale(win.Width(), win.Height())
	movement := p.settings.Movement()

	var dYaw, dPitch float32
	switch mode {
	case LookModeKeyboard:
		dYaw, dPitch = KeyboardLookDelta(p.app.Input().Pressed(), p.settings.KeyBindings(), movement.KeyboardSensitivity, deltaTime, scale)
	default:
		dYaw, dPitch = PointerLookDelta(motion, movement.MouseSensitivity, scale)
	}

	p.app.World().ForEach(Marker, func(e scene.Entity) {
		e.UpdateTransform(func(t *common.Transform) {
			t.Rotation = ApplyLook(t.Rotation, dYaw, dPitch)
		})
	})
}
