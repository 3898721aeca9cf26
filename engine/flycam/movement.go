package flycam

import (
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// HorizontalBasis returns the transform's forward and right directions flattened onto the
// horizontal plane, so movement stays level regardless of pitch. Both are unit length, or zero
// when the transform looks straight up or down.
//
// Parameters:
//   - t: the camera transform
//
// Returns:
//   - forward: level forward direction
//   - right: level right direction
func HorizontalBasis(t common.Transform) (forward, right mgl32.Vec3) {
	lz := t.LocalZ()
	forward = common.NormalizeOrZero(mgl32.Vec3{-lz[0], 0, -lz[2]})
	right = common.NormalizeOrZero(mgl32.Vec3{lz[2], 0, -lz[0]})
	return forward, right
}

// MoveDirection sums the directions of every held movement key and normalizes the result,
// so diagonal movement is no faster than axis-aligned movement. Opposing keys cancel to zero.
//
// Parameters:
//   - t: the camera transform
//   - held: the keys currently held
//   - b: the key bindings
//
// Returns:
//   - mgl32.Vec3: unit direction, or zero
func MoveDirection(t common.Transform, held []common.Key, b KeyBindings) mgl32.Vec3 {
	forward, right := HorizontalBasis(t)

	var velocity mgl32.Vec3
	for _, key := range held {
		switch key {
		case b.MoveForward:
			velocity = velocity.Add(forward)
		case b.MoveBackward:
			velocity = velocity.Sub(forward)
		case b.MoveLeft:
			velocity = velocity.Sub(right)
		case b.MoveRight:
			velocity = velocity.Add(right)
		case b.MoveAscend:
			velocity = velocity.Add(common.WorldUp)
		case b.MoveDescend:
			velocity = velocity.Sub(common.WorldUp)
		}
	}
	return common.NormalizeOrZero(velocity)
}

// playerMove translates every fly camera by the held movement keys while the cursor is grabbed.
func (p *plugin) playerMove(deltaTime float32) {
	win, err := p.app.PrimaryWindow()
	if err != nil {
		p.warnNoWindow("player_move", err)
		return
	}
	if !IsGrabbed(win) {
		return
	}

	held := p.app.Input().Pressed()
	if len(held) == 0 {
		return
	}
	bindings := p.settings.KeyBindings()
	step := deltaTime * p.settings.Movement().MoveSpeed

	p.app.World().ForEach(Marker, func(e scene.Entity) {
		e.UpdateTransform(func(t *common.Transform) {
			velocity := MoveDirection(*t, held, bindings)
			t.Translation = t.Translation.Add(velocity.Mul(step))
		})
	})
}
