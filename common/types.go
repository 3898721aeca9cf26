// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the position and orientation of a scene entity in world space.
// Orientation is stored as a unit quaternion; the camera looks down its local -Z axis.
type Transform struct {
	// Translation is the world-space position.
	Translation mgl32.Vec3

	// Rotation is the world-space orientation.
	Rotation mgl32.Quat
}

// NewTransform returns a transform at the given position with identity rotation.
//
// Parameters:
//   - x, y, z: world-space position
//
// Returns:
//   - Transform: the new transform
func NewTransform(x, y, z float32) Transform {
	return Transform{
		Translation: mgl32.Vec3{x, y, z},
		Rotation:    mgl32.QuatIdent(),
	}
}

// LocalX returns the transform's local +X (right) axis in world space.
func (t Transform) LocalX() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// LocalY returns the transform's local +Y (up) axis in world space.
func (t Transform) LocalY() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// LocalZ returns the transform's local +Z (backward) axis in world space.
func (t Transform) LocalZ() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, 1})
}

// Forward returns the direction the transform faces (local -Z) in world space.
func (t Transform) Forward() mgl32.Vec3 {
	return t.LocalZ().Mul(-1)
}

// LookingAt returns a copy of the transform rotated so that its forward axis points at target.
// The rotation is built from yaw and pitch only, so the result carries no roll regardless of up;
// up is only consulted to leave the rotation unchanged when target coincides with the position.
//
// Parameters:
//   - target: world-space point to face
//   - up: the world up direction (typically WorldUp)
//
// Returns:
//   - Transform: the reoriented transform
func (t Transform) LookingAt(target, up mgl32.Vec3) Transform {
	dir := NormalizeOrZero(target.Sub(t.Translation))
	if dir.Len() == 0 || NormalizeOrZero(up).Len() == 0 {
		return t
	}
	yaw := float32(math.Atan2(float64(-dir[0]), float64(-dir[2])))
	pitch := float32(math.Asin(float64(mgl32.Clamp(dir[1], -1, 1))))
	t.Rotation = QuatFromYawPitch(yaw, pitch)
	return t
}

// Matrix returns the column-major model matrix (translation * rotation) of the transform.
//
// Returns:
//   - [16]float32: the model matrix
func (t Transform) Matrix() [16]float32 {
	m := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2]).Mul4(t.Rotation.Mat4())
	return [16]float32(m)
}

// ViewMatrix returns the column-major view matrix, the inverse of the model matrix.
// The rotation is orthonormal so its inverse is its conjugate.
//
// Returns:
//   - [16]float32: the view matrix
func (t Transform) ViewMatrix() [16]float32 {
	m := t.Rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-t.Translation[0], -t.Translation[1], -t.Translation[2]))
	return [16]float32(m)
}
