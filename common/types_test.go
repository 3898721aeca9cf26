package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformLookingAt(t *testing.T) {
	tr := NewTransform(-2, 5, 5).LookingAt(mgl32.Vec3{}, WorldUp)

	want := mgl32.Vec3{2, -5, -5}.Normalize()
	if got := tr.Forward(); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Forward() = %v, want %v", got, want)
	}
	if got := tr.LocalX(); !mgl32.FloatEqualThreshold(got[1], 0, 1e-5) {
		t.Errorf("LocalX() = %v, want no vertical component", got)
	}
}

func TestTransformLookingAtSelfIsNoop(t *testing.T) {
	tr := NewTransform(1, 1, 1)
	tr.Rotation = QuatFromYawPitch(0.5, 0)
	got := tr.LookingAt(mgl32.Vec3{1, 1, 1}, WorldUp)
	if got.Rotation != tr.Rotation {
		t.Fatalf("rotation changed to %v", got.Rotation)
	}
}

func TestTransformViewMatrixInvertsModel(t *testing.T) {
	tr := NewTransform(4, -1, 2)
	tr.Rotation = QuatFromYawPitch(-1.1, 0.4)

	model, view := tr.Matrix(), tr.ViewMatrix()
	var out [16]float32
	Mul4(out[:], view[:], model[:])

	if !mgl32.Mat4(out).ApproxEqualThreshold(mgl32.Ident4(), 1e-5) {
		t.Fatalf("view * model = %v, want identity", out)
	}
}
