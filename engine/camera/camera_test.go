package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

type sizedCursor struct{ w, h int }

func (s sizedCursor) CursorGrabMode() window.CursorGrabMode   { return window.CursorGrabNone }
func (s sizedCursor) SetCursorGrabMode(window.CursorGrabMode) {}
func (s sizedCursor) CursorVisible() bool                     { return true }
func (s sizedCursor) SetCursorVisible(bool)                   {}
func (s sizedCursor) Width() int                              { return s.w }
func (s sizedCursor) Height() int                             { return s.h }

func TestCameraFollowsTarget(t *testing.T) {
	w := scene.NewWorld()
	e := w.Spawn(common.NewTransform(1, 2, 3))
	c := NewCamera(WithTarget(e))

	if x, y, z := c.Position(); x != 1 || y != 2 || z != 3 {
		t.Fatalf("Position() = (%v, %v, %v), want (1, 2, 3)", x, y, z)
	}

	e.UpdateTransform(func(tr *common.Transform) { tr.Translation[0] = 5 })
	c.Update()
	view := c.ViewMatrix()
	// The view maps the eye to the origin.
	eye := mgl32.Mat4(view).Mul4x1(mgl32.Vec4{5, 2, 3, 1})
	if !eye.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-5) {
		t.Fatalf("view * eye = %v, want origin", eye)
	}
}

func TestCameraWithoutTargetKeepsIdentityView(t *testing.T) {
	c := NewCamera()
	c.Update()
	if got := mgl32.Mat4(c.ViewMatrix()); !got.ApproxEqualThreshold(mgl32.Ident4(), 1e-6) {
		t.Fatalf("ViewMatrix() = %v, want identity", got)
	}
}

func TestCameraPluginFollowsMarkerAndAspect(t *testing.T) {
	const marker scene.Marker = "flycam"
	e := engine.NewEngine(engine.WithPrimaryWindow(sizedCursor{w: 1600, h: 900}))
	c := NewCamera(WithFollowMarker(marker), WithAutoAspect())
	e.AddPlugin(c)

	e.Step(0)
	if c.Target() != nil {
		t.Fatal("camera adopted a target before one existed")
	}

	cam := e.World().Spawn(common.NewTransform(0, 1, 0), marker)
	e.Step(0)
	if c.Target() == nil || c.Target().ID() != cam.ID() {
		t.Fatal("camera did not follow the marked entity")
	}
	if got, want := c.Aspect(), float32(1600)/900; !mgl32.FloatEqualThreshold(got, want, 1e-6) {
		t.Fatalf("Aspect() = %v, want %v", got, want)
	}
}

func TestInverseProjection(t *testing.T) {
	c := NewCamera(WithFov(1.0), WithAspect(1.5), WithNear(0.5), WithFar(50))
	proj, inv := c.ProjectionMatrix(), c.InverseProjectionMatrix()

	var out [16]float32
	common.Mul4(out[:], proj[:], inv[:])
	if !mgl32.Mat4(out).ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Fatalf("proj * inverse = %v, want identity", out)
	}
}

func TestCameraLabelsAreUnique(t *testing.T) {
	a, b := NewCamera(), NewCamera()
	if a.Label() == b.Label() || !strings.HasPrefix(a.Label(), "camera_") {
		t.Fatalf("labels %q and %q", a.Label(), b.Label())
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := GPUCameraUniform{CameraPosition: [3]float32{1, 2, 3}}
	u.ViewProj[0] = 7

	buf := u.Marshal()
	if len(buf) != 80 || u.Size() != 80 {
		t.Fatalf("size = %d/%d, want 80", len(buf), u.Size())
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); got != 7 {
		t.Errorf("view_proj[0] = %v, want 7", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])); got != 2 {
		t.Errorf("camera_position.y = %v, want 2", got)
	}
	if !strings.Contains(GPUCameraUniformSource, "camera_position: vec3<f32>") {
		t.Error("WGSL source does not declare camera_position")
	}
}
