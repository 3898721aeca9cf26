package camera

import "github.com/Carmen-Shannon/oxy-flycam/engine/scene"

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithAutoAspect makes Update track the primary window's aspect ratio once the camera is built
// into an engine.
//
// Returns:
//   - CameraBuilderOption: a function that enables aspect tracking
func WithAutoAspect() CameraBuilderOption {
	return func(c *cameraImpl) {
		c.autoAspect = true
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithTarget makes the camera follow an entity from creation.
//
// Parameters:
//   - e: the entity to follow
//
// Returns:
//   - CameraBuilderOption: functional option to set the target
func WithTarget(e scene.Entity) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = e
	}
}

// WithFollowMarker makes Update adopt the first entity carrying the marker when no target is set.
// Useful when the followed entity is spawned by a startup system.
//
// Parameters:
//   - m: the marker to look for
//
// Returns:
//   - CameraBuilderOption: functional option to set the follow marker
func WithFollowMarker(m scene.Marker) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.followMarker = m
	}
}
