package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera holds the viewing parameters and the precomputed camera-to-world
// (inverse view) matrix used to map camera-space rays into the scene.
type Camera struct {
	Position    core.Vec3
	Look        core.Vec3
	Up          core.Vec3
	HeightAngle float64 // Vertical field of view, radians

	InverseViewMatrix mgl64.Mat4
}

// NewCamera creates a camera and precomputes its inverse view matrix
func NewCamera(position, look, up core.Vec3, heightAngle float64) *Camera {
	return &Camera{
		Position:          position,
		Look:              look,
		Up:                up,
		HeightAngle:       heightAngle,
		InverseViewMatrix: inverseViewMatrix(position, look, up),
	}
}

// inverseViewMatrix builds the camera-to-world transform from an orthonormal
// look-at basis: its columns are the camera's right, up, and back vectors
// plus the camera position.
func inverseViewMatrix(position, look, up core.Vec3) mgl64.Mat4 {
	back := look.Normalize().Negate()
	upOrtho := up.Subtract(back.Multiply(up.Dot(back))).Normalize()
	right := upOrtho.Cross(back)

	// Column-major: right, up, back, position
	return mgl64.Mat4{
		right.X, right.Y, right.Z, 0,
		upOrtho.X, upOrtho.Y, upOrtho.Z, 0,
		back.X, back.Y, back.Z, 0,
		position.X, position.Y, position.Z, 1,
	}
}
