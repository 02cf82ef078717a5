package core

import "github.com/go-gl/mathgl/mgl64"

// Point returns the vector as an mgl64 homogeneous position (w = 1).
func (v Vec3) Point() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 1}
}

// Direction returns the vector as an mgl64 homogeneous direction (w = 0).
func (v Vec3) Direction() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 0}
}

// ToMGL converts the vector to an mgl64.Vec3.
func (v Vec3) ToMGL() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMGL converts an mgl64.Vec3 to a Vec3.
func FromMGL(v mgl64.Vec3) Vec3 {
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// FromMGL4 converts an mgl64.Vec4 to a Vec3, dropping the homogeneous
// coordinate.
func FromMGL4(v mgl64.Vec4) Vec3 {
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
