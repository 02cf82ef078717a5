package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCylinderBody_Intersect_Side(t *testing.T) {
	body := CylinderBody{}
	ray := core.NewRay(core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0))

	hit, ok := body.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got t=%f", hit.T)
	}
	assertVec3Equal(t, core.NewVec3(1, 0, 0), hit.Normal, 1e-9)
	if math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected v=0.5 at mid-height, got v=%f", hit.UV.Y)
	}
}

func TestCylinderBody_Intersect_VerticalRayMisses(t *testing.T) {
	// A ray parallel to the cylinder axis has a = 0 and cannot strike the
	// curved surface; only the caps can catch it.
	body := CylinderBody{}
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))

	if hit, ok := body.Intersect(ray); ok {
		t.Errorf("Expected miss for axis-parallel ray, got hit at t=%f", hit.T)
	}
}

func TestCylinderBody_Intersect_HeightClipped(t *testing.T) {
	// The near root lands above y=0.5, so the far root (inside wall) wins.
	body := CylinderBody{}
	ray := core.NewRay(core.NewVec3(5, 1.5, 0), core.NewVec3(-1, -0.2, 0))

	hit, ok := body.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-5.5) > 1e-9 {
		t.Errorf("Expected far root t=5.5, got t=%f", hit.T)
	}
	if y := ray.At(hit.T).Y; y < -0.5 || y > 0.5 {
		t.Errorf("Hit escaped the height bound: y=%f", y)
	}
}

func TestCylinderPrimitive_CapHit(t *testing.T) {
	cylinder := NewPrimitives().Cylinder
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))

	hit, ok := cylinder.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	// The top cap at y=0.5 is the first surface on the way down
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got t=%f", hit.T)
	}
	assertVec3Equal(t, core.NewVec3(0, 1, 0), hit.Normal, 1e-9)
}
