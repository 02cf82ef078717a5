package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{
			name:     "unit vector unchanged",
			input:    NewVec3(1, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "3-4-5 triangle",
			input:    NewVec3(3, 4, 0),
			expected: NewVec3(0.6, 0.8, 0),
		},
		{
			name:     "zero vector stays zero",
			input:    NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.input.Normalize()
			assertVec3Equal(t, tt.expected, result, 1e-9)
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if dot := a.Dot(b); math.Abs(dot-32) > 1e-9 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}

	cross := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	assertVec3Equal(t, NewVec3(0, 0, 1), cross, 1e-9)
}

func TestVec3_Clamp(t *testing.T) {
	result := NewVec3(2, -1, 0.5).Clamp(0, 1)
	assertVec3Equal(t, NewVec3(1, 0, 0.5), result, 1e-9)
}

func TestReflect(t *testing.T) {
	invSqrt2 := 1 / math.Sqrt(2)

	tests := []struct {
		name      string
		direction Vec3
		axis      Vec3
		expected  Vec3
	}{
		{
			name:      "45 degree bounce off floor",
			direction: NewVec3(invSqrt2, -invSqrt2, 0),
			axis:      NewVec3(0, 1, 0),
			expected:  NewVec3(invSqrt2, invSqrt2, 0),
		},
		{
			name:      "head-on reversal",
			direction: NewVec3(0, 0, -1),
			axis:      NewVec3(0, 0, 1),
			expected:  NewVec3(0, 0, 1),
		},
		{
			name:      "unnormalized input is normalized",
			direction: NewVec3(2, -2, 0),
			axis:      NewVec3(0, 1, 0),
			expected:  NewVec3(invSqrt2, invSqrt2, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.direction, tt.axis)
			assertVec3Equal(t, tt.expected, result, 1e-9)
		})
	}
}

func assertVec3Equal(t *testing.T, expected, actual Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(expected.X-actual.X) > tolerance ||
		math.Abs(expected.Y-actual.Y) > tolerance ||
		math.Abs(expected.Z-actual.Z) > tolerance {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
