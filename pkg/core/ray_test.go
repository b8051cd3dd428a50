package core

import (
	"testing"
)

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 2, 3)},
		{1, NewVec3(1, 2, 2)},
		{2.5, NewVec3(1, 2, 0.5)},
		{-1, NewVec3(1, 2, 4)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); got.Subtract(tt.expected).Length() > tolerance {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.expected)
		}
	}
}

func TestRay_Time(t *testing.T) {
	if ray := NewRay(Vec3{}, NewVec3(1, 0, 0)); ray.Time != 0 {
		t.Errorf("NewRay time = %v, want 0", ray.Time)
	}
	if ray := NewRayAt(Vec3{}, NewVec3(1, 0, 0), 0.75); ray.Time != 0.75 {
		t.Errorf("NewRayAt time = %v, want 0.75", ray.Time)
	}
}
