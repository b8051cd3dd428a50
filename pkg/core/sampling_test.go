package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(random)
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %v outside unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	sum := Vec3{}
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("vector %v is not unit length: %v", v, v.Length())
		}
		sum = sum.Add(v)
	}

	// Uniform directions should roughly cancel out
	mean := sum.Multiply(1.0 / 1000)
	if mean.Length() > 0.1 {
		t.Errorf("mean direction %v suggests biased sampling", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("disk point %v not in z=0 plane", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %v outside unit disk", p)
		}
	}
}

func TestRandomVec3InRange(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		v := RandomVec3InRange(-2, 3, random)
		for axis := 0; axis < 3; axis++ {
			if v.Axis(axis) < -2 || v.Axis(axis) >= 3 {
				t.Fatalf("component %v outside [-2, 3)", v.Axis(axis))
			}
		}
	}
}

func TestSamplingDeterminism(t *testing.T) {
	a := rand.New(rand.NewSource(123))
	b := rand.New(rand.NewSource(123))

	for i := 0; i < 100; i++ {
		if got, want := RandomInUnitSphere(a), RandomInUnitSphere(b); got != want {
			t.Fatalf("same seed produced different samples: %v vs %v", got, want)
		}
	}
}
