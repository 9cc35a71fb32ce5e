package vmath

import (
	"math"
	"testing"
)

func TestEllipseRadius(t *testing.T) {
	tests := []struct {
		name     string
		a, e     float64
		theta    float64
		expected float64
	}{
		{"Circular orbit", 10, 0, 1.3, 10},
		{"Perihelion", 10, 0.5, 0, 5},
		{"Aphelion", 10, 0.5, math.Pi, 15},
		{"Quarter orbit", 10, 0.5, math.Pi / 2, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EllipseRadius(tt.a, tt.e, tt.theta)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("EllipseRadius(%v, %v, %v) = %v, want %v",
					tt.a, tt.e, tt.theta, got, tt.expected)
			}
		})
	}
}

func TestOrbitPointFlat(t *testing.T) {
	// Zero inclination keeps the orbit in the X/Z plane
	for theta := 0.0; theta < TwoPi; theta += 0.37 {
		p := OrbitPoint(5, 0.2, 0, theta)
		if p.Y != 0 {
			t.Fatalf("flat orbit left the plane at theta=%v: Y=%v", theta, p.Y)
		}
	}
}

func TestOrbitPointInclined(t *testing.T) {
	incl := Radians(30)
	p := OrbitPoint(10, 0, incl, math.Pi/2)
	// At theta=π/2 the in-plane offset is entirely along the tilted axis
	if math.Abs(p.Y-10*math.Sin(incl)) > 1e-9 {
		t.Errorf("Y = %v, want %v", p.Y, 10*math.Sin(incl))
	}
	if math.Abs(p.Z-10*math.Cos(incl)) > 1e-9 {
		t.Errorf("Z = %v, want %v", p.Z, 10*math.Cos(incl))
	}
}

func TestAngularRateFallback(t *testing.T) {
	if AngularRate(0) != AngularRate(-5) {
		t.Error("non-positive periods should share the default rate")
	}
	if AngularRate(365.25) <= 0 {
		t.Error("rate must be positive")
	}
}

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]EaseFunc{
		"linear":    EaseLinear,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
		"leap":      EaseLeap,
	}

	for name, fn := range curves {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
			// Progress past the end stays pinned
			if got := fn(1.5); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1.5) = %v, want 1", name, got)
			}
		})
	}
}

func TestEaseLeapShape(t *testing.T) {
	// Early phase accelerates: quadratic ramp
	if got := EaseLeap(0.2); math.Abs(got-0.2*0.2*3.33) > 1e-9 {
		t.Errorf("leap(0.2) = %v", got)
	}
	// Monotonic over the whole range
	prev := 0.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		v := EaseLeap(p)
		if v < prev-1e-9 {
			t.Fatalf("leap not monotonic at %v: %v < %v", p, v, prev)
		}
		prev = v
	}
}

func TestEaseByName(t *testing.T) {
	if EaseByName("leap")(0.2) != EaseLeap(0.2) {
		t.Error("name lookup returned wrong curve")
	}
	// Unknown names fall back to easeInOut
	if EaseByName("bogus")(0.25) != EaseInOut(0.25) {
		t.Error("unknown name should default to easeInOut")
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{TwoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestV3Helpers(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{5, 6, 7}

	if mid := V3Midpoint(a, b); mid != (Vec3{3, 4, 5}) {
		t.Errorf("midpoint = %v", mid)
	}
	if d := V3Dist(Vec3{0, 0, 0}, Vec3{3, 4, 0}); math.Abs(d-5) > 1e-9 {
		t.Errorf("dist = %v", d)
	}
	if n := V3Normalize(Vec3{}); n != (Vec3{}) {
		t.Errorf("normalize zero = %v", n)
	}
	if v := V3ClampMagnitude(Vec3{10, 0, 0}, 2); math.Abs(v.X-2) > 1e-9 {
		t.Errorf("clamp magnitude = %v", v)
	}
}
