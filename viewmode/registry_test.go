package viewmode

import (
	"testing"
)

func TestBuiltinModesRegistered(t *testing.T) {
	for _, id := range []ID{Realistic, Navigational, Profile} {
		if _, ok := Get(id); !ok {
			t.Errorf("builtin mode %q not registered", id)
		}
	}
	if len(Names()) < 3 {
		t.Errorf("expected at least 3 modes, got %v", Names())
	}
}

func TestRegisterCustomMode(t *testing.T) {
	custom := Config{ID: "tactical", Name: "Tactical", OrbitRule: OrbitEquidistant}
	Register(custom)
	got, ok := Get("tactical")
	if !ok || got.Name != "Tactical" {
		t.Fatalf("custom mode lookup = %+v, %v", got, ok)
	}
}

func TestMustGetFallback(t *testing.T) {
	cfg := MustGet("no-such-mode")
	if cfg.ID != Realistic {
		t.Errorf("unknown mode should fall back to realistic, got %q", cfg.ID)
	}
}

func TestScaleFor(t *testing.T) {
	cfg := MustGet(Realistic)
	tests := []struct {
		kind string
		want float64
	}{
		{"star", cfg.ObjectScaling.Star},
		{"gas_giant", cfg.ObjectScaling.GasGiant},
		{"belt", cfg.ObjectScaling.Asteroid},
		{"station", cfg.ObjectScaling.Default},
	}
	for _, tt := range tests {
		if got := cfg.ScaleFor(tt.kind); got != tt.want {
			t.Errorf("ScaleFor(%q) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestProfileIsLinearEquidistant(t *testing.T) {
	cfg := MustGet(Profile)
	if !cfg.Linear || cfg.OrbitRule != OrbitEquidistant {
		t.Errorf("profile mode misconfigured: %+v", cfg)
	}
	if cfg.Camera.Angles.DefaultElevationDeg != 22.5 {
		t.Errorf("profile elevation = %v, want 22.5", cfg.Camera.Angles.DefaultElevationDeg)
	}
}
