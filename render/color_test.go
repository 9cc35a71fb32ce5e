package render

import (
	"testing"

	"github.com/lixenwraith/starchart/celestial"
)

func channels(t *testing.T, tempK float64) (int32, int32, int32) {
	t.Helper()
	r, g, b := StarColor(tempK).RGB()
	return r, g, b
}

func TestStarColorTemperatureShift(t *testing.T) {
	// Cool stars lean red, hot stars lean blue
	rCool, _, bCool := channels(t, 2500)
	rHot, _, bHot := channels(t, 25000)

	if rCool <= bCool {
		t.Errorf("cool star not red-dominant: r=%d b=%d", rCool, bCool)
	}
	if bHot <= rHot {
		t.Errorf("hot star not blue-dominant: r=%d b=%d", rHot, bHot)
	}
}

func TestStarColorClampsAndDefaults(t *testing.T) {
	if StarColor(100) != StarColor(2000) {
		t.Error("under-range temperature should clamp to ramp start")
	}
	if StarColor(1e6) != StarColor(30000) {
		t.Error("over-range temperature should clamp to ramp end")
	}
	if StarColor(0) != StarColor(5772) {
		t.Error("zero temperature should fall back to solar")
	}
}

func TestObjectColorByClass(t *testing.T) {
	star := &celestial.Object{Class: celestial.ClassStar, Properties: celestial.Properties{TemperatureK: 5772}}
	if ObjectColor(star) != StarColor(5772) {
		t.Error("star should use temperature tint")
	}

	planet := &celestial.Object{Class: celestial.ClassPlanet}
	moon := &celestial.Object{Class: celestial.ClassMoon}
	if ObjectColor(planet) == ObjectColor(moon) {
		t.Error("planet and moon should differ")
	}
}

func TestGlyphGeometryRefinement(t *testing.T) {
	giant := &celestial.Object{Class: celestial.ClassPlanet, Geometry: celestial.GeomGasGiant}
	rock := &celestial.Object{Class: celestial.ClassPlanet, Geometry: celestial.GeomTerrestrial}
	if glyphFor(giant) == glyphFor(rock) {
		t.Error("gas giant and terrestrial should differ")
	}
}
