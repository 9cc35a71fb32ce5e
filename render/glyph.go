package render

import (
	"github.com/lixenwraith/starchart/celestial"
)

// glyphFor picks the map glyph. Geometry refines classification: a gas
// giant reads bigger than a terrestrial world at a glance
func glyphFor(obj *celestial.Object) rune {
	switch obj.Class {
	case celestial.ClassStar:
		return '*'
	case celestial.ClassBlackHole:
		return '◉'
	case celestial.ClassMoon:
		return '.'
	case celestial.ClassJumpPoint:
		return '^'
	case celestial.ClassStation:
		return '#'
	case celestial.ClassDwarfPlanet:
		return 'o'
	default:
		if obj.Geometry == celestial.GeomGasGiant {
			return 'O'
		}
		return 'o'
	}
}
