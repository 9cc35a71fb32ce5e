package scene

import (
	"testing"

	"github.com/lixenwraith/starchart/vmath"
)

func TestRegisterGetUnregister(t *testing.T) {
	reg := NewObjectRegistry()
	reg.ActivateSystem("sys-a")

	tr := &Transform{}
	tr.SetPosition(vmath.Vec3{X: 1, Y: 2, Z: 3})
	reg.Register("earth", tr)

	got, ok := reg.Get("earth")
	if !ok || got.Position() != (vmath.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("lookup failed: %v %v", got, ok)
	}

	reg.Unregister("earth")
	got, ok = reg.Get("earth")
	if ok {
		t.Fatal("unregistered entry still present")
	}
	if got != nil {
		t.Fatal("unregister must delete, not null out")
	}
}

func TestSameSystemIDKeepsEntries(t *testing.T) {
	reg := NewObjectRegistry()
	reg.ActivateSystem("sys-a")
	reg.Register("earth", &Transform{})
	reg.Register("luna", &Transform{})

	// Re-activating the same id models a data refresh with identical
	// identity: a structurally equal but reference-different system
	reg.ActivateSystem("sys-a")

	if reg.Len() != 2 {
		t.Fatalf("same-id activation cleared registry: len = %d", reg.Len())
	}
	if _, ok := reg.Get("luna"); !ok {
		t.Error("entry lost across same-id activation")
	}
}

func TestDifferentSystemIDClears(t *testing.T) {
	reg := NewObjectRegistry()
	reg.ActivateSystem("sys-a")
	reg.Register("earth", &Transform{})

	reg.ActivateSystem("sys-b")

	if reg.Len() != 0 {
		t.Fatalf("system switch left %d stale entries", reg.Len())
	}
	if reg.SystemID() != "sys-b" {
		t.Errorf("system id = %q", reg.SystemID())
	}
}

func TestRegisterNilIgnored(t *testing.T) {
	reg := NewObjectRegistry()
	reg.Register("ghost", nil)
	if _, ok := reg.Get("ghost"); ok {
		t.Error("nil transform must not register")
	}
}
