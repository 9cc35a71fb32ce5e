package celestial

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Graph validation errors. Validation surfaces these as warnings wrapped
// with object context; the offending subtree is skipped, never fatal
var (
	ErrDuplicateID     = errors.New("duplicate object id")
	ErrDanglingParent  = errors.New("orbit parent not found in system")
	ErrOrbitCycle      = errors.New("orbit chain forms a cycle")
	ErrConflictingData = errors.New("object has both orbit and belt records")
)

// Lighting is the render-layer lighting contract, carried through untouched
type Lighting struct {
	PrimaryStar string  `json:"primary_star,omitempty"`
	Ambient     float64 `json:"ambient,omitempty"`
}

// System is a full star system: a forest of objects rooted at stars
// or barycenters. ID is the identity key for registry/session scoping
type System struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Objects  []*Object `json:"objects"`
	Lighting Lighting  `json:"lighting,omitempty"`
}

// DecodeSystem reads a system JSON document. Malformed JSON is fatal;
// graph defects are returned as warnings with a best-effort system
func DecodeSystem(r io.Reader) (*System, []error, error) {
	var sys System
	dec := json.NewDecoder(r)
	if err := dec.Decode(&sys); err != nil {
		return nil, nil, fmt.Errorf("decode system: %w", err)
	}
	if sys.ID == "" {
		return nil, nil, fmt.Errorf("decode system: missing id")
	}
	return &sys, sys.Validate(), nil
}

// Validate checks the object graph and returns one warning per defect.
// Defective objects remain in the slice; traversal helpers skip them
func (s *System) Validate() []error {
	var warns []error

	seen := make(map[string]bool, len(s.Objects))
	for _, obj := range s.Objects {
		if obj.ID == "" {
			warns = append(warns, fmt.Errorf("object %q: missing id", obj.Name))
			continue
		}
		if seen[obj.ID] {
			warns = append(warns, fmt.Errorf("object %q: %w", obj.ID, ErrDuplicateID))
			continue
		}
		seen[obj.ID] = true

		if obj.Orbit != nil && obj.Belt != nil {
			warns = append(warns, fmt.Errorf("object %q: %w", obj.ID, ErrConflictingData))
		}
		if pid := obj.ParentID(); pid != "" && !s.hasID(pid) {
			warns = append(warns, fmt.Errorf("object %q -> %q: %w", obj.ID, pid, ErrDanglingParent))
		}
	}

	// Cycle detection by walking parent chains with a visited set
	for _, obj := range s.Objects {
		visited := map[string]bool{}
		cur := obj
		for cur != nil && cur.ParentID() != "" {
			if visited[cur.ID] {
				warns = append(warns, fmt.Errorf("object %q: %w", obj.ID, ErrOrbitCycle))
				break
			}
			visited[cur.ID] = true
			cur = s.Object(cur.ParentID())
		}
	}

	return warns
}

func (s *System) hasID(id string) bool {
	return s.Object(id) != nil
}

// Object returns the object with the given id, or nil. Lookup is by id
// only, never by display name
func (s *System) Object(id string) *Object {
	for _, obj := range s.Objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}

// Roots returns objects with no orbital parent, in declaration order
func (s *System) Roots() []*Object {
	var roots []*Object
	for _, obj := range s.Objects {
		if obj.IsRoot() {
			roots = append(roots, obj)
		}
	}
	return roots
}

// ChildIndex builds a strict id-keyed adjacency map (parent id -> child ids).
// Built fresh per layout pass; eliminates any name-matching ambiguity.
// Children of unresolvable parents and cyclic chains are excluded
func (s *System) ChildIndex() map[string][]string {
	idx := make(map[string][]string)
	for _, obj := range s.Objects {
		pid := obj.ParentID()
		if pid == "" || s.Object(pid) == nil {
			continue
		}
		if s.onCycle(obj) {
			continue
		}
		idx[pid] = append(idx[pid], obj.ID)
	}
	// Stable ordering for deterministic layout
	for pid := range idx {
		sort.Strings(idx[pid])
	}
	return idx
}

func (s *System) onCycle(obj *Object) bool {
	visited := map[string]bool{}
	cur := obj
	for cur != nil && cur.ParentID() != "" {
		if visited[cur.ID] {
			return true
		}
		visited[cur.ID] = true
		cur = s.Object(cur.ParentID())
	}
	return false
}

// Depth returns hierarchy depth: 0 for roots, 1 for their children, and so on.
// Objects on defective chains report -1
func (s *System) Depth(id string) int {
	obj := s.Object(id)
	if obj == nil {
		return -1
	}
	depth := 0
	visited := map[string]bool{}
	for obj.ParentID() != "" {
		if visited[obj.ID] {
			return -1
		}
		visited[obj.ID] = true
		parent := s.Object(obj.ParentID())
		if parent == nil {
			return -1
		}
		obj = parent
		depth++
	}
	return depth
}

// DepthOrder returns objects sorted parents-before-children. Per-frame
// position composition must run in this order so a moon reads its planet's
// already-updated transform, not last frame's. Defective objects are dropped
func (s *System) DepthOrder() []*Object {
	type entry struct {
		obj   *Object
		depth int
	}
	entries := make([]entry, 0, len(s.Objects))
	for _, obj := range s.Objects {
		d := s.Depth(obj.ID)
		if d < 0 {
			continue
		}
		entries = append(entries, entry{obj, d})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].depth < entries[j].depth
	})
	out := make([]*Object, len(entries))
	for i, e := range entries {
		out[i] = e.obj
	}
	return out
}

// Siblings returns ids of objects sharing the given object's parent,
// excluding the object itself. Roots have no siblings
func (s *System) Siblings(id string) []string {
	obj := s.Object(id)
	if obj == nil || obj.ParentID() == "" {
		return nil
	}
	var sibs []string
	for _, other := range s.Objects {
		if other.ID != id && other.ParentID() == obj.ParentID() {
			sibs = append(sibs, other.ID)
		}
	}
	return sibs
}
