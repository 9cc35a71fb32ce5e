package layout

import (
	"errors"
	"hash/fnv"
	"math"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starchart/celestial"
	"github.com/lixenwraith/starchart/parameter"
	"github.com/lixenwraith/starchart/status"
	"github.com/lixenwraith/starchart/viewmode"
)

// ErrTimeout signals that a layout pass exceeded its bounded duration.
// The previous good layout stays available as a stale fallback
var ErrTimeout = errors.New("layout computation timed out")

// Calculator is the orbital mechanics layout engine. It maps a system's
// real astronomical parameters to scene-unit sizes and distances for a
// view mode, memoized by (system id, object identity list, mode).
//
// Owned by the active system session; Clear ties cache lifetime to
// mode/system transitions. Snapshot never returns nil, so consumers can
// always render something while a request is in flight
type Calculator struct {
	mu      sync.Mutex
	cache   map[string]map[string]Result
	current map[string]Result
	lastErr error
	pending bool
	gen     uint64
	version uint64
	timeout time.Duration

	statRecomputes *atomic.Int64
	statCacheHits  *atomic.Int64
	statSuperseded *atomic.Int64
	statTimeouts   *atomic.Int64
	statDuration   *status.AtomicFloat
}

// New creates a Calculator wired to the metrics registry
func New(reg *status.Registry) *Calculator {
	return &Calculator{
		cache:          make(map[string]map[string]Result),
		current:        map[string]Result{},
		timeout:        parameter.LayoutTimeout,
		statRecomputes: reg.Ints.Get("layout.recomputes"),
		statCacheHits:  reg.Ints.Get("layout.cache_hits"),
		statSuperseded: reg.Ints.Get("layout.superseded"),
		statTimeouts:   reg.Ints.Get("layout.timeouts"),
		statDuration:   reg.Floats.Get("layout.duration_ms"),
	}
}

// cacheKey derives calculation identity: system id, view mode, and the
// object identity list. Identity, not deep equality; a reshuffled copy of
// the same ids hits the same entry
func cacheKey(sys *celestial.System, mode viewmode.ID) string {
	h := fnv.New64a()
	ids := make([]string, 0, len(sys.Objects))
	for _, obj := range sys.Objects {
		ids = append(ids, obj.ID)
	}
	sort.Strings(ids)
	for _, id := range ids {
		h.Write([]byte(id))
		h.Write([]byte{0x1f})
	}
	return sys.ID + "|" + string(mode) + "|" + strconv.FormatUint(h.Sum64(), 16)
}

// Compute runs a layout pass synchronously, consulting and filling the cache
func (c *Calculator) Compute(sys *celestial.System, mode viewmode.ID) map[string]Result {
	key := cacheKey(sys, mode)

	c.mu.Lock()
	if res, ok := c.cache[key]; ok {
		c.statCacheHits.Add(1)
		c.current = res
		c.version++
		c.lastErr = nil
		c.mu.Unlock()
		return res
	}
	c.mu.Unlock()

	res := c.compute(sys, viewmode.MustGet(mode))

	c.mu.Lock()
	c.cache[key] = res
	c.current = res
	c.version++
	c.lastErr = nil
	c.mu.Unlock()
	return res
}

// Request starts an asynchronous layout pass. Only the latest request's
// result is ever delivered; superseded in-flight passes are discarded.
// On timeout the last good snapshot is retained and Err reports ErrTimeout
func (c *Calculator) Request(sys *celestial.System, mode viewmode.ID) {
	key := cacheKey(sys, mode)

	c.mu.Lock()
	c.gen++
	gen := c.gen
	if res, ok := c.cache[key]; ok {
		c.statCacheHits.Add(1)
		c.current = res
		c.version++
		c.lastErr = nil
		c.pending = false
		c.mu.Unlock()
		return
	}
	c.pending = true
	c.mu.Unlock()

	go func() {
		start := time.Now()
		done := make(chan map[string]Result, 1)
		go func() {
			done <- c.compute(sys, viewmode.MustGet(mode))
		}()

		var res map[string]Result
		var err error
		select {
		case res = <-done:
		case <-time.After(c.timeout):
			err = ErrTimeout
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.gen {
			// A newer request owns the state now
			c.statSuperseded.Add(1)
			return
		}
		c.pending = false
		if err != nil {
			c.statTimeouts.Add(1)
			c.lastErr = err
			return
		}
		c.statDuration.Set(float64(time.Since(start).Microseconds()) / 1000)
		c.cache[key] = res
		c.current = res
		c.version++
		c.lastErr = nil
	}()
}

// Snapshot returns the latest delivered layout. Never nil: an empty map
// stands in while the first request is pending
func (c *Calculator) Snapshot() map[string]Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Version increments every time a new snapshot is delivered, letting
// consumers detect layout changes without comparing maps
func (c *Calculator) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Pending reports whether an asynchronous pass is in flight
func (c *Calculator) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Err returns the error state of the most recent pass, nil when healthy
func (c *Calculator) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Clear drops all memoized layouts. Called on view-mode switches and
// system transitions. The current snapshot is kept as a stale-but-valid
// fallback until the next pass lands
func (c *Calculator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]map[string]Result)
}

// compute performs one full layout pass
func (c *Calculator) compute(sys *celestial.System, cfg viewmode.Config) map[string]Result {
	c.statRecomputes.Add(1)

	out := make(map[string]Result, len(sys.Objects))
	ordered := sys.DepthOrder()

	// Visual radii first: independent of orbit policy
	for _, obj := range ordered {
		res := Result{VisualRadius: visualRadius(obj, cfg)}
		out[obj.ID] = res
	}

	switch cfg.OrbitRule {
	case viewmode.OrbitEquidistant:
		c.layoutEquidistant(sys, cfg, out)
	default:
		c.layoutProportional(cfg, ordered, out)
	}

	return out
}

func (c *Calculator) layoutProportional(cfg viewmode.Config, ordered []*celestial.Object, out map[string]Result) {
	for _, obj := range ordered {
		res := out[obj.ID]
		switch {
		case obj.Belt != nil:
			res.IsBelt = true
			res.BeltInner = obj.Belt.InnerRadiusAU * cfg.SystemScale
			res.BeltOuter = obj.Belt.OuterRadiusAU * cfg.SystemScale
			res.OrbitDistance = (res.BeltInner + res.BeltOuter) / 2
			res.VisualRadius = (res.BeltOuter - res.BeltInner) / 2
		case obj.Orbit != nil:
			res.OrbitDistance = obj.Orbit.SemiMajorAxisAU * cfg.SystemScale
		}
		out[obj.ID] = res
	}
}

// layoutEquidistant places each parent's Nth child at rank spacing, with
// belts occupying a width-capped band, then rescales the whole system so
// its outermost extent matches proportional layout (mode switches must
// not change the system's apparent size)
func (c *Calculator) layoutEquidistant(sys *celestial.System, cfg viewmode.Config, out map[string]Result) {
	idx := sys.ChildIndex()

	for _, kids := range idx {
		ranked := make([]*celestial.Object, 0, len(kids))
		for _, id := range kids {
			ranked = append(ranked, sys.Object(id))
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return realExtent(ranked[i]) < realExtent(ranked[j])
		})

		cursor := 0.0
		for _, obj := range ranked {
			res := out[obj.ID]
			cursor += cfg.FixedSpacing
			if obj.Belt != nil {
				// Band width follows the real belt but is capped so a wide
				// belt can never shove later siblings outward unboundedly
				width := (obj.Belt.OuterRadiusAU - obj.Belt.InnerRadiusAU) * cfg.SystemScale
				if maxW := cfg.FixedSpacing * 0.8; width > maxW {
					width = maxW
				}
				if width < 0 {
					width = 0
				}
				res.IsBelt = true
				res.OrbitDistance = cursor
				res.BeltInner = cursor - width/2
				res.BeltOuter = cursor + width/2
				res.VisualRadius = width / 2
			} else {
				res.OrbitDistance = cursor
			}
			out[obj.ID] = res
		}
	}

	rescaleToProportionalExtent(sys, cfg, out)
}

// rescaleToProportionalExtent applies the cross-mode size-consistency
// invariant: the outermost equidistant object lands where the outermost
// proportional object would
func rescaleToProportionalExtent(sys *celestial.System, cfg viewmode.Config, out map[string]Result) {
	propMax := 0.0
	for _, obj := range sys.Objects {
		switch {
		case obj.Belt != nil:
			if d := obj.Belt.OuterRadiusAU * cfg.SystemScale; d > propMax {
				propMax = d
			}
		case obj.Orbit != nil:
			if d := obj.Orbit.SemiMajorAxisAU * cfg.SystemScale; d > propMax {
				propMax = d
			}
		}
	}

	eqMax := 0.0
	for _, res := range out {
		if d := res.Outer(); d > eqMax {
			eqMax = d
		}
	}

	if propMax <= 0 || eqMax <= 0 {
		return
	}
	f := propMax / eqMax
	for id, res := range out {
		res.OrbitDistance *= f
		res.BeltInner *= f
		res.BeltOuter *= f
		if res.IsBelt {
			res.VisualRadius *= f
		}
		out[id] = res
	}
}

// visualRadius compresses the real radius sub-linearly so stars, giants,
// and moons stay individually legible despite the real spread
func visualRadius(obj *celestial.Object, cfg viewmode.Config) float64 {
	if obj.Belt != nil {
		return 0 // band half-width assigned during orbit layout
	}
	r := obj.Properties.RadiusKm
	if r <= 1 {
		r = 1
	}
	return math.Pow(r, cfg.RadiusExponent) * cfg.RadiusScale * cfg.ScaleFor(typeKey(obj))
}

// typeKey maps an object to its scaling bucket. Geometry wins for gas
// giants so a gas-giant dwarf still scales like a giant
func typeKey(obj *celestial.Object) string {
	if obj.Geometry == celestial.GeomGasGiant {
		return "gas_giant"
	}
	switch obj.Class {
	case celestial.ClassStar, celestial.ClassBlackHole:
		return "star"
	case celestial.ClassPlanet, celestial.ClassDwarfPlanet:
		return "planet"
	case celestial.ClassMoon:
		return "moon"
	case celestial.ClassBelt:
		return "belt"
	default:
		return ""
	}
}

// realExtent ranks siblings for equidistant placement: orbiters by
// semi-major axis, belts by inner edge
func realExtent(obj *celestial.Object) float64 {
	switch {
	case obj.Orbit != nil:
		return obj.Orbit.SemiMajorAxisAU
	case obj.Belt != nil:
		return obj.Belt.InnerRadiusAU
	default:
		return 0
	}
}
