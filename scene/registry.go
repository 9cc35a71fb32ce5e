package scene

// ObjectRegistry maps object ids to live transform handles so per-frame
// passes resolve "where is X right now" without walking a scene graph.
//
// Lifetime is scoped to a system id, not to any render pass: reloading
// the same system's data (a fresh slice with identical ids) must not
// clear entries, while switching to a different system id must.
// Unregister deletes entries outright; a nil placeholder left in the map
// would read as "present but empty" and corrupt downstream lookups
type ObjectRegistry struct {
	systemID string
	entries  map[string]*Transform
}

// NewObjectRegistry creates an empty registry bound to no system
func NewObjectRegistry() *ObjectRegistry {
	return &ObjectRegistry{
		entries: make(map[string]*Transform),
	}
}

// ActivateSystem scopes the registry to a system id. A different id
// clears all entries; the same id is a no-op so data refreshes keep
// mounted handles alive
func (r *ObjectRegistry) ActivateSystem(id string) {
	if r.systemID == id {
		return
	}
	r.systemID = id
	r.entries = make(map[string]*Transform)
}

// SystemID returns the id the registry is currently scoped to
func (r *ObjectRegistry) SystemID() string {
	return r.systemID
}

// Register binds an object id to its live transform on mount
func (r *ObjectRegistry) Register(id string, t *Transform) {
	if t == nil {
		return
	}
	r.entries[id] = t
}

// Unregister removes an entry on unmount
func (r *ObjectRegistry) Unregister(id string) {
	delete(r.entries, id)
}

// Get resolves an id to its live transform. A false return means "not
// mounted yet"; callers skip the object this frame rather than failing
func (r *ObjectRegistry) Get(id string) (*Transform, bool) {
	t, ok := r.entries[id]
	return t, ok
}

// Len returns the number of mounted objects
func (r *ObjectRegistry) Len() int {
	return len(r.entries)
}

// IDs returns the mounted object ids in no particular order
func (r *ObjectRegistry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}
