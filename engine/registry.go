package engine

// Registry tracks the live dots of the active round
// Frame steps and hit tests consult it instead of holding their own references
type Registry struct {
	entities map[uint64]*Entity
	order    []uint64 // Spawn order, oldest first
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entities: make(map[uint64]*Entity)}
}

// Add registers a dot; re-adding an existing ID is ignored
func (r *Registry) Add(e *Entity) {
	if _, ok := r.entities[e.ID]; ok {
		return
	}
	r.entities[e.ID] = e
	r.order = append(r.order, e.ID)
}

// Remove deregisters a dot and returns it; false if it was not live
func (r *Registry) Remove(id uint64) (*Entity, bool) {
	e, ok := r.entities[id]
	if !ok {
		return nil, false
	}
	delete(r.entities, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e, true
}

// Get returns the live dot with the given ID
func (r *Registry) Get(id uint64) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Len returns the number of live dots
func (r *Registry) Len() int {
	return len(r.order)
}

// TopmostFirst returns live dots newest first, the order they overlap on screen
func (r *Registry) TopmostFirst() []*Entity {
	out := make([]*Entity, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.entities[r.order[i]])
	}
	return out
}

// Clear deregisters every dot and returns them oldest first
func (r *Registry) Clear() []*Entity {
	out := make([]*Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entities[id])
	}
	r.entities = make(map[uint64]*Entity)
	r.order = nil
	return out
}
