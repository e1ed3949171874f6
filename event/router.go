package event

// Handler processes specific event types
// Renderers and the sound manager implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from Emit on the game loop goroutine
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler subscribed to the given types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded, immediate dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	frame    int64
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// SetFrame stamps subsequently emitted events with the given frame number
func (r *Router) SetFrame(frame int64) {
	r.frame = frame
}

// Emit delivers an event to every handler registered for its type
func (r *Router) Emit(t EventType, payload any) {
	ev := GameEvent{Type: t, Payload: payload, Frame: r.frame}
	for _, h := range r.handlers[t] {
		h.HandleEvent(ev)
	}
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
