package event

import "testing"

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.seen = append(h.seen, ev) }

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDeliversOnlyRegisteredTypes(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{types: []EventType{EventScoreChanged}}
	r.Register(h)

	r.Emit(EventScoreChanged, &CounterPayload{Value: 3})
	r.Emit(EventMissedChanged, &CounterPayload{Value: 1})

	if len(h.seen) != 1 {
		t.Fatalf("handler saw %d events, want 1", len(h.seen))
	}
	p, ok := h.seen[0].Payload.(*CounterPayload)
	if !ok || p.Value != 3 {
		t.Errorf("payload = %#v, want CounterPayload{3}", h.seen[0].Payload)
	}
}

func TestRouterPreservesRegistrationOrder(t *testing.T) {
	r := NewRouter()
	var order []string
	r.Register(HandlerFunc{Types: []EventType{EventRoundEnded}, Fn: func(GameEvent) { order = append(order, "first") }})
	r.Register(HandlerFunc{Types: []EventType{EventRoundEnded}, Fn: func(GameEvent) { order = append(order, "second") }})

	r.Emit(EventRoundEnded, &RoundEndPayload{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("dispatch order = %v, want [first second]", order)
	}
	if r.HandlerCount(EventRoundEnded) != 2 {
		t.Errorf("HandlerCount = %d, want 2", r.HandlerCount(EventRoundEnded))
	}
	if r.HasHandlers(EventEntityMoved) {
		t.Error("HasHandlers(EventEntityMoved) = true, want false")
	}
}

func TestRouterStampsFrame(t *testing.T) {
	r := NewRouter()
	h := &recordingHandler{types: []EventType{EventEntityMoved}}
	r.Register(h)

	r.SetFrame(42)
	r.Emit(EventEntityMoved, &EntityPayload{ID: 1})

	if h.seen[0].Frame != 42 {
		t.Errorf("Frame = %d, want 42", h.seen[0].Frame)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventRoundStarted, "RoundStarted"},
		{EventEntityDestroyed, "EntityDestroyed"},
		{EventOrientationPrompt, "OrientationPrompt"},
		{EventType(999), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
