package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventScheduleChanged Event = "schedule_changed"
	EventError           Event = "error"
	EventPong            Event = "pong"
)

// ScheduleChangedEvent is pushed to connected calendar and comparison views
// after every committed schedule mutation. Views re-fetch on receipt; the
// event carries no schedule contents.
type ScheduleChangedEvent struct {
	Event  Event  `json:"event"`
	Active string `json:"active"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
