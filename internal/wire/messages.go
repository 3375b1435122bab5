// Package wire defines the WebSocket protocol for the live wireframe channel.
package wire

import (
	"encoding/json"

	"github.com/promptwire/agent/internal/intent"
	"github.com/promptwire/agent/internal/wireframe"
)

// ── Client → Server messages ────────────────────────────────────────────────

// ClientMessage is the envelope for all client-to-server WebSocket messages.
type ClientMessage struct {
	Type string          `json:"type"` // "interpret", "wireframe", "ping"
	ID   string          `json:"id"`   // Client-assigned request ID
	Data json.RawMessage `json:"data,omitempty"`
}

// InterpretData is the payload for "interpret" messages.
type InterpretData struct {
	Prompt string `json:"prompt"`
}

// WireframeData is the payload for "wireframe" messages. When Intents is
// empty and Prompt is set, the prompt is interpreted first and the resulting
// intents are compiled directly.
type WireframeData struct {
	Prompt  string          `json:"prompt,omitempty"`
	Intents []intent.Intent `json:"intents,omitempty"`
}

// ── Server → Client messages ────────────────────────────────────────────────

// ServerMessage is the envelope for all server-to-client WebSocket messages.
type ServerMessage struct {
	Type      string `json:"type"`                 // "intents", "wireframe", "error", "session", "pong"
	RequestID string `json:"request_id,omitempty"` // Echoes client ID
	Data      any    `json:"data,omitempty"`
}

// IntentsData carries interpretation results.
type IntentsData struct {
	Intents []intent.Intent `json:"intents"`
}

// SpecData carries a compiled wireframe spec.
type SpecData struct {
	WireframeSpec wireframe.WireframeSpec `json:"wireframe_spec"`
}

// ErrorData carries an error message.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SessionData carries session information sent on connect.
type SessionData struct {
	SessionID string `json:"session_id"`
}
