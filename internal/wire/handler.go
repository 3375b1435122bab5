package wire

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/promptwire/agent/internal/intent"
	"github.com/promptwire/agent/internal/session"
	"github.com/promptwire/agent/internal/wireframe"
)

// Handler manages WebSocket connections for the live wireframe channel.
type Handler struct {
	sessions *session.Manager
	compiler *wireframe.Compiler
	log      *slog.Logger
}

// NewHandler creates a WebSocket handler.
func NewHandler(sessions *session.Manager, compiler *wireframe.Compiler, log *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		compiler: compiler,
		log:      log,
	}
}

// ServeHTTP upgrades to WebSocket and runs the message loop.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Error("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	sess := h.sessions.Create()
	defer h.sessions.Remove(sess.ID)
	ctx := r.Context()

	h.send(ctx, conn, ServerMessage{
		Type: "session",
		Data: SessionData{SessionID: sess.ID},
	})

	for {
		var msg ClientMessage
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			if status := websocket.CloseStatus(err); status != -1 {
				h.log.Debug("connection closed", "status", status)
			}
			return
		}

		switch msg.Type {
		case "interpret":
			h.handleInterpret(ctx, conn, sess, msg)
		case "wireframe":
			h.handleWireframe(ctx, conn, sess, msg)
		case "ping":
			h.send(ctx, conn, ServerMessage{Type: "pong", RequestID: msg.ID})
		default:
			h.sendError(ctx, conn, msg.ID, "unknown_type", fmt.Sprintf("unknown message type: %s", msg.Type))
		}
	}
}

func (h *Handler) handleInterpret(ctx context.Context, conn *websocket.Conn, sess *session.Session, msg ClientMessage) {
	var data InterpretData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		h.sendError(ctx, conn, msg.ID, "invalid_data", "invalid interpret data")
		return
	}

	sess.AddPrompt(data.Prompt)
	h.send(ctx, conn, ServerMessage{
		Type:      "intents",
		RequestID: msg.ID,
		Data:      IntentsData{Intents: intent.Interpret(data.Prompt)},
	})
}

func (h *Handler) handleWireframe(ctx context.Context, conn *websocket.Conn, sess *session.Session, msg ClientMessage) {
	var data WireframeData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		h.sendError(ctx, conn, msg.ID, "invalid_data", "invalid wireframe data")
		return
	}

	intents := data.Intents
	if len(intents) == 0 && data.Prompt != "" {
		sess.AddPrompt(data.Prompt)
		intents = intent.Interpret(data.Prompt)
	}

	components, err := wireframe.Map(intents)
	if err != nil {
		h.sendError(ctx, conn, msg.ID, "invalid_intent", err.Error())
		return
	}

	h.send(ctx, conn, ServerMessage{
		Type:      "wireframe",
		RequestID: msg.ID,
		Data:      SpecData{WireframeSpec: h.compiler.Compile(components)},
	})
}

func (h *Handler) send(ctx context.Context, conn *websocket.Conn, msg ServerMessage) {
	if err := wsjson.Write(ctx, conn, msg); err != nil {
		h.log.Error("websocket write failed", "error", err)
	}
}

func (h *Handler) sendError(ctx context.Context, conn *websocket.Conn, requestID, code, message string) {
	h.send(ctx, conn, ServerMessage{
		Type:      "error",
		RequestID: requestID,
		Data: ErrorData{
			Code:    code,
			Message: message,
		},
	})
}
