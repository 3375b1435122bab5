package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/promptwire/agent/internal/intent"
	"github.com/promptwire/agent/internal/wireframe"
)

// AgentHandler implements the HTTP handlers for prompt interpretation and
// wireframe compilation.
type AgentHandler struct {
	compiler *wireframe.Compiler
}

// NewAgentHandler creates an AgentHandler using the given compiler.
func NewAgentHandler(compiler *wireframe.Compiler) *AgentHandler {
	return &AgentHandler{compiler: compiler}
}

type interpretRequest struct {
	Prompt *string `json:"prompt"`
}

type interpretResponse struct {
	Intents []intent.Intent `json:"intents"`
}

// Interpret handles POST /interpret.
func (h *AgentHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Prompt == nil {
		writeError(w, http.StatusBadRequest, "MISSING_PROMPT", "prompt field is required")
		return
	}

	writeJSON(w, http.StatusOK, interpretResponse{
		Intents: intent.Interpret(*req.Prompt),
	})
}

type wireframeIntent struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

type wireframeRequest struct {
	Intents []wireframeIntent `json:"intents"`
}

type wireframeResponse struct {
	WireframeSpec wireframe.WireframeSpec `json:"wireframe_spec"`
}

// SpecifyWireframe handles POST /specify-wireframe.
func (h *AgentHandler) SpecifyWireframe(w http.ResponseWriter, r *http.Request) {
	var req wireframeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}

	intents := make([]intent.Intent, len(req.Intents))
	for i, in := range req.Intents {
		intents[i] = intent.Intent{Type: intent.Type(in.Type), Value: in.Value}
	}

	components, err := wireframe.Map(intents)
	if err != nil {
		var invalid *wireframe.InvalidIntentError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, "INVALID_INTENT", invalid.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, wireframeResponse{
		WireframeSpec: h.compiler.Compile(components),
	})
}

// Health handles GET / and GET /healthz.
func (h *AgentHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "ai-agent",
	})
}

// Lexicon handles GET /v1/lexicon, exposing the recognized keyword set.
func (h *AgentHandler) Lexicon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"keywords": intent.Keywords(),
		"entries":  intent.Entries(),
	})
}

// ComponentTemplate handles GET /v1/components/{type}, returning the default
// props for a component type.
func (h *AgentHandler) ComponentTemplate(w http.ResponseWriter, r *http.Request) {
	typ := intent.Type(chi.URLParam(r, "type"))
	props, ok := wireframe.Template(typ)
	if !ok {
		writeError(w, http.StatusNotFound, "UNKNOWN_TYPE", "no component template for type "+string(typ))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type":  typ,
		"props": props,
	})
}
