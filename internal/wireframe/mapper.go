package wireframe

import (
	"fmt"

	"github.com/promptwire/agent/internal/intent"
)

// Map converts an ordered intent sequence into an ordered component list.
// Each intent, repeats and unknowns included, yields exactly one component in
// input order. Component ids are "{type}-{n}" where n counts prior intents of
// the same type plus one, so repeated types get distinct ids.
//
// Fails with InvalidIntentError when an intent has an empty type. Types
// outside the closed set are also rejected rather than silently coerced.
func Map(intents []intent.Intent) ([]Component, error) {
	components := make([]Component, 0, len(intents))
	ordinals := make(map[intent.Type]int, len(intents))

	for i, in := range intents {
		if in.Type == "" {
			return nil, &InvalidIntentError{Index: i, Reason: "missing type"}
		}
		props, ok := Template(in.Type)
		if !ok {
			return nil, &InvalidIntentError{Index: i, Reason: fmt.Sprintf("unrecognized type %q", in.Type)}
		}
		if in.Value != nil {
			props["value"] = in.Value
		}

		ordinals[in.Type]++
		components = append(components, Component{
			ID:    fmt.Sprintf("%s-%d", in.Type, ordinals[in.Type]),
			Type:  string(in.Type),
			Props: props,
		})
	}

	return components, nil
}
