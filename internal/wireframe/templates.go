package wireframe

import "github.com/promptwire/agent/internal/intent"

// templates holds the default props for each intent type. The tables are
// read-only after init; Template hands out copies so callers can never
// mutate them.
var templates = map[intent.Type]map[string]any{
	intent.TypeLogin: {
		"title":       "Sign in",
		"fields":      []string{"username", "password"},
		"submitLabel": "Sign in",
	},
	intent.TypeDashboard: {
		"title":  "Dashboard",
		"panels": 3,
	},
	intent.TypeList: {
		"ordered":   false,
		"itemCount": 5,
	},
	intent.TypeTable: {
		"columns": 3,
		"rows":    5,
		"headers": true,
	},
	intent.TypeForm: {
		"fields":      []string{"name", "email"},
		"submitLabel": "Submit",
	},
	intent.TypeButton: {
		"label":   "Submit",
		"variant": "primary",
	},
	intent.TypeNavbar: {
		"links":    []string{"Home", "About", "Contact"},
		"position": "top",
	},
	// Unknown intents still map to a component, with no default props.
	intent.TypeUnknown: {},
}

// Template returns a copy of the default props for an intent type. The
// second return is false for types outside the closed set.
func Template(t intent.Type) (map[string]any, bool) {
	tmpl, ok := templates[t]
	if !ok {
		return nil, false
	}
	props := make(map[string]any, len(tmpl))
	for k, v := range tmpl {
		props[k] = v
	}
	return props, true
}

// TemplateTypes returns the intent types that have a component template, in
// lexicon priority order with unknown last.
func TemplateTypes() []intent.Type {
	out := make([]intent.Type, 0, len(templates))
	for _, e := range intent.Lexicon {
		out = append(out, e.Type)
	}
	return append(out, intent.TypeUnknown)
}
