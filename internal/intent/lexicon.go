// Package intent provides the lexicon and interpreter for the intent
// extraction stage of the wireframe pipeline.
package intent

// Type is the classified intent tag for a prompt fragment.
type Type string

const (
	TypeLogin     Type = "login"
	TypeDashboard Type = "dashboard"
	TypeList      Type = "list"
	TypeTable     Type = "table"
	TypeForm      Type = "form"
	TypeButton    Type = "button"
	TypeNavbar    Type = "navbar"
	TypeUnknown   Type = "unknown"
)

// Entry maps a recognized keyword to its intent type.
type Entry struct {
	Keyword string `json:"keyword"`
	Type    Type   `json:"type"`
}

// Lexicon is the fixed keyword table, in priority order. The order is the
// iteration order of Interpret, so it is part of the external contract:
// adding, removing, or reordering entries is a compatibility-affecting change.
var Lexicon = []Entry{
	{Keyword: "login", Type: TypeLogin},
	{Keyword: "dashboard", Type: TypeDashboard},
	{Keyword: "list", Type: TypeList},
	{Keyword: "table", Type: TypeTable},
	{Keyword: "form", Type: TypeForm},
	{Keyword: "button", Type: TypeButton},
	{Keyword: "navbar", Type: TypeNavbar},
}

// typeByKeyword is the lookup map built at Init time.
var typeByKeyword map[string]Type

// Init builds lookup maps. Call once at startup.
func Init() {
	typeByKeyword = make(map[string]Type, len(Lexicon))
	for _, e := range Lexicon {
		typeByKeyword[e.Keyword] = e.Type
	}
}

// Lookup returns the intent type for a keyword, if the keyword is recognized.
func Lookup(keyword string) (Type, bool) {
	t, ok := typeByKeyword[keyword]
	return t, ok
}

// Entries returns the lexicon in priority order.
func Entries() []Entry {
	out := make([]Entry, len(Lexicon))
	copy(out, Lexicon)
	return out
}

// Keywords returns all recognized keywords in priority order.
func Keywords() []string {
	out := make([]string, len(Lexicon))
	for i, e := range Lexicon {
		out[i] = e.Keyword
	}
	return out
}

// KnownType reports whether t is one of the closed set of intent types,
// including "unknown".
func KnownType(t Type) bool {
	switch t {
	case TypeLogin, TypeDashboard, TypeList, TypeTable, TypeForm, TypeButton, TypeNavbar, TypeUnknown:
		return true
	}
	return false
}
