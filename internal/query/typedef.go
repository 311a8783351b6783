package query

import "github.com/mleoca/ucn/internal/model"

// TypedefEntry is one class-like symbol matching name, with its source
// attached.
type TypedefEntry struct {
	Symbol *model.Symbol
	Code   string
}

// Typedef implements `typedef(name)`: every class-like symbol matching
// name, each with its source code sliced in.
func (e *Engine) Typedef(name string) []TypedefEntry {
	var out []TypedefEntry
	for _, s := range e.Idx.Symbols {
		if s.Name != name || !s.Kind.IsClassLike() {
			continue
		}
		out = append(out, TypedefEntry{Symbol: s, Code: blockFor(s).Code})
	}
	return out
}
