package prompt

import (
	"regexp"
	"sort"
	"sync"
)

// placeholderRegex matches the literal {name} markers templates use.
// Only identifier characters are allowed inside the braces, so prose
// containing stray braces is left untouched.
var placeholderRegex = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Template is a parameterized text body with named {variable} markers.
type Template struct {
	// ID identifies the template in a Registry.
	ID string

	// RequiredVars lists the variables that must be supplied at render
	// time. Registration verifies this covers every marker in Body.
	RequiredVars []string

	// Body is the raw template text.
	Body string
}

// Placeholders returns the distinct variable names referenced by the
// template body, sorted for determinism.
func (t Template) Placeholders() []string {
	seen := make(map[string]struct{})
	for _, m := range placeholderRegex.FindAllStringSubmatch(t.Body, -1) {
		seen[m[1]] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes vars into the template body. Every required variable
// and every marker in the body must have a value; the first one missing
// is reported via MissingVariableError. Extra vars not referenced by the
// body are ignored. Substitution is verbatim text replacement with no
// escaping and no evaluation of the substituted values.
func (t Template) Render(vars map[string]string) (string, error) {
	for _, name := range t.RequiredVars {
		if _, ok := vars[name]; !ok {
			return "", &MissingVariableError{Template: t.ID, Variable: name}
		}
	}

	var missing *MissingVariableError
	rendered := placeholderRegex.ReplaceAllStringFunc(t.Body, func(marker string) string {
		name := marker[1 : len(marker)-1]
		value, ok := vars[name]
		if !ok {
			if missing == nil {
				missing = &MissingVariableError{Template: t.ID, Variable: name}
			}
			return marker
		}
		return value
	})
	if missing != nil {
		return "", missing
	}
	return rendered, nil
}

// Registry holds registered templates by ID.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template, replacing any previous registration under the
// same ID.
func (r *Registry) Register(tpl Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[tpl.ID] = tpl
}

// Get returns the template registered under id.
func (r *Registry) Get(id string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.templates[id]
	return tpl, ok
}

// Render looks up the template registered under id and renders it with
// vars. Returns ErrUnknownTemplate when id is not registered.
func (r *Registry) Render(id string, vars map[string]string) (string, error) {
	tpl, ok := r.Get(id)
	if !ok {
		return "", ErrUnknownTemplate
	}
	return tpl.Render(vars)
}
