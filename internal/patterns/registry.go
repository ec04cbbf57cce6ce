package patterns

import (
	"errors"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/patterns/builtin"
)

// Registry holds compiled plugins in load order and resolves selector
// strings against them.
type Registry struct {
	plugins []*Plugin
	byName  map[string]*Plugin
}

// NewRegistry builds a registry from compiled plugins. Duplicate names keep
// the first occurrence.
func NewRegistry(plugins []*Plugin) *Registry {
	r := &Registry{byName: make(map[string]*Plugin, len(plugins))}
	for _, p := range plugins {
		if _, dup := r.byName[p.Name()]; dup {
			continue
		}
		r.plugins = append(r.plugins, p)
		r.byName[p.Name()] = p
	}
	return r
}

// Builtin loads and compiles the embedded plugin definitions. The embedded
// definitions ship with the binary, so any failure here is fatal.
func Builtin() (*Registry, error) {
	defs, err := LoadFS(builtin.FS())
	if err != nil {
		return nil, err
	}
	plugins, errs := CompileAll(defs)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return NewRegistry(plugins), nil
}

// All returns the plugins in load order.
func (r *Registry) All() []*Plugin {
	return append([]*Plugin(nil), r.plugins...)
}

// Get returns the named plugin.
func (r *Registry) Get(name string) (*Plugin, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.plugins)
}

// Select resolves a comma-separated selector. "all" and "*" select every
// plugin; otherwise tokens are matched by name in the order given, unknown
// names are dropped, and duplicates collapse to the first occurrence. An
// empty result is the caller's problem to report.
func (r *Registry) Select(selector string) []*Plugin {
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "all" || sel == "*" {
		return r.All()
	}

	var picked []*Plugin
	seen := make(map[string]bool)
	for _, token := range strings.Split(sel, ",") {
		token = strings.TrimSpace(token)
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		if p, ok := r.byName[token]; ok {
			picked = append(picked, p)
		}
	}
	return picked
}
