package patterns

import (
	"fmt"
	"regexp"
)

// assignmentValue matches the value side of a credential assignment: an
// optional quote, then at least six non-space characters.
const assignmentValue = `(?:['"]?[^\s]{6,}['"]?)`

// assignmentPattern builds the line-level regex for one credential keyword.
// The match spans from the start of the line through the assigned value so
// findings carry usable context.
func assignmentPattern(keyword string) string {
	return `(?i)[^\n]*(?:` + keyword + `)[\w.\-]*\s*(?:[:=]|:=)\s*` + assignmentValue
}

// Compile turns a validated definition into a runnable plugin.
func Compile(def Def) (*Plugin, error) {
	exprs := make([]string, 0, len(def.Patterns)+len(def.AssignmentKeywords))
	exprs = append(exprs, def.Patterns...)
	for _, keyword := range def.AssignmentKeywords {
		exprs = append(exprs, assignmentPattern(keyword))
	}

	regexes := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		rx, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("plugin %q: compiling %q: %w", def.Name, expr, err)
		}
		regexes = append(regexes, rx)
	}
	return &Plugin{def: def, regexes: regexes}, nil
}

// CompileAll compiles every definition, collecting per-definition errors so
// one broken definition does not sink the rest.
func CompileAll(defs []Def) ([]*Plugin, []error) {
	var plugins []*Plugin
	var errs []error
	for _, def := range defs {
		p, err := Compile(def)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		plugins = append(plugins, p)
	}
	return plugins, errs
}
