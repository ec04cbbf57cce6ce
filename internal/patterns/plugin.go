package patterns

import (
	"context"
	"regexp"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// Plugin is a compiled pattern plugin. It matches its regexes, and the
// optional entropy detector, against parsed records and emits findings.
type Plugin struct {
	def     Def
	regexes []*regexp.Regexp
}

func (p *Plugin) Name() string        { return p.def.Name }
func (p *Plugin) Category() string    { return p.def.Category }
func (p *Plugin) Description() string { return p.def.Description }

// PatternCount returns the number of compiled regexes, counting the entropy
// detector as one more when configured.
func (p *Plugin) PatternCount() int {
	n := len(p.regexes)
	if p.def.Entropy != nil {
		n++
	}
	return n
}

// Inspect scans records in order and returns all findings. The context is
// checked between records so a cancelled scan stops promptly.
func (p *Plugin) Inspect(ctx context.Context, records []types.Record) ([]types.Finding, error) {
	var findings []types.Finding
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return findings, err
		}
		findings = append(findings, p.inspectRecord(rec)...)
	}
	return findings, nil
}

func (p *Plugin) inspectRecord(rec types.Record) []types.Finding {
	for _, term := range p.def.Blacklist {
		if strings.Contains(rec.Text, term) {
			return nil
		}
	}

	var findings []types.Finding
	for _, rx := range p.regexes {
		for _, match := range rx.FindAllString(rec.Text, -1) {
			if p.whitelisted(match) {
				continue
			}
			secret := ""
			if p.def.Category == "secrets" {
				secret = match
			}
			findings = append(findings, types.Finding{
				Secret:       secret,
				Context:      rec.Text,
				LineNum:      rec.LineNum,
				FileLocation: rec.Path,
				Category:     p.def.Category,
				Meta:         map[string]any{"pattern": rx.String()},
			})
		}
	}
	if p.def.Entropy != nil {
		findings = append(findings, p.entropyFindings(rec)...)
	}
	return findings
}

// whitelisted reports whether the matched text contains a known placeholder
// marker and should be suppressed.
func (p *Plugin) whitelisted(match string) bool {
	for _, term := range p.def.Whitelist {
		if strings.Contains(match, term) {
			return true
		}
	}
	return false
}
