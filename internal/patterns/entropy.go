package patterns

import (
	"math"
	"regexp"
	"strings"

	"github.com/hamb0n-3/sigscan/internal/types"
)

// tokenPattern captures candidate credential tokens: long runs of the
// characters that appear in keys, URLs, and base64-ish blobs.
var tokenPattern = regexp.MustCompile(`[A-Za-z0-9_\-\/\.\:\?\&\=\+\$]{8,}`)

// ShannonEntropy returns the Shannon entropy of s in bits per character.
func ShannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int, len(s))
	total := 0
	for _, r := range s {
		counts[r]++
		total++
	}
	var entropy float64
	for _, n := range counts {
		p := float64(n) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// entropyFindings flags high-entropy tokens on a single line. Lines that
// mention "test" anywhere are skipped wholesale, otherwise fixture keys and
// sample data drown the report in noise.
func (p *Plugin) entropyFindings(rec types.Record) []types.Finding {
	if strings.Contains(strings.ToLower(rec.Text), "test") {
		return nil
	}

	cfg := p.def.Entropy
	var findings []types.Finding
	for _, token := range tokenPattern.FindAllString(rec.Text, -1) {
		if len(token) < cfg.MinLength {
			continue
		}
		if p.whitelisted(token) {
			continue
		}
		entropy := ShannonEntropy(token)
		if entropy < cfg.Threshold {
			continue
		}
		findings = append(findings, types.Finding{
			Secret:       token,
			Context:      rec.Text,
			LineNum:      rec.LineNum,
			FileLocation: rec.Path,
			Category:     p.def.Category,
			Meta: map[string]any{
				"entropy":  math.Round(entropy*1000) / 1000,
				"detector": "entropy",
			},
		})
		if len(findings) >= cfg.MaxTokensPerLine {
			break
		}
	}
	return findings
}
