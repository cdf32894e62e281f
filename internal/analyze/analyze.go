// Package analyze finds and tallies the colours used in a stylesheet.
package analyze

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huecheck/internal/colour"
)

var (
	// declPattern matches "property: value" declarations, including custom
	// properties such as "--accent: #f00".
	declPattern = regexp.MustCompile(`(-{0,2}[a-zA-Z][a-zA-Z0-9_-]*)\s*:\s*([^;{}]+)`)

	// tokenPattern matches candidate colour literals within a value.
	tokenPattern = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|(?i:rgba?|hsla?)\s*\([^()]*\)`)
)

// Options configures a scan.
type Options struct {
	// Backdrop flattens translucent literals before they are tallied.
	// Nil selects white.
	Backdrop *colour.RGB
	Logger   hclog.Logger
}

// DefaultOptions returns options with a white backdrop.
func DefaultOptions() Options {
	return Options{}
}

// Finding is one effective colour and where it was used.
type Finding struct {
	Hex        string     `json:"hex"`
	Colour     colour.RGB `json:"colour"`
	Count      int        `json:"count"`
	Literals   []string   `json:"literals"`
	Properties []string   `json:"properties"`

	// Share is the fraction of sampled pixels, set for images only.
	Share float64 `json:"share,omitempty"`

	// Set by ScoreAgainst.
	Ratio  float64       `json:"ratio,omitempty"`
	Rating colour.Rating `json:"rating,omitempty"`
}

// Result is the outcome of scanning one stylesheet.
type Result struct {
	Findings []Finding `json:"findings"`
	Tokens   int       `json:"tokens"`
	Rejected []string  `json:"rejected,omitempty"`

	// Samples is the number of pixels read from an image.
	Samples int `json:"samples,omitempty"`
}

// Scan extracts colour literals from CSS declarations, parses each with the
// colour parser and tallies them by effective opaque colour. Findings are
// ordered by descending count, then hex.
func Scan(css string, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	backdrop := colour.BackdropOrWhite(opts.Backdrop)

	var res Result
	byHex := make(map[string]*Finding)
	literals := make(map[string]map[string]struct{})
	properties := make(map[string]map[string]struct{})

	for _, decl := range declPattern.FindAllStringSubmatch(stripComments(css), -1) {
		property := strings.ToLower(decl[1])
		for _, token := range tokenPattern.FindAllString(decl[2], -1) {
			res.Tokens++
			c, err := colour.Parse(token)
			if err != nil {
				logger.Debug("skipping colour literal", "token", token, "property", property, "error", err)
				res.Rejected = append(res.Rejected, token)
				continue
			}

			effective := colour.Composite(c, backdrop)
			hex := effective.Hex()
			f, ok := byHex[hex]
			if !ok {
				f = &Finding{Hex: hex, Colour: effective}
				byHex[hex] = f
				literals[hex] = make(map[string]struct{})
				properties[hex] = make(map[string]struct{})
			}
			f.Count++
			literals[hex][strings.ToLower(token)] = struct{}{}
			properties[hex][property] = struct{}{}
		}
	}

	res.Findings = make([]Finding, 0, len(byHex))
	for hex, f := range byHex {
		f.Literals = sortedKeys(literals[hex])
		f.Properties = sortedKeys(properties[hex])
		res.Findings = append(res.Findings, *f)
	}
	slices.SortFunc(res.Findings, func(a, b Finding) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Hex, b.Hex))
	})

	logger.Debug("scan complete", "tokens", res.Tokens, "colours", len(res.Findings), "rejected", len(res.Rejected))
	return res
}

// ScoreAgainst returns a copy of findings with the contrast ratio and rating
// of each colour against bg.
func ScoreAgainst(findings []Finding, bg colour.RGB) []Finding {
	out := make([]Finding, len(findings))
	for i, f := range findings {
		f.Ratio = colour.ContrastRatio(f.Colour, bg)
		f.Rating = colour.Rate(f.Ratio)
		out[i] = f
	}
	return out
}

// Limit truncates findings to at most n entries; n <= 0 keeps all.
func Limit(findings []Finding, n int) []Finding {
	if n <= 0 || n >= len(findings) {
		return findings
	}
	return findings[:n]
}

var commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

func stripComments(css string) string {
	return commentPattern.ReplaceAllString(css, "")
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
