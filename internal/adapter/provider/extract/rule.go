// Package extract pulls candidate synonyms out of scraped HTML using ordered
// cascades of text patterns. Each source describes its markup as a Cascade;
// the engine here owns the matching, filtering and deduplication.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/heartmarshall/synonymer/internal/domain"
)

// Rule is one named pattern. Item's first capture group is the candidate text.
// When Scope is set, Item runs only inside the first capture group of each
// Scope match (or of the first match only, if FirstScopeOnly is set).
type Rule struct {
	Name           string
	Scope          *regexp.Regexp
	FirstScopeOnly bool
	Item           *regexp.Regexp
}

// Candidates returns the cleaned, non-empty captures of r in page, in
// document order. No acceptance filtering is applied.
func (r Rule) Candidates(page string) []string {
	var out []string
	for _, region := range r.regions(page) {
		for _, m := range r.Item.FindAllStringSubmatch(region, -1) {
			if len(m) < 2 {
				continue
			}
			if c := Clean(m[1]); c != "" {
				out = append(out, c)
			}
		}
	}
	return out
}

func (r Rule) regions(page string) []string {
	if r.Scope == nil {
		return []string{page}
	}
	n := -1
	if r.FirstScopeOnly {
		n = 1
	}
	var regions []string
	for _, m := range r.Scope.FindAllStringSubmatch(page, n) {
		if len(m) >= 2 && m[1] != "" {
			regions = append(regions, m[1])
		}
	}
	return regions
}

// Cascade is an ordered list of rules, most specific first.
type Cascade []Rule

// Extract applies the rules in order and returns the accepted candidates of
// the first rule that yields any, deduplicated case-sensitively.
func (c Cascade) Extract(word, page string) []string {
	for _, rule := range c {
		if accepted := Filter(word, rule.Candidates(page)); len(accepted) > 0 {
			return domain.Dedupe(accepted)
		}
	}
	return []string{}
}

// Filter keeps the candidates that Accept allows, preserving order.
func Filter(word string, candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if Accept(word, c) {
			out = append(out, c)
		}
	}
	return out
}

// Accept reports whether candidate is a usable synonym for word: it must
// differ from word ignoring case, must not look like a path, and must be
// longer than one character.
func Accept(word, candidate string) bool {
	if domain.SameWord(candidate, strings.TrimSpace(word)) {
		return false
	}
	if strings.HasPrefix(candidate, "/") {
		return false
	}
	return utf8.RuneCountInString(candidate) > 1
}

// Clean trims surrounding whitespace and decodes HTML entities.
func Clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(strings.TrimSpace(s)))
}

// MustRule compiles item (and scope, if non-empty) case-insensitively.
func MustRule(name, scope, item string) Rule {
	r := Rule{Name: name, Item: regexp.MustCompile("(?i)" + item)}
	if scope != "" {
		r.Scope = regexp.MustCompile("(?i)" + scope)
	}
	return r
}
