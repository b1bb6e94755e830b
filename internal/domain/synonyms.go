package domain

// Dedupe removes exact duplicates from words, keeping the first occurrence.
// Comparison is case-sensitive: "Glad" and "glad" are both kept.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Truncate returns at most limit leading elements of words as a new slice.
// A negative limit is treated as zero.
func Truncate(words []string, limit int) []string {
	if limit < 0 {
		limit = 0
	}
	if len(words) > limit {
		words = words[:limit]
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// RawPage is the outcome of a single HTTP GET. Any status code is a valid
// RawPage; only a 200 carries usable data.
type RawPage struct {
	Status int
	Body   string
}

// OK reports whether the page was served with HTTP 200.
func (p RawPage) OK() bool { return p.Status == 200 }
