package corrector

import (
	"sort"
	"strings"
	"unicode/utf8"

	"autocorrect/pkg/options"
)

// Candidates ranks vocabulary words within maxDistance of the lowercase
// query: distance ascending, then frequency descending, then word. At most
// the configured number of candidates (five by default) is returned.
func (sc *SpellCorrector) Candidates(query string, maxDistance int) []Candidate {
	if maxDistance < 0 || sc.store.Len() == 0 {
		return nil
	}
	var out []Candidate
	if sc.store.Contains(query) {
		out = append(out, Candidate{Term: query, Distance: 0, Frequency: sc.store.FrequencyOf(query)})
	}
	// Edit distance is never below the length difference, so only buckets
	// within maxDistance of the query length can hold a match.
	sc.store.WordsWithin(utf8.RuneCountInString(query), maxDistance, func(w string) {
		if w == query {
			return
		}
		if d := Distance(query, w); d <= maxDistance {
			out = append(out, Candidate{Term: w, Distance: d, Frequency: sc.store.FrequencyOf(w)})
		}
	})

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Term < out[j].Term
	})
	limit := sc.opts.MaxCandidates
	if limit <= 0 {
		limit = options.DefaultOptions.MaxCandidates
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GenerateCandidates is Candidates reduced to the ranked words.
func (sc *SpellCorrector) GenerateCandidates(query string, maxDistance int) []string {
	cands := sc.Candidates(strings.ToLower(query), maxDistance)
	if len(cands) == 0 {
		return nil
	}
	terms := make([]string, len(cands))
	for i, c := range cands {
		terms[i] = c.Term
	}
	return terms
}
