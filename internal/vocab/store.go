package vocab

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Entry is a single dictionary word with its observed frequency.
type Entry struct {
	Word      string `json:"word"`
	Frequency int64  `json:"frequency"`
}

// ConstructionError reports an entry that cannot be placed in a Store.
type ConstructionError struct {
	Index  int
	Word   string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("vocab: entry %d (%q): %s", e.Index, e.Word, e.Reason)
}

// Store is an immutable lowercase word -> frequency table. It is safe for
// concurrent readers; a new vocabulary requires a new Store.
type Store struct {
	frequencies map[string]int64
	// words bucketed by rune length, each bucket sorted lexicographically
	byLen  map[int][]string
	maxLen int
}

// New builds a Store from entries. Words are lowercased; when a word repeats,
// the last entry wins.
func New(entries []Entry) (*Store, error) {
	s := &Store{
		frequencies: make(map[string]int64, len(entries)),
		byLen:       make(map[int][]string),
	}
	for i, e := range entries {
		word := strings.ToLower(e.Word)
		if strings.TrimSpace(word) == "" {
			return nil, &ConstructionError{Index: i, Word: e.Word, Reason: "empty word"}
		}
		if e.Frequency < 0 {
			return nil, &ConstructionError{Index: i, Word: e.Word, Reason: "negative frequency"}
		}
		if _, seen := s.frequencies[word]; !seen {
			n := utf8.RuneCountInString(word)
			s.byLen[n] = append(s.byLen[n], word)
			s.maxLen = max(s.maxLen, n)
		}
		s.frequencies[word] = e.Frequency
	}
	for _, bucket := range s.byLen {
		sort.Strings(bucket)
	}
	return s, nil
}

// Contains reports whether the lowercase word is known.
func (s *Store) Contains(word string) bool {
	_, ok := s.frequencies[word]
	return ok
}

// FrequencyOf returns the frequency of word, or 0 when it is absent.
func (s *Store) FrequencyOf(word string) int64 {
	return s.frequencies[word]
}

// Len returns the number of distinct words.
func (s *Store) Len() int { return len(s.frequencies) }

// AllWords returns every known word in lexicographic order.
func (s *Store) AllWords() []string {
	out := make([]string, 0, len(s.frequencies))
	for w := range s.frequencies {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// WordsWithin calls fn for every word whose rune length lies in
// [length-slack, length+slack], shortest bucket first and lexicographic
// inside a bucket.
func (s *Store) WordsWithin(length, slack int, fn func(word string)) {
	lo := max(length-slack, 1)
	hi := min(length+slack, s.maxLen)
	for n := lo; n <= hi; n++ {
		for _, w := range s.byLen[n] {
			fn(w)
		}
	}
}

// Top returns up to n entries ordered by frequency descending, then word.
func (s *Store) Top(n int) []Entry {
	if n <= 0 {
		return nil
	}
	all := make([]Entry, 0, len(s.frequencies))
	for w, f := range s.frequencies {
		all = append(all, Entry{Word: w, Frequency: f})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Frequency == all[j].Frequency {
			return all[i].Word < all[j].Word
		}
		return all[i].Frequency > all[j].Frequency
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
