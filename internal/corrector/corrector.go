package corrector

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"autocorrect/internal/vocab"
	"autocorrect/pkg/options"
)

// SpellCorrector corrects words and free text against an immutable
// vocabulary. All methods are safe for concurrent use.
type SpellCorrector struct {
	opts  options.CorrectorOptions
	store *vocab.Store
}

func NewSpellCorrector(store *vocab.Store, opts ...options.Options) *SpellCorrector {
	if store == nil {
		store, _ = vocab.New(nil)
	}
	return &SpellCorrector{opts: options.Resolve(opts...), store: store}
}

// Options returns the resolved corrector settings.
func (sc *SpellCorrector) Options() options.CorrectorOptions { return sc.opts }

// Store returns the vocabulary the corrector reads from.
func (sc *SpellCorrector) Store() *vocab.Store { return sc.store }

// =====================
// Tokenization
// =====================

const (
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`
)

// Word runs, whitespace runs, or one character of anything else. Every byte
// of the input lands in exactly one token.
var tokenRe = regexp.MustCompile(`[` + wordClass + `]+|[` + spaceClass + `]+|[^` + wordClass + spaceClass + `]`)

func tokenize(text string) []string { return tokenRe.FindAllString(text, -1) }

func isWord(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// =====================
// Word correction
// =====================

func (sc *SpellCorrector) skip(token string) bool {
	return utf8.RuneCountInString(token) < sc.opts.MinWordLength ||
		isDigits(token) ||
		strings.Contains(token, "@") ||
		strings.Contains(token, "://") ||
		strings.HasPrefix(token, "www.")
}

// CorrectWord returns the best replacement for token, or token itself when
// it is skipped, already known, or has no candidate within range.
func (sc *SpellCorrector) CorrectWord(token string) string {
	out, _ := sc.correctWord(token)
	return out
}

func (sc *SpellCorrector) correctWord(token string) (string, []string) {
	if sc.skip(token) {
		wordsTotal.WithLabelValues(resultSkipped).Inc()
		return token, nil
	}
	lw := strings.ToLower(token)
	if sc.store.Contains(lw) {
		wordsTotal.WithLabelValues(resultKnown).Inc()
		return token, nil
	}
	cands := sc.GenerateCandidates(lw, sc.opts.MaxEditDistance)
	if len(cands) == 0 {
		wordsTotal.WithLabelValues(resultUnchanged).Inc()
		return token, nil
	}
	wordsTotal.WithLabelValues(resultCorrected).Inc()
	return sc.restoreCase(token, cands[0]), cands
}

func (sc *SpellCorrector) restoreCase(orig, candidate string) string {
	if sc.opts.PreserveUpper && isUpper(orig) {
		return strings.ToUpper(candidate)
	}
	r, _ := utf8.DecodeRuneInString(orig)
	if unicode.IsUpper(r) {
		return title(candidate)
	}
	return candidate
}

// =====================
// Text correction
// =====================

// CorrectText corrects every word token of text and leaves whitespace and
// punctuation exactly where they were.
func (sc *SpellCorrector) CorrectText(text string) string {
	return sc.Check(text).Corrected
}

// Check is CorrectText plus the candidate list of every replaced word, keyed
// by token index.
func (sc *SpellCorrector) Check(text string) CorrectionResult {
	tokens := tokenize(text)
	out := make([]string, len(tokens))
	sugByPos := make(map[int]SuggestionInfo)

	for i, tok := range tokens {
		if !isWord(tok) {
			out[i] = tok
			continue
		}
		corrected, cands := sc.correctWord(tok)
		out[i] = corrected
		if len(cands) == 0 {
			continue
		}
		sugByPos[i] = SuggestionInfo{Token: tok, Suggestions: cands, Decision: DecisionReplaced}
	}

	return CorrectionResult{
		Original:    text,
		Corrected:   strings.Join(out, ""),
		Suggestions: sugByPos,
	}
}

// =====================
// Case helpers
// =====================

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isUpper needs at least two cased letters so "I" and "A1" stay title case.
func isUpper(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= 2
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
