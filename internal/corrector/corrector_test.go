package corrector

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autocorrect/internal/vocab"
	"autocorrect/pkg/options"
)

var english = []vocab.Entry{
	{Word: "hello", Frequency: 100}, {Word: "world", Frequency: 80}, {Word: "the", Frequency: 1000}, {Word: "quick", Frequency: 30}, {Word: "brown", Frequency: 20},
	{Word: "fox", Frequency: 15}, {Word: "jumps", Frequency: 10}, {Word: "over", Frequency: 90}, {Word: "lazy", Frequency: 12}, {Word: "dog", Frequency: 40},
	{Word: "spelling", Frequency: 25}, {Word: "correct", Frequency: 22}, {Word: "test", Frequency: 60},
}

func TestCorrectWordSkipRules(t *testing.T) {
	sc := newCorrector(t, english)

	for _, tok := range []string{
		"test@example.com",
		"www.example.com",
		"http://exampel.org",
		"42",
		"1234567",
		"٣٤٥",
		"ok",
		"Xy",
		"",
	} {
		assert.Equal(t, tok, sc.CorrectWord(tok), tok)
	}
}

func TestCorrectWordKnownWordsUnchanged(t *testing.T) {
	sc := newCorrector(t, english)

	for _, w := range []string{"hello", "Hello", "HELLO", "hElLo", "The"} {
		assert.Equal(t, w, sc.CorrectWord(w))
	}
}

func TestCorrectWordCapitalization(t *testing.T) {
	sc := newCorrector(t, []vocab.Entry{{Word: "hello", Frequency: 100}})

	assert.Equal(t, "Hello", sc.CorrectWord("Helo"))
	assert.Equal(t, "hello", sc.CorrectWord("helo"))
	assert.Equal(t, "Hello", sc.CorrectWord("HELO"))
	assert.Equal(t, "hello", sc.CorrectWord("hELO"))
}

func TestCorrectWordPreserveUpper(t *testing.T) {
	sc := newCorrector(t, []vocab.Entry{{Word: "hello", Frequency: 100}}, options.WithPreserveUpper())

	assert.Equal(t, "HELLO", sc.CorrectWord("HELO"))
	assert.Equal(t, "Hello", sc.CorrectWord("Helo"))
	assert.Equal(t, "hello", sc.CorrectWord("helo"))
}

func TestCorrectWordFailsOpen(t *testing.T) {
	sc := newCorrector(t, english)

	assert.Equal(t, "xyzzyq", sc.CorrectWord("xyzzyq"))
	assert.Equal(t, "Xyzzyq", sc.CorrectWord("Xyzzyq"))
}

func TestCorrectWordEmptyVocabulary(t *testing.T) {
	sc := newCorrector(t, nil)

	for _, w := range []string{"helo", "Wrold", "anything", "a"} {
		assert.Equal(t, w, sc.CorrectWord(w))
	}
}

func TestCorrectWordNilStore(t *testing.T) {
	sc := NewSpellCorrector(nil)

	assert.Equal(t, "helo", sc.CorrectWord("helo"))
}

func TestCorrectWordMinLengthOption(t *testing.T) {
	sc := newCorrector(t, []vocab.Entry{{Word: "dog", Frequency: 1}}, options.WithMinWordLength(4))

	assert.Equal(t, "dgo", sc.CorrectWord("dgo"))
	assert.Equal(t, "dog", newCorrector(t, []vocab.Entry{{Word: "dog", Frequency: 1}}).CorrectWord("dgo"))
}

func TestCorrectText(t *testing.T) {
	sc := newCorrector(t, english)

	tests := []struct {
		in, want string
	}{
		{"Helo wrold!", "Hello world!"},
		{"The quikc brwn fox", "The quick brown fox"},
		{"  teh  lazzy\tdgo.\n", "  the  lazy\tdog.\n"},
		{"mail me: hello@world.io", "mail me: hello@world.io"},
		{"call 555-1234 ok?", "call 555-1234 ok?"},
		{"", ""},
		{"...", "..."},
		{"xyzzyq, hello", "xyzzyq, hello"},
		{"snake_case wrold", "snake_case world"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sc.CorrectText(tt.in))
		})
	}
}

func TestTokenizeCoversInput(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"  leading and trailing  ",
		"tabs\tand\nnewlines\r\n",
		"naïve café — über straße",
		"emoji 🙂 here",
		"snake_case_123 4ever",
		"\xff\xfe broken bytes",
	}
	for _, in := range inputs {
		toks := tokenize(in)
		assert.Equal(t, in, strings.Join(toks, ""), "round trip %q", in)
		for _, tok := range toks {
			require.NotEmpty(t, tok)
		}
	}
}

func TestTokenizeCategories(t *testing.T) {
	assert.Equal(t,
		[]string{"Hi", ",", "  ", "you", "!", "!", "\n", "x_1"},
		tokenize("Hi,  you!!\nx_1"))
	assert.Equal(t, []string{"café", " ", "ok"}, tokenize("café ok"))
}

func TestCorrectTextPreservesNonWordStructure(t *testing.T) {
	sc := newCorrector(t, english)
	in := "Teh quikc, brwn fox -- jumsp ovr the lazzy dgo!!  Realy?\n\tYes."

	out := sc.CorrectText(in)

	strip := func(s string) []string {
		var rest []string
		for _, tok := range tokenize(s) {
			if !isWord(tok) {
				rest = append(rest, tok)
			}
		}
		return rest
	}
	assert.Equal(t, strip(in), strip(out))
	assert.Len(t, tokenize(out), len(tokenize(in)))
}

func TestCheckReportsSuggestions(t *testing.T) {
	sc := newCorrector(t, []vocab.Entry{{Word: "cat", Frequency: 50}, {Word: "bat", Frequency: 10}, {Word: "cot", Frequency: 5}, {Word: "sat", Frequency: 1}})

	res := sc.Check("A cbt sat.")

	assert.Equal(t, "A cbt sat.", res.Original)
	assert.Equal(t, "A cat sat.", res.Corrected)
	require.Len(t, res.Suggestions, 1)
	info := res.Suggestions[2]
	assert.Equal(t, "cbt", info.Token)
	assert.Equal(t, DecisionReplaced, info.Decision)
	assert.Equal(t, []string{"cat", "cot", "bat", "sat"}, info.Suggestions)
}

func TestCorrectTextConcurrentReaders(t *testing.T) {
	sc := newCorrector(t, english)
	const in = "Helo wrold, the quikc brwn fox."
	want := sc.CorrectText(in)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, sc.CorrectText(in))
			}
		}()
	}
	wg.Wait()
}
