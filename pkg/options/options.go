package options

// DefaultOptions matches the classic corrector: distance 2, five
// candidates, tokens of two characters or fewer left alone.
var DefaultOptions = CorrectorOptions{
	MaxEditDistance: 2,
	MaxCandidates:   5,
	MinWordLength:   3,
	PreserveUpper:   false,
}

type CorrectorOptions struct {
	MaxEditDistance int
	MaxCandidates   int
	MinWordLength   int  // tokens shorter than this (in runes) are never corrected
	PreserveUpper   bool // ALLCAPS tokens get ALLCAPS replacements
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	conf := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&conf)
		}
	}
	return conf
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithMaxCandidates(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MaxCandidates = n
	})
}

func WithMinWordLength(n int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.MinWordLength = n
	})
}

// WithPreserveUpper keeps shouting words shouting: "HELO" -> "HELLO"
// instead of "Hello".
func WithPreserveUpper() Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.PreserveUpper = true
	})
}
