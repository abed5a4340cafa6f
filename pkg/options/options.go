package options

// DefaultOptions drop stopwords, correct spelling and flag nonsense words,
// leaving numbers untagged.
var DefaultOptions = ProcessOptions{
	RemoveStopwords: true,
	TagNumeric:      false,
	CorrectSpelling: true,
	KillNonwords:    true,
	TagGarbage:      false,
}

type ProcessOptions struct {
	RemoveStopwords bool `json:"remove_stopwords" yaml:"remove_stopwords"`
	TagNumeric      bool `json:"tag_numeric" yaml:"tag_numeric"`
	CorrectSpelling bool `json:"correct_spelling" yaml:"correct_spelling"`
	KillNonwords    bool `json:"kill_nonwords" yaml:"kill_nonwords"`
	// TagGarbage replaces filler and profanity with the garbage tag before
	// nonsense words are flagged.
	TagGarbage bool `json:"tag_garbage" yaml:"tag_garbage"`
}

type Options interface {
	Apply(options *ProcessOptions)
}

type FuncConfig struct {
	ops func(options *ProcessOptions)
}

func (w FuncConfig) Apply(conf *ProcessOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *ProcessOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts over base and returns the result; base is not
// modified.
func Resolve(base ProcessOptions, opts ...Options) ProcessOptions {
	for _, o := range opts {
		if o != nil {
			o.Apply(&base)
		}
	}
	return base
}

func WithRemoveStopwords(enabled bool) Options {
	return NewFuncOption(func(options *ProcessOptions) {
		options.RemoveStopwords = enabled
	})
}

func WithTagNumeric(enabled bool) Options {
	return NewFuncOption(func(options *ProcessOptions) {
		options.TagNumeric = enabled
	})
}

func WithCorrectSpelling(enabled bool) Options {
	return NewFuncOption(func(options *ProcessOptions) {
		options.CorrectSpelling = enabled
	})
}

func WithKillNonwords(enabled bool) Options {
	return NewFuncOption(func(options *ProcessOptions) {
		options.KillNonwords = enabled
	})
}

func WithTagGarbage(enabled bool) Options {
	return NewFuncOption(func(options *ProcessOptions) {
		options.TagGarbage = enabled
	})
}

// WithAll replaces every flag at once.
func WithAll(o ProcessOptions) Options {
	return NewFuncOption(func(options *ProcessOptions) {
		*options = o
	})
}

// WithNone turns every step off, leaving only tokenization.
func WithNone() Options {
	return WithAll(ProcessOptions{})
}

// Overrides carries optional per-call values, as decoded from a request;
// nil fields keep the pipeline default.
type Overrides struct {
	RemoveStopwords *bool `json:"remove_stopwords,omitempty"`
	TagNumeric      *bool `json:"tag_numeric,omitempty"`
	CorrectSpelling *bool `json:"correct_spelling,omitempty"`
	KillNonwords    *bool `json:"kill_nonwords,omitempty"`
	TagGarbage      *bool `json:"tag_garbage,omitempty"`
}

// Options converts the set fields to functional options.
func (o Overrides) Options() []Options {
	var out []Options
	if o.RemoveStopwords != nil {
		out = append(out, WithRemoveStopwords(*o.RemoveStopwords))
	}
	if o.TagNumeric != nil {
		out = append(out, WithTagNumeric(*o.TagNumeric))
	}
	if o.CorrectSpelling != nil {
		out = append(out, WithCorrectSpelling(*o.CorrectSpelling))
	}
	if o.KillNonwords != nil {
		out = append(out, WithKillNonwords(*o.KillNonwords))
	}
	if o.TagGarbage != nil {
		out = append(out, WithTagGarbage(*o.TagGarbage))
	}
	return out
}
