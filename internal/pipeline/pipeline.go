// Package pipeline turns a raw answer into its normalized token sequence.
package pipeline

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"openform/internal/classify"
	"openform/internal/model"
	"openform/pkg/options"
)

const (
	// MaxTokenLength is the number of characters kept from each token.
	MaxTokenLength = 20

	NoText       = "no_text"
	NonsenseWord = "nonsense_word"

	punctuation = "!@#$%^.,"
)

// Pipeline is safe for concurrent use; it only reads the shared model.
type Pipeline struct {
	model    *model.Model
	defaults options.ProcessOptions
	logger   *zap.Logger
}

type Option func(*Pipeline)

// WithDefaults sets the flags used when a call does not override them.
func WithDefaults(o options.ProcessOptions) Option {
	return func(p *Pipeline) { p.defaults = o }
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a pipeline over m with options.DefaultOptions unless
// WithDefaults says otherwise.
func New(m *model.Model, opts ...Option) *Pipeline {
	p := &Pipeline{
		model:    m,
		defaults: options.DefaultOptions,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Defaults returns the construction-time flags.
func (p *Pipeline) Defaults() options.ProcessOptions { return p.defaults }

// Model returns the shared model.
func (p *Pipeline) Model() *model.Model { return p.model }

// Tokenize strips the fixed punctuation set, lowercases, splits on
// whitespace and truncates each token to MaxTokenLength characters.
func Tokenize(answer string) []string {
	answer = norm.NFC.String(answer)
	answer = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, answer)
	fields := strings.Fields(strings.ToLower(answer))
	for i, f := range fields {
		fields[i] = truncate(f, MaxTokenLength)
	}
	return fields
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// ProcessAnswer is Process for an optional answer; nil reads as empty.
func (p *Pipeline) ProcessAnswer(answer *string, opts ...options.Options) []string {
	if answer == nil {
		return p.Process("", opts...)
	}
	return p.Process(*answer, opts...)
}

// Process normalizes answer. Empty input yields ["no_text"].
func (p *Pipeline) Process(answer string, opts ...options.Options) []string {
	o := options.Resolve(p.defaults, opts...)

	tokens := Tokenize(answer)
	if len(tokens) == 0 {
		return []string{NoText}
	}

	if o.CorrectSpelling {
		for i, t := range tokens {
			tokens[i] = p.model.Corrector.Correct(t)
		}
	}

	if o.RemoveStopwords {
		kept := tokens[:0]
		for _, t := range tokens {
			if !p.model.Lexicon.IsStopword(t) {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	if o.TagNumeric {
		for i, t := range tokens {
			tokens[i] = classify.Tag(t)
		}
	}

	if o.TagGarbage {
		for i, t := range tokens {
			if classify.IsCommonGarbage(t) {
				tokens[i] = string(classify.Garbage)
			}
		}
	}

	if o.KillNonwords {
		for i, t := range tokens {
			if !p.isMeaningful(t) {
				tokens[i] = NonsenseWord
			}
		}
	}

	p.logger.Debug("processed answer",
		zap.Int("tokens", len(tokens)),
		zap.Bool("remove_stopwords", o.RemoveStopwords),
		zap.Bool("tag_numeric", o.TagNumeric),
		zap.Bool("correct_spelling", o.CorrectSpelling),
		zap.Bool("kill_nonwords", o.KillNonwords),
	)
	return tokens
}

func (p *Pipeline) isMeaningful(token string) bool {
	lex := p.model.Lexicon
	return lex.IsWord(token) ||
		classify.IsReserved(classify.Tag(token)) ||
		lex.IsWord(lex.Stem(token)) ||
		classify.IsReserved(token)
}
