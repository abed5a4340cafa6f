// Package model assembles the trained, read-only state shared by every
// pipeline call.
package model

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"openform/internal/corpus"
	"openform/internal/corrector"
	"openform/internal/lexicon"
)

// CustomWordCount ranks operator-supplied words above any corpus word.
const CustomWordCount = 1_000_000_000

// Model is built once and never mutated.
type Model struct {
	Table     *corrector.FrequencyTable
	Corrector *corrector.SpellCorrector
	Lexicon   *lexicon.Lexicon
}

// New wires a corrector over table.
func New(table *corrector.FrequencyTable, lex *lexicon.Lexicon, cfg corrector.CorrectorConfig, logger *zap.Logger) (*Model, error) {
	if lex == nil {
		return nil, fmt.Errorf("model: lexicon is required")
	}
	sc, err := corrector.NewSpellCorrector(cfg, table, logger)
	if err != nil {
		return nil, err
	}
	return &Model{Table: table, Corrector: sc, Lexicon: lex}, nil
}

// CustomWords supplies extra dictionary words at build time.
type CustomWords interface {
	All(ctx context.Context) ([]string, error)
}

// Sources names everything Build reads.
type Sources struct {
	// Corpora are raw text files; required.
	Corpora []string
	// CountFiles hold precomputed "word count" lines merged into the table.
	CountFiles []string
	// WordList is the base dictionary, one word per line. Optional.
	WordList string
	// StopwordList replaces the Snowball stopwords when set.
	StopwordList string
	// Custom is consulted once; failures are logged and skipped.
	Custom CustomWords
}

// Build loads every source and returns the model. Any unreadable corpus,
// count file or word list is an error.
func Build(ctx context.Context, src Sources, cfg corrector.CorrectorConfig, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c, err := corpus.Load(ctx, src.Corpora, logger)
	if err != nil {
		return nil, fmt.Errorf("model: load corpora: %w", err)
	}
	table := corrector.NewFrequencyTable(c.Counts)

	for _, path := range src.CountFiles {
		t, err := loadCountFile(path)
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
		table = table.Merge(t)
	}

	words := lexicon.NewWordSet()
	if src.WordList != "" {
		words, err = lexicon.LoadWordSet(src.WordList)
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
	}
	for w := range c.Counts {
		words[w] = struct{}{}
	}

	var stops lexicon.Stopwords
	if src.StopwordList != "" {
		ws, err := lexicon.LoadWordSet(src.StopwordList)
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
		stops = ws
	}

	if src.Custom != nil {
		custom, err := src.Custom.All(ctx)
		if err != nil {
			logger.Warn("custom words unavailable", zap.Error(err))
		} else if len(custom) > 0 {
			counts := make(map[string]int, len(custom))
			for _, w := range custom {
				counts[strings.ToLower(strings.TrimSpace(w))] = CustomWordCount
			}
			words.Add(custom...)
			table = table.Merge(corrector.NewFrequencyTable(counts))
		}
	}

	lex := lexicon.New(words, stops, nil)
	m, err := New(table, lex, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("model built",
		zap.Int("corpus_words", c.Words),
		zap.Int("table_entries", table.Len()),
		zap.Int("dictionary_words", lex.Size()),
	)
	return m, nil
}

func loadCountFile(path string) (*corrector.FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open counts %s: %w", path, err)
	}
	defer f.Close()
	t, err := corrector.LoadCounts(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
