// Package corrector implements frequency-ranked spelling correction over
// candidates at most two edits away.
package corrector

import (
	"fmt"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"openform/internal/classify"
)

type SpellCorrector struct {
	config CorrectorConfig
	table  *FrequencyTable
	cache  *lru.Cache[string, Correction]
	logger *zap.Logger
}

// NewSpellCorrector builds a corrector over a trained table. A nil logger
// discards output.
func NewSpellCorrector(cfg CorrectorConfig, table *FrequencyTable, logger *zap.Logger) (*SpellCorrector, error) {
	if table == nil {
		return nil, fmt.Errorf("corrector: frequency table is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sc := &SpellCorrector{config: cfg, table: table, logger: logger}
	if cfg.CacheSize > 0 {
		c, err := lru.New[string, Correction](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("corrector: cache: %w", err)
		}
		sc.cache = c
	}
	return sc, nil
}

// Table returns the frequency table the corrector ranks against.
func (sc *SpellCorrector) Table() *FrequencyTable { return sc.table }

// Correct returns the most frequent known word closest to word, or word
// itself when it is short, already tagged, or has no known neighbour.
func (sc *SpellCorrector) Correct(word string) string {
	return sc.Explain(word).Corrected
}

// Explain is Correct with the tier and count of the chosen candidate.
func (sc *SpellCorrector) Explain(word string) Correction {
	if sc.skip(word) {
		return Correction{Original: word, Corrected: word, Tier: TierSkipped}
	}
	if sc.cache != nil {
		if c, ok := sc.cache.Get(word); ok {
			return c
		}
	}
	c := sc.resolve(word)
	if sc.cache != nil {
		sc.cache.Add(word, c)
	}
	if c.Corrected != word {
		sc.logger.Debug("corrected word",
			zap.String("original", word),
			zap.String("corrected", c.Corrected),
			zap.Int("tier", c.Tier),
			zap.Int("count", c.Count),
		)
	}
	return c
}

func (sc *SpellCorrector) skip(word string) bool {
	if utf8.RuneCountInString(word) <= sc.config.ShortWordLength {
		return true
	}
	return classify.IsReserved(classify.Tag(word))
}

func (sc *SpellCorrector) resolve(word string) Correction {
	if n, ok := sc.table.Count(word); ok {
		return Correction{Original: word, Corrected: word, Tier: TierKnown, Count: n}
	}
	if b := sc.table.bestEdit1(word); b.found {
		return Correction{Original: word, Corrected: b.word, Tier: TierEdit1, Count: b.count}
	}
	if b := sc.table.bestEdit2(word); b.found {
		return Correction{Original: word, Corrected: b.word, Tier: TierEdit2, Count: b.count}
	}
	return Correction{Original: word, Corrected: word, Tier: TierSkipped}
}
