package corrector

// DefaultShortWordLength is the longest word left uncorrected; short words
// have too many neighbours within two edits.
const DefaultShortWordLength = 5

type CorrectorConfig struct {
	ShortWordLength int
	// CacheSize bounds the memoized corrections; zero disables the cache.
	CacheSize int
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() CorrectorConfig {
	return CorrectorConfig{
		ShortWordLength: DefaultShortWordLength,
		CacheSize:       4096,
	}
}

// Tier values reported in a Correction.
const (
	TierSkipped = -1
	TierKnown   = 0
	TierEdit1   = 1
	TierEdit2   = 2
)

// Correction describes how a single word was resolved.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	// Tier is the edit distance of the winning candidate set, or
	// TierSkipped when the word was left alone or nothing matched.
	Tier  int `json:"tier"`
	Count int `json:"count"`
}
