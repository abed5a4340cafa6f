package corrector

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"openform/internal/classify"
	"openform/internal/corpus"
)

// FrequencyTable maps known words to their occurrence counts. It is
// immutable once built. A word that never occurred has no entry.
type FrequencyTable struct {
	counts map[string]int
	total  int
}

func newTable(counts map[string]int) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[string]int, len(counts)+len(classify.ReservedTags()))}
	for w, n := range counts {
		if n <= 0 {
			continue
		}
		ft.counts[w] = n
		ft.total += n
	}
	// reserved tags always rank, even if the corpus never mentions them
	for _, tag := range classify.ReservedTags() {
		if _, ok := ft.counts[tag]; !ok {
			ft.counts[tag] = 1
			ft.total++
		}
	}
	return ft
}

// Train counts the lowercase alphabetic runs of every text.
func Train(texts ...string) *FrequencyTable {
	return newTable(corpus.FromText(texts...).Counts)
}

// NewFrequencyTable copies counts into a table. Non-positive counts are
// dropped.
func NewFrequencyTable(counts map[string]int) *FrequencyTable {
	return newTable(counts)
}

// LoadCounts reads a precomputed "word count" listing, one entry per line.
// Lines that do not parse are skipped; float counts are truncated.
func LoadCounts(r io.Reader) (*FrequencyTable, error) {
	counts := make(map[string]int)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			fv, err2 := strconv.ParseFloat(parts[1], 64)
			if err2 != nil {
				continue
			}
			count = int(fv)
		}
		counts[word] += count
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read counts: %w", err)
	}
	return newTable(counts), nil
}

// Merge returns a new table holding the summed counts of ft and others.
func (ft *FrequencyTable) Merge(others ...*FrequencyTable) *FrequencyTable {
	counts := make(map[string]int, len(ft.counts))
	for w, n := range ft.counts {
		counts[w] += n
	}
	for _, o := range others {
		for w, n := range o.counts {
			counts[w] += n
		}
	}
	return newTable(counts)
}

// Count returns the number of occurrences of word and whether it is known.
func (ft *FrequencyTable) Count(word string) (int, bool) {
	n, ok := ft.counts[word]
	return n, ok
}

// Contains reports whether word has an entry.
func (ft *FrequencyTable) Contains(word string) bool {
	_, ok := ft.counts[word]
	return ok
}

// Len is the number of distinct words.
func (ft *FrequencyTable) Len() int { return len(ft.counts) }

// Total is the sum of all counts.
func (ft *FrequencyTable) Total() int { return ft.total }

// Words returns the known words sorted by descending count, then
// alphabetically.
func (ft *FrequencyTable) Words() []string {
	out := make([]string, 0, len(ft.counts))
	for w := range ft.counts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := ft.counts[out[i]], ft.counts[out[j]]
		if ci == cj {
			return out[i] < out[j]
		}
		return ci > cj
	})
	return out
}
