// Package corpus reads raw training text and counts the lowercase
// alphabetic words in it.
package corpus

import (
	"context"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Corpus holds the word counts gathered from one or more sources.
type Corpus struct {
	Sources []string
	Counts  map[string]int
	Words   int
}

// EachWord calls fn for every run of a-z in text after ASCII lowercasing.
// The slice passed to fn is only valid for the duration of the call.
func EachWord(text []byte, fn func(word []byte)) {
	var buf []byte
	flush := func() {
		if len(buf) > 0 {
			fn(buf)
			buf = buf[:0]
		}
	}
	for _, c := range text {
		switch {
		case c >= 'a' && c <= 'z':
			buf = append(buf, c)
		case c >= 'A' && c <= 'Z':
			buf = append(buf, c+('a'-'A'))
		default:
			flush()
		}
	}
	flush()
}

// Words returns the lowercase alphabetic runs of text in order.
func Words(text string) []string {
	var out []string
	EachWord([]byte(text), func(w []byte) {
		out = append(out, string(w))
	})
	return out
}

// Count adds the words of text to counts and returns how many it saw.
func Count(text []byte, counts map[string]int) int {
	n := 0
	EachWord(text, func(w []byte) {
		counts[string(w)]++
		n++
	})
	return n
}

// FromText builds a corpus from in-memory texts.
func FromText(texts ...string) *Corpus {
	c := &Corpus{Counts: make(map[string]int)}
	for _, t := range texts {
		c.Words += Count([]byte(t), c.Counts)
	}
	return c
}

// Load reads every path and merges their counts. Files are mapped and
// scanned concurrently; any unreadable source fails the whole load.
func Load(ctx context.Context, paths []string, logger *zap.Logger) (*Corpus, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("corpus: no sources configured")
	}

	perFile := make([]map[string]int, len(paths))
	totals := make([]int, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts := make(map[string]int)
			n, err := countFile(path, counts)
			if err != nil {
				return err
			}
			perFile[i] = counts
			totals[i] = n
			logger.Info("corpus source loaded",
				zap.String("path", path),
				zap.Int("words", n),
				zap.Int("distinct", len(counts)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Corpus{Sources: append([]string(nil), paths...), Counts: make(map[string]int)}
	for i, counts := range perFile {
		for w, n := range counts {
			c.Counts[w] += n
		}
		c.Words += totals[i]
	}
	return c, nil
}

func countFile(path string, counts map[string]int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("corpus: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return 0, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return 0, fmt.Errorf("corpus: map %s: %w", path, err)
	}
	defer m.Unmap()

	return Count(m, counts), nil
}
