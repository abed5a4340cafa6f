// Package lexicon holds the read-only word knowledge the pipeline consults:
// the dictionary word set, the stopword set and the stemmer.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kljensen/snowball/english"

	"openform/internal/classify"
)

// Stemmer reduces a word to a root form.
type Stemmer interface {
	Stem(word string) string
}

// Stopwords reports whether a word is a stopword.
type Stopwords interface {
	IsStopword(word string) bool
}

// SnowballStemmer is the Snowball (Porter2) English stemmer.
type SnowballStemmer struct{}

func (SnowballStemmer) Stem(word string) string {
	return english.Stem(word, true)
}

// SnowballStopwords is the Snowball English stopword list.
type SnowballStopwords struct{}

func (SnowballStopwords) IsStopword(word string) bool {
	return english.IsStopWord(word)
}

// WordSet is a set of lowercase words.
type WordSet map[string]struct{}

// NewWordSet builds a set from words, lowercasing each.
func NewWordSet(words ...string) WordSet {
	ws := make(WordSet, len(words))
	ws.Add(words...)
	return ws
}

func (ws WordSet) Add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			ws[w] = struct{}{}
		}
	}
}

func (ws WordSet) Contains(word string) bool {
	_, ok := ws[word]
	return ok
}

func (ws WordSet) IsStopword(word string) bool { return ws.Contains(word) }

// ReadWordSet reads one word per line. Blank lines and lines starting with
// '#' are ignored.
func ReadWordSet(r io.Reader) (WordSet, error) {
	ws := make(WordSet)
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ws.Add(line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ws, nil
}

// LoadWordSet reads a word list file.
func LoadWordSet(path string) (WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open %s: %w", path, err)
	}
	defer f.Close()
	ws, err := ReadWordSet(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return ws, nil
}

// Lexicon is immutable after New.
type Lexicon struct {
	words     WordSet
	stopwords Stopwords
	stemmer   Stemmer
}

// New copies words, adds the reserved tags, and falls back to the Snowball
// stopwords and stemmer when stops or stemmer is nil.
func New(words WordSet, stops Stopwords, stemmer Stemmer) *Lexicon {
	ws := make(WordSet, len(words)+len(classify.ReservedTags()))
	for w := range words {
		ws[w] = struct{}{}
	}
	ws.Add(classify.ReservedTags()...)
	if stops == nil {
		stops = SnowballStopwords{}
	}
	if stemmer == nil {
		stemmer = SnowballStemmer{}
	}
	return &Lexicon{words: ws, stopwords: stops, stemmer: stemmer}
}

// IsWord reports dictionary membership.
func (l *Lexicon) IsWord(word string) bool { return l.words.Contains(word) }

func (l *Lexicon) IsStopword(word string) bool { return l.stopwords.IsStopword(word) }

func (l *Lexicon) Stem(word string) string { return l.stemmer.Stem(word) }

// Size is the number of dictionary words, reserved tags included.
func (l *Lexicon) Size() int { return len(l.words) }
