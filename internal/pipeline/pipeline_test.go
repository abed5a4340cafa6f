package pipeline

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openform/internal/corrector"
	"openform/internal/lexicon"
	"openform/internal/model"
	"openform/pkg/options"
)

const trainingText = `Because the apple harvest was late, apples and bananas
were expensive. Survey answers mention weather, harvest, because, prices and
answers again. Running and walking are popular.`

type suffixStemmer struct{}

func (suffixStemmer) Stem(word string) string { return strings.TrimSuffix(word, "s") }

func newTestModel(t *testing.T, stemmer lexicon.Stemmer) *model.Model {
	t.Helper()
	table := corrector.Train(trainingText)
	words := lexicon.NewWordSet("apple", "banana", "harvest", "weather", "run", "walk", "hello", "world", "have")
	lex := lexicon.New(words, nil, stemmer)
	m, err := model.New(table, lex, corrector.DefaultConfig(), nil)
	require.NoError(t, err)
	return m
}

func none() options.Options { return options.WithNone() }

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "Hello, World!", []string{"hello", "world"}},
		{"empty", "", []string{}},
		{"punctuation only", "!!! ,,, ...", []string{}},
		{"no respacing", "hello,world e.g.", []string{"helloworld", "eg"}},
		{"keeps other symbols", "a&b don't (x)", []string{"a&b", "don't", "(x)"}},
		{"unicode whitespace", "one two\tthree\nfour", []string{"one", "two", "three", "four"}},
		{"truncates", "Pneumonoultramicroscopicsilicovolcanoconiosis", []string{"pneumonoultramicrosc"}},
		{"truncates by character", strings.Repeat("é", 25), []string{strings.Repeat("é", 20)}},
		{"composes accents", "café", []string{"café"}},
		{"strips all of !@#$%^.,", "#1 $5 50% 2^3 me@x", []string{"1", "5", "50", "23", "mex"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcess_NoText(t *testing.T) {
	p := New(newTestModel(t, nil))

	assert.Equal(t, []string{NoText}, p.ProcessAnswer(nil))
	assert.Equal(t, []string{NoText}, p.Process(""))
	assert.Equal(t, []string{NoText}, p.Process("  ...,,, !!"))
	empty := ""
	assert.Equal(t, []string{NoText}, p.ProcessAnswer(&empty))
}

func TestProcess_AllOptionsOff(t *testing.T) {
	p := New(newTestModel(t, nil))
	assert.Equal(t, []string{"hello", "world"}, p.Process("Hello, World!", none()))

	answer := "Hello, World!"
	assert.Equal(t, []string{"hello", "world"}, p.ProcessAnswer(&answer, none()))
}

func TestProcess_TagNumeric(t *testing.T) {
	p := New(newTestModel(t, nil))

	got := p.Process("I have 42 apples", none(), options.WithTagNumeric(true))
	require.Len(t, got, 4)
	assert.Equal(t, "numeric_int", got[2])
	assert.Equal(t, "have", got[1])
	assert.Equal(t, "apples", got[3])

	got = p.Process("I have 42 bananas", options.WithTagNumeric(true))
	assert.Equal(t, []string{"numeric_int", "bananas"}, got)

	got = p.Process("0 0x1A 0b101 017 1e5 3+4j XIV IIII", none(), options.WithTagNumeric(true))
	assert.Equal(t, []string{
		"numeric_zero", "numeric_hex", "numeric_binary", "numeric_octal",
		"numeric_float", "numeric_complex", "numeric_roman", "iiii",
	}, got)
}

func TestProcess_CorrectSpelling(t *testing.T) {
	p := New(newTestModel(t, nil))

	got := p.Process("harvset wether aplpes", none(), options.WithCorrectSpelling(true))
	assert.Equal(t, []string{"harvest", "weather", "apples"}, got)

	// short words are never corrected
	got = p.Process("wierd aple", none(), options.WithCorrectSpelling(true))
	assert.Equal(t, []string{"wierd", "aple"}, got)
}

func TestProcess_StopwordsAfterCorrection(t *testing.T) {
	p := New(newTestModel(t, nil))

	got := p.Process("becuase apples", none(), options.WithRemoveStopwords(true))
	assert.Equal(t, []string{"becuase", "apples"}, got)

	got = p.Process("becuase apples", none(),
		options.WithCorrectSpelling(true), options.WithRemoveStopwords(true))
	assert.Equal(t, []string{"apples"}, got)

	got = p.Process("the and of", none(), options.WithRemoveStopwords(true))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestProcess_KillNonwords(t *testing.T) {
	p := New(newTestModel(t, suffixStemmer{}))

	got := p.Process("blorptastic apple apples running", none(), options.WithKillNonwords(true))
	assert.Equal(t, []string{NonsenseWord, "apple", "apples", NonsenseWord}, got)

	p = New(newTestModel(t, nil))
	got = p.Process("running zzqqx", none(), options.WithKillNonwords(true))
	assert.Equal(t, []string{"running", NonsenseWord}, got, "Snowball reduces running to run")
}

func TestProcess_KillNonwordsKeepsReserved(t *testing.T) {
	p := New(newTestModel(t, nil))

	got := p.Process("42 0x1A blorp numeric_float 0", none(),
		options.WithTagNumeric(true), options.WithKillNonwords(true))
	assert.Equal(t, []string{"numeric_int", "numeric_hex", NonsenseWord, "numeric_float", "numeric_zero"}, got)

	// untagged numbers survive through their classification
	got = p.Process("42 xiv", none(), options.WithKillNonwords(true))
	assert.Equal(t, []string{"42", "xiv"}, got)
}

func TestProcess_TagGarbage(t *testing.T) {
	p := New(newTestModel(t, nil))

	got := p.Process("lol hello idk", none(), options.WithTagGarbage(true))
	assert.Equal(t, []string{"garbage", "hello", "garbage"}, got)

	got = p.Process("lol hello", none(), options.WithTagGarbage(true), options.WithKillNonwords(true))
	assert.Equal(t, []string{"garbage", "hello"}, got)

	got = p.Process("lol hello", none(), options.WithKillNonwords(true))
	assert.Equal(t, []string{NonsenseWord, "hello"}, got)
}

func TestProcess_Defaults(t *testing.T) {
	p := New(newTestModel(t, nil))
	assert.Equal(t, options.DefaultOptions, p.Defaults())

	got := p.Process("The harvset was blorptastic")
	assert.Equal(t, []string{"harvest", NonsenseWord}, got)

	p = New(newTestModel(t, nil), WithDefaults(options.ProcessOptions{TagNumeric: true}))
	assert.Equal(t, []string{"the", "numeric_int"}, p.Process("The 42"))
	assert.Equal(t, []string{"the", "42"}, p.Process("The 42", options.WithTagNumeric(false)))
}

func TestProcess_Idempotent(t *testing.T) {
	p := New(newTestModel(t, nil))
	input := "apple harvest weather banana"
	first := p.Process(input)
	second := p.Process(input)
	assert.Equal(t, first, second)
	assert.Equal(t, first, p.Process(strings.Join(first, " ")))
}

func TestProcess_Concurrent(t *testing.T) {
	p := New(newTestModel(t, nil))
	want := p.Process("harvset wether 42 blorp")

	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = p.Process("harvset wether 42 blorp")
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
