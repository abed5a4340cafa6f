package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func withCorpus(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("the harvest the harvest weather answers"), 0o644))
	t.Setenv("CORPORA", path)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_LEVEL", "error")
}

func TestClassifyCommand(t *testing.T) {
	out := run(t, "", "classify", "0x1A", "hello")
	assert.Equal(t, "0x1A\tnumeric_hex\tnumeric_hex\nhello\tplain\thello\n", out)
}

func TestProcessCommand(t *testing.T) {
	withCorpus(t)

	out := run(t, "", "process", "The harvset", "")
	assert.Equal(t, "[\"harvest\"]\n[\"no_text\"]\n", out)

	out = run(t, "The 42\nweather\n", "process", "--tag-numeric", "--remove-stopwords=false", "--kill-nonwords=false")
	assert.Equal(t, "[\"the\",\"numeric_int\"]\n[\"weather\"]\n", out)
}

func TestCorrectAndWordsCommands(t *testing.T) {
	withCorpus(t)

	out := run(t, "", "correct", "Harvset")
	assert.Equal(t, "harvset\tharvest\t1\t2\n", out)

	out = run(t, "", "words", "--limit", "2")
	assert.Equal(t, "harvest\t2\nthe\t2\n", out)
}
