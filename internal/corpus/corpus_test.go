package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"basic", "The Quick brown fox", []string{"the", "quick", "brown", "fox"}},
		{"empty", "", nil},
		{"digits split runs", "abc123def", []string{"abc", "def"}},
		{"punctuation", "don't stop-me now!", []string{"don", "t", "stop", "me", "now"}},
		{"non ascii breaks runs", "café au lait", []string{"caf", "au", "lait"}},
		{"only symbols", "1234 !!", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.input))
		})
	}
}

func TestFromText(t *testing.T) {
	c := FromText("the cat and the hat", "The end")
	assert.Equal(t, 3, c.Counts["the"])
	assert.Equal(t, 1, c.Counts["hat"])
	assert.Equal(t, 7, c.Words)
	_, ok := c.Counts["dog"]
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "Weird things happen. WEIRD!")
	b := writeFile(t, dir, "b.txt", "weird wired word")
	empty := writeFile(t, dir, "empty.txt", "")

	c, err := Load(context.Background(), []string{a, b, empty}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Counts["weird"])
	assert.Equal(t, 1, c.Counts["wired"])
	assert.Equal(t, 1, c.Counts["happen"])
	assert.Equal(t, 7, c.Words)
	assert.Equal(t, []string{a, b, empty}, c.Sources)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello")

	_, err := Load(context.Background(), []string{a, filepath.Join(dir, "missing.txt")}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_NoSources(t *testing.T) {
	_, err := Load(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestLoad_Cancelled(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, []string{a}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
