package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDB = ".ftlint/ftlint.db"

func runWordsList(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunWordsList(&buf, testDB))
	return buf.String()
}

func TestWords_RequiresInit(t *testing.T) {
	inTempDir(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, RunWordsAdd(&buf, testDB, []string{"dyno"}), errNotInitialized)
}

func TestWords_AddAndList(t *testing.T) {
	inTempDir(t)
	runInit(t)

	var buf bytes.Buffer
	require.NoError(t, RunWordsAdd(&buf, testDB, []string{"Dyno", "ECU", "dyno"}))
	assert.Equal(t, "added 2 of 3 words\n", buf.String())

	assert.Equal(t, "dyno\necu\n", runWordsList(t))
}

func TestWords_Import(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("words.txt", []byte("Odometer\n\n  throttle  \n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, RunWordsImport(&buf, testDB, "words.txt"))
	assert.Contains(t, buf.String(), "added 2 of 3 words")
	assert.Equal(t, "odometer\nthrottle\n", runWordsList(t))
}

func TestWords_ImportMissingFile(t *testing.T) {
	inTempDir(t)
	runInit(t)
	var buf bytes.Buffer
	assert.ErrorIs(t, RunWordsImport(&buf, testDB, "nope.txt"), os.ErrNotExist)
}
