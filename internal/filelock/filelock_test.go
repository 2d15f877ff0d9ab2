package filelock

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock_TryLockWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.lock")

	held := New(path)
	require.NoError(t, held.Lock())

	ok, err := New(path).TryLock()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, held.Unlock())

	other := New(path)
	ok, err = other.TryLock()
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, other.Unlock())
}

func TestForDir_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")

	l, err := ForDir(dir)
	require.NoError(t, err)
	require.NoError(t, l.Lock())
	defer l.Unlock()

	_, err = os.Stat(filepath.Join(dir, LockName))
	assert.NoError(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "report.txt")

	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestLock_SerializesWriters(t *testing.T) {
	dir := t.TempDir()
	counter := filepath.Join(dir, "counter")
	require.NoError(t, os.WriteFile(counter, []byte("0"), 0o644))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l := New(filepath.Join(dir, LockName))
				if err := l.Lock(); err != nil {
					t.Error(err)
					return
				}
				data, _ := os.ReadFile(counter)
				n, _ := strconv.Atoi(string(data))
				_ = WriteFile(counter, []byte(strconv.Itoa(n+1)))
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(counter)
	require.NoError(t, err)
	assert.Equal(t, "50", string(data))
}
