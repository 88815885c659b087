package billyfs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/classwork/internal/core/ports/driven"
)

func newFileSystems(t *testing.T) map[string]*FileSystem {
	t.Helper()
	return map[string]*FileSystem{
		"local":  NewLocal(t.TempDir()),
		"memory": NewMemory(),
	}
}

func writeAll(t *testing.T, fsys driven.FileSystem, name string, data []byte) {
	t.Helper()
	w, err := fsys.Create(name)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func readAll(t *testing.T, fsys driven.FileSystem, name string) []byte {
	t.Helper()
	r, err := fsys.Open(name)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return data
}

func TestFileSystem_RoundTrip(t *testing.T) {
	for name, fsys := range newFileSystems(t) {
		t.Run(name, func(t *testing.T) {
			data := []byte("Binary data \x00\x01\x02")
			writeAll(t, fsys, "example.bin", data)

			assert.Equal(t, data, readAll(t, fsys, "example.bin"))
		})
	}
}

func TestFileSystem_CreateTruncates(t *testing.T) {
	for name, fsys := range newFileSystems(t) {
		t.Run(name, func(t *testing.T) {
			writeAll(t, fsys, "example.txt", []byte("a much longer first version"))
			writeAll(t, fsys, "example.txt", []byte("short"))

			assert.Equal(t, "short", string(readAll(t, fsys, "example.txt")))
		})
	}
}

func TestFileSystem_OpenMissing(t *testing.T) {
	for name, fsys := range newFileSystems(t) {
		t.Run(name, func(t *testing.T) {
			r, err := fsys.Open("nonexistent.txt")

			assert.Nil(t, r)
			assert.ErrorIs(t, err, fs.ErrNotExist)
		})
	}
}

func TestFileSystem_ExistsAndRemove(t *testing.T) {
	for name, fsys := range newFileSystems(t) {
		t.Run(name, func(t *testing.T) {
			ok, err := fsys.Exists("example.txt")
			require.NoError(t, err)
			assert.False(t, ok)

			writeAll(t, fsys, "example.txt", []byte("hi"))

			ok, err = fsys.Exists("example.txt")
			require.NoError(t, err)
			assert.True(t, ok)

			require.NoError(t, fsys.Remove("example.txt"))

			ok, err = fsys.Exists("example.txt")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestFileSystem_RemoveMissing(t *testing.T) {
	fsys := NewLocal(t.TempDir())

	err := fsys.Remove("nonexistent.txt")

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewLocal_WritesUnderRoot(t *testing.T) {
	dir := t.TempDir()
	fsys := NewLocal(dir)

	writeAll(t, fsys, "example.txt", []byte("on disk"))

	data, err := os.ReadFile(filepath.Join(dir, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))
	assert.Equal(t, dir, fsys.Root())
}

func TestNewLocal_EmptyDirDefaultsToWorkingDir(t *testing.T) {
	fsys := NewLocal("")

	assert.Equal(t, ".", fsys.Root())
}

func TestUnwrap(t *testing.T) {
	fsys := NewMemory()

	bfs := fsys.Unwrap()
	require.NotNil(t, bfs)

	f, err := bfs.Create("direct.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ok, err := fsys.Exists("direct.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNew(t *testing.T) {
	inner := NewMemory().Unwrap()

	assert.Equal(t, inner, New(inner).Unwrap())
}
