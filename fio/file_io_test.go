package fio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileIO_NotExist(t *testing.T) {
	_, err := NewFileIO(filepath.Join(t.TempDir(), "data"), false, 0644)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileIO_WriteAt(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "data"), true, 0644)
	require.NoError(t, err)
	defer fio.Close()

	n, err := fio.WriteAt([]byte("hello"), 0)
	assert.Nil(t, err)
	assert.Equal(t, 5, n)

	n, err = fio.WriteAt([]byte("HE"), 0)
	assert.Nil(t, err)
	assert.Equal(t, 2, n)

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(5), size)
}

func TestFileIO_ReadAt(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "data"), true, 0644)
	require.NoError(t, err)
	defer fio.Close()

	_, err = fio.WriteAt([]byte("hello"), 0)
	require.NoError(t, err)

	buf := make([]byte, 3)
	n, err := fio.ReadAt(buf, 2)
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "llo", string(buf))
}

func TestFileIO_Truncate(t *testing.T) {
	fio, err := NewFileIO(filepath.Join(t.TempDir(), "data"), true, 0644)
	require.NoError(t, err)
	defer fio.Close()

	_, err = fio.WriteAt([]byte("hello world"), 0)
	require.NoError(t, err)
	assert.Nil(t, fio.Truncate(5))
	assert.Nil(t, fio.Sync())

	size, err := fio.Size()
	assert.Nil(t, err)
	assert.Equal(t, int64(5), size)
}

func TestNewFlock(t *testing.T) {
	dir := t.TempDir()
	first := NewFlock(dir)
	ok, err := first.TryLock()
	assert.Nil(t, err)
	assert.True(t, ok)
	defer first.Unlock()

	assert.Equal(t, filepath.Join(dir, flockName), first.Path())
}
