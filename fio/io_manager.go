package fio

import "io"

// IOManager can be custom in options.
// A creator asked to open a missing file without create must return an
// error matching os.ErrNotExist.
type IOManager interface {
	io.ReaderAt
	io.WriterAt
	Size() (int64, error)
	Truncate(size int64) error
	Sync() error
	Close() error
}
