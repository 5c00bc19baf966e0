package fio

import "os"

var _ IOManager = (*FileIO)(nil)

// FileIO is the default implement for IOManager
type FileIO struct {
	fd *os.File
}

// NewFileIO opens file for reading and writing at explicit offsets.
// The file is created only when create is true.
func NewFileIO(file string, create bool, perm os.FileMode) (*FileIO, error) {
	flag := os.O_RDWR
	if create {
		flag |= os.O_CREATE
	}
	fd, err := os.OpenFile(file, flag, perm)
	if err != nil {
		return nil, err
	}
	return &FileIO{fd: fd}, nil
}

func (fio *FileIO) ReadAt(buf []byte, offset int64) (int, error) {
	return fio.fd.ReadAt(buf, offset)
}

func (fio *FileIO) WriteAt(data []byte, offset int64) (int, error) {
	return fio.fd.WriteAt(data, offset)
}

func (fio *FileIO) Size() (int64, error) {
	st, err := fio.fd.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

func (fio *FileIO) Truncate(size int64) error {
	return fio.fd.Truncate(size)
}

func (fio *FileIO) Sync() error {
	return fio.fd.Sync()
}

func (fio *FileIO) Close() error {
	return fio.fd.Close()
}
