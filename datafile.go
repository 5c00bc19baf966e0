package seqstore

import (
	"errors"
	"fmt"
	"io"

	"github.com/cqkv/seqstore/codec"
	"github.com/cqkv/seqstore/fio"
	"github.com/cqkv/seqstore/model"
)

// dataFile is the open backing file of a store:
// a header at offset 0 followed by length framed payloads.
type dataFile struct {
	ioManager fio.IOManager
	codec     codec.Codec

	// tail is the offset right after the last counted frame,
	// valid while the header count equals tailCount
	tail      int64
	tailCount int32
}

func openDataFile(ioManager fio.IOManager, codec codec.Codec) *dataFile {
	return &dataFile{
		ioManager: ioManager,
		codec:     codec,
		tailCount: -1,
	}
}

func (df *dataFile) size() (int64, error) {
	return df.ioManager.Size()
}

func (df *dataFile) readHeader() (model.Header, error) {
	var header model.Header

	buf := make([]byte, model.HeaderSize)
	n, err := df.ioManager.ReadAt(buf, 0)
	if n < model.HeaderSize {
		if err == nil || errors.Is(err, io.EOF) {
			return header, fmt.Errorf("%w: %d of %d bytes", ErrTruncatedHeader, n, model.HeaderSize)
		}
		return header, err
	}

	if err = df.codec.UnmarshalHeader(buf, &header); err != nil {
		return header, err
	}
	return header, nil
}

// writeHeader rewrites the header in place without touching the data region
func (df *dataFile) writeHeader(header *model.Header) error {
	data, err := df.codec.MarshalHeader(header)
	if err != nil {
		return err
	}
	_, err = df.ioManager.WriteAt(data, 0)
	return err
}

// walk reads count frames following the header in file order and returns
// the offset after the last one. Payloads are read and handed to fn only
// when fn is not nil.
func (df *dataFile) walk(count int32, fn func(idx int, payload []byte) error) (int64, error) {
	fileSize, err := df.size()
	if err != nil {
		return 0, err
	}

	prefix := make([]byte, df.codec.FramePrefixSize())
	offset := int64(model.HeaderSize)
	for i := 0; i < int(count); i++ {
		if offset+int64(len(prefix)) > fileSize {
			return 0, fmt.Errorf("%w: frame %d: length prefix at offset %d past end of file (%d bytes)",
				ErrCorruptRecord, i, offset, fileSize)
		}
		if _, err = df.ioManager.ReadAt(prefix, offset); err != nil {
			return 0, err
		}
		size, err := df.codec.UnmarshalFrameSize(prefix)
		if err != nil {
			return 0, err
		}
		offset += int64(len(prefix))

		if size > fileSize-offset {
			return 0, fmt.Errorf("%w: frame %d declares %d bytes, %d remain",
				ErrCorruptRecord, i, size, fileSize-offset)
		}

		if fn != nil {
			payload := make([]byte, size)
			if _, err = df.ioManager.ReadAt(payload, offset); err != nil {
				return 0, err
			}
			if err = fn(i, payload); err != nil {
				return 0, err
			}
		}
		offset += size
	}

	df.setTail(count, offset)
	return offset, nil
}

// tailFor returns the end of the count-th frame, walking the length
// prefixes when the cached tail belongs to another count
func (df *dataFile) tailFor(count int32) (int64, error) {
	if df.tailCount == count {
		return df.tail, nil
	}
	return df.walk(count, nil)
}

func (df *dataFile) setTail(count int32, tail int64) {
	df.tailCount = count
	df.tail = tail
}

func (df *dataFile) Sync() error {
	return df.ioManager.Sync()
}

func (df *dataFile) Close() error {
	return df.ioManager.Close()
}
