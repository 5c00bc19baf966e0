package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cqkv/seqstore/model"
)

var _ Codec = (*CodecImpl)(nil)

const framePrefixSize = 4

type CodecImpl struct{}

func NewCodecImpl() *CodecImpl {
	return &CodecImpl{}
}

/*
default codec:
	- header: count(4, int32 little-endian) at file offset 0
	- frame: payloadLength(4, int32 little-endian) + payload
	count | payloadLength | payload | payloadLength | payload ...
*/

func (cl *CodecImpl) MarshalHeader(header *model.Header) ([]byte, error) {
	if header.Count < 0 {
		return nil, fmt.Errorf("negative record count %d", header.Count)
	}
	data := make([]byte, model.HeaderSize)
	binary.LittleEndian.PutUint32(data, uint32(header.Count))
	return data, nil
}

func (cl *CodecImpl) UnmarshalHeader(data []byte, header *model.Header) error {
	if len(data) < model.HeaderSize {
		return io.ErrUnexpectedEOF
	}
	count := int32(binary.LittleEndian.Uint32(data[:model.HeaderSize]))
	if count < 0 {
		return fmt.Errorf("%w: negative record count %d", model.ErrCorruptRecord, count)
	}
	header.Count = count
	return nil
}

// MarshalFrame return frame data and the frame size
func (cl *CodecImpl) MarshalFrame(payload []byte) ([]byte, int64, error) {
	if len(payload) > math.MaxInt32 {
		return nil, 0, fmt.Errorf("%w: payload is %d bytes", model.ErrFieldTooLong, len(payload))
	}
	data := make([]byte, framePrefixSize, framePrefixSize+len(payload))
	binary.LittleEndian.PutUint32(data, uint32(len(payload)))
	data = append(data, payload...)
	return data, int64(len(data)), nil
}

func (cl *CodecImpl) UnmarshalFrameSize(prefix []byte) (int64, error) {
	if len(prefix) < framePrefixSize {
		return 0, io.ErrUnexpectedEOF
	}
	size := int32(binary.LittleEndian.Uint32(prefix[:framePrefixSize]))
	if size < 0 {
		return 0, fmt.Errorf("%w: negative frame length %d", model.ErrCorruptRecord, size)
	}
	return int64(size), nil
}

func (cl *CodecImpl) FramePrefixSize() int {
	return framePrefixSize
}
