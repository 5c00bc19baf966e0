package codec

import "github.com/cqkv/seqstore/model"

// Codec encodes the store file header and the frame around each payload.
// Payloads themselves are encoded by the entities.
type Codec interface {
	MarshalHeader(*model.Header) ([]byte, error)

	UnmarshalHeader([]byte, *model.Header) error

	// MarshalFrame return the framed payload and the frame size
	MarshalFrame(payload []byte) ([]byte, int64, error)

	// UnmarshalFrameSize return the payload size declared by a frame prefix
	UnmarshalFrameSize([]byte) (int64, error)

	FramePrefixSize() int
}
