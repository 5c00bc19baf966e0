package seqstore

import (
	"os"

	"github.com/cqkv/seqstore/codec"
	"github.com/cqkv/seqstore/fio"
)

const (
	defaultMaxBatchNum = 10000
	defaultFileMode    = 0644
)

type options struct {
	sink             Sink
	ioManagerCreator func(path string, create bool) (fio.IOManager, error)
	codec            codec.Codec
	fileMode         os.FileMode

	sync        bool
	assignIDs   bool
	maxBatchNum int
}

type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{
		sink:        NopSink,
		codec:       codec.NewCodecImpl(),
		fileMode:    defaultFileMode,
		assignIDs:   true,
		maxBatchNum: defaultMaxBatchNum,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.ioManagerCreator == nil {
		mode := o.fileMode
		o.ioManagerCreator = func(path string, create bool) (fio.IOManager, error) {
			fileIO, err := fio.NewFileIO(path, create, mode)
			if err != nil {
				return nil, err
			}
			return fileIO, nil
		}
	}
	if o.sink == nil {
		o.sink = NopSink
	}
	return o
}

// WithSink sets where the store narrates file creation, header
// transitions and appends
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

func WithIOManagerCreator(fn func(path string, create bool) (fio.IOManager, error)) Option {
	return func(o *options) {
		o.ioManagerCreator = fn
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithSync makes every append fsync the payload before rewriting the
// header, and the header before returning
func WithSync(sync bool) Option {
	return func(o *options) {
		o.sync = sync
	}
}

// WithoutIDAssignment keeps the identifiers callers put on entities
func WithoutIDAssignment() Option {
	return func(o *options) {
		o.assignIDs = false
	}
}

func WithMaxBatchNum(n int) Option {
	return func(o *options) {
		o.maxBatchNum = n
	}
}
