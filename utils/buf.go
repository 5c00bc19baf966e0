package utils

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	ErrShortBuffer  = errors.New("buffer too short")
	ErrTooLong      = errors.New("field too long for its length prefix")
	ErrTrailingData = errors.New("unexpected trailing bytes")
)

// Writer appends little-endian fields to a growing buffer
type Writer struct {
	buf []byte
}

func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Bool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
		return
	}
	w.buf = append(w.buf, 0)
}

func (w *Writer) Uint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Uint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *Writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

// String16 writes a uint16 length prefix followed by the string bytes
func (w *Writer) String16(s string) error {
	if len(s) > math.MaxUint16 {
		return ErrTooLong
	}
	w.Uint16(uint16(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// String32 writes an int32 length prefix followed by the string bytes
func (w *Writer) String32(s string) error {
	if len(s) > math.MaxInt32 {
		return ErrTooLong
	}
	w.Int32(int32(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// Reader consumes little-endian fields from a fixed buffer.
// It never reads past the end of the buffer; the first short read
// sets a sticky error returned by Err.
type Reader struct {
	buf []byte
	off int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Done reports the sticky error, or ErrTrailingData if bytes are left over
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}
	if r.Remaining() != 0 {
		return ErrTrailingData
	}
	return nil
}

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.Remaining() {
		r.err = ErrShortBuffer
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) Uint8() uint8 {
	b := r.next(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) Uint16() uint16 {
	b := r.next(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) Uint32() uint32 {
	b := r.next(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) Uint64() uint64 {
	b := r.next(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) Int32() int32 {
	return int32(r.Uint32())
}

func (r *Reader) Int64() int64 {
	return int64(r.Uint64())
}

func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

func (r *Reader) String16() string {
	n := r.Uint16()
	if r.err != nil {
		return ""
	}
	return string(r.next(int(n)))
}

func (r *Reader) String32() string {
	n := r.Int32()
	if r.err != nil {
		return ""
	}
	return string(r.next(int(n)))
}
