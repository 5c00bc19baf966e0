// Package seqstore persists records of one entity kind per file as a
// header holding the record count followed by length framed payloads.
package seqstore

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/cqkv/seqstore/model"
)

// Record constrains P to be a pointer to T implementing model.Entity,
// so the store can allocate and decode new entities.
type Record[T any] interface {
	*T
	model.Entity
}

// Store is an append-only sequence of records of one entity kind, backed
// by a single file. All operations are serialized by one mutex.
type Store[T any, P Record[T]] struct {
	mu sync.Mutex

	path string
	kind string

	file        *dataFile // nil until the file is known to exist
	lastUpdated time.Time
	closed      bool

	options options
}

// Open returns a store for the file at path. The file is not touched
// until the first operation and is created by the first append.
func Open[T any, P Record[T]](path string, opts ...Option) (*Store[T, P], error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return newStore[T, P](path, newOptions(opts...)), nil
}

func newStore[T any, P Record[T]](path string, options options) *Store[T, P] {
	return &Store[T, P]{
		path:    path,
		kind:    P(new(T)).Kind(),
		options: options,
	}
}

func (s *Store[T, P]) Path() string {
	return s.path
}

func (s *Store[T, P]) Kind() string {
	return s.kind
}

// Append assigns the next sequential identifier to e (when the kind
// accepts one) and appends it to the end of the file.
func (s *Store[T, P]) Append(e P) error {
	if e == nil {
		return ErrNilEntity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	return s.appendEntities([]P{e})
}

// ReadHeader returns the current header. ok is false when the file
// has not been created yet.
func (s *Store[T, P]) ReadHeader() (header model.Header, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return header, false, ErrStoreClosed
	}

	df, err := s.openFile(false)
	if err != nil || df == nil {
		return header, false, err
	}

	header, err = df.readHeader()
	if err != nil {
		return header, false, err
	}
	header.LastUpdated = s.lastUpdated
	return header, true, nil
}

// ReadAll decodes every counted record in append order. A store whose
// file does not exist yet yields an empty slice.
func (s *Store[T, P]) ReadAll() ([]P, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	df, err := s.openFile(false)
	if err != nil {
		return nil, err
	}
	if df == nil {
		return []P{}, nil
	}

	header, err := df.readHeader()
	if err != nil {
		return nil, err
	}

	// the count is untrusted until the frames are walked; never size the
	// result beyond what the file can hold
	fileSize, err := df.size()
	if err != nil {
		return nil, err
	}
	maxFrames := (fileSize - model.HeaderSize) / int64(df.codec.FramePrefixSize())
	records := make([]P, 0, min(int64(header.Count), max(maxFrames, 0)))
	_, err = df.walk(header.Count, func(idx int, payload []byte) error {
		e := P(new(T))
		if err := e.UnmarshalBinary(payload); err != nil {
			return fmt.Errorf("%s record %d: %w", s.kind, idx, err)
		}
		records = append(records, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close releases the backing file. Every later operation fails with
// ErrStoreClosed.
func (s *Store[T, P]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// openFile opens the backing file, creating it only when create is set.
// It returns a nil dataFile when the file does not exist and create is false.
func (s *Store[T, P]) openFile(create bool) (*dataFile, error) {
	if s.file != nil {
		return s.file, nil
	}

	ioManager, err := s.options.ioManagerCreator(s.path, false)
	if errors.Is(err, os.ErrNotExist) {
		if !create {
			return nil, nil
		}
		ioManager, err = s.options.ioManagerCreator(s.path, true)
		if err != nil {
			return nil, err
		}
		s.narratef("created %s", s.path)
	} else if err != nil {
		return nil, err
	}

	s.file = openDataFile(ioManager, s.options.codec)
	return s.file, nil
}

// appendEntities writes entities as consecutive frames after the last
// counted frame, then rewrites the header. The header is written last so
// an interrupted append leaves a header that counts only complete frames.
// Only bytes past the last counted frame, which no header ever counted,
// are cut before the next write; counted frames are never truncated or
// rewritten. The caller must hold the lock.
func (s *Store[T, P]) appendEntities(entities []P) error {
	df, err := s.openFile(true)
	if err != nil {
		return err
	}

	fileSize, err := df.size()
	if err != nil {
		return err
	}
	if fileSize == 0 {
		if err = df.writeHeader(&model.Header{}); err != nil {
			return err
		}
		df.setTail(0, model.HeaderSize)
		fileSize = model.HeaderSize
		s.narratef("%s: wrote empty header", s.path)
	}

	header, err := df.readHeader()
	if err != nil {
		return err
	}
	if int64(header.Count)+int64(len(entities)) > math.MaxInt32 {
		return ErrStoreFull
	}

	var data []byte
	for i, e := range entities {
		seq := header.Count + int32(i) + 1
		if s.options.assignIDs {
			if assigner, ok := any(e).(model.IDAssigner); ok {
				if err = assigner.AssignID(uint64(seq)); err != nil {
					return err
				}
			}
		}

		payload, err := e.MarshalBinary()
		if err != nil {
			return err
		}
		frame, _, err := s.options.codec.MarshalFrame(payload)
		if err != nil {
			return err
		}
		data = append(data, frame...)
	}

	tail, err := df.tailFor(header.Count)
	if err != nil {
		return err
	}

	if fileSize > tail {
		if err = df.ioManager.Truncate(tail); err != nil {
			return err
		}
		s.narratef("%s: dropped %d bytes past the last record", s.path, fileSize-tail)
	}

	if _, err = df.ioManager.WriteAt(data, tail); err != nil {
		return err
	}
	if s.options.sync {
		if err = df.Sync(); err != nil {
			return err
		}
	}

	newHeader := model.Header{Count: header.Count + int32(len(entities))}
	if err = df.writeHeader(&newHeader); err != nil {
		return err
	}
	if s.options.sync {
		if err = df.Sync(); err != nil {
			return err
		}
	}
	df.setTail(newHeader.Count, tail+int64(len(data)))
	s.lastUpdated = time.Now()

	s.narratef("%s: header count %d -> %d", s.path, header.Count, newHeader.Count)
	for _, e := range entities {
		s.narratef("%s: appended %s %d", s.path, e.Kind(), e.EntityID())
	}
	return nil
}

func (s *Store[T, P]) narratef(format string, args ...any) {
	s.options.sink.Narrate(fmt.Sprintf(format, args...))
}
