package seqstore

import (
	"sync"
)

// WriteBatch queues entities and appends them together on Commit.
// The frames of a batch are written with a single write followed by a
// single header rewrite, so the header counts either none or all of them.
type WriteBatch[T any, P Record[T]] struct {
	mu *sync.Mutex

	store         *Store[T, P]
	maxBatchNum   int
	pendingWrites []P
}

func (s *Store[T, P]) NewWriteBatch() *WriteBatch[T, P] {
	return &WriteBatch[T, P]{
		mu:          new(sync.Mutex),
		store:       s,
		maxBatchNum: s.options.maxBatchNum,
	}
}

func (wb *WriteBatch[T, P]) Put(e P) error {
	if e == nil {
		return ErrNilEntity
	}

	wb.mu.Lock()
	defer wb.mu.Unlock()

	if len(wb.pendingWrites) >= wb.maxBatchNum {
		return ErrExceedMaxBatchNum
	}
	wb.pendingWrites = append(wb.pendingWrites, e)
	return nil
}

func (wb *WriteBatch[T, P]) Len() int {
	wb.mu.Lock()
	defer wb.mu.Unlock()
	return len(wb.pendingWrites)
}

// Commit appends the pending entities in Put order, assigning them
// consecutive identifiers. Pending entities are kept when Commit fails.
func (wb *WriteBatch[T, P]) Commit() error {
	wb.mu.Lock()
	defer wb.mu.Unlock()

	if len(wb.pendingWrites) == 0 {
		return nil
	}

	wb.store.mu.Lock()
	defer wb.store.mu.Unlock()

	if wb.store.closed {
		return ErrStoreClosed
	}
	if err := wb.store.appendEntities(wb.pendingWrites); err != nil {
		return err
	}

	wb.pendingWrites = nil
	return nil
}
