// Package keydir indexes records read from a store by identifier.
// The store itself only scans; lookups, tombstone filtering and
// "latest version wins" live here, on top of ReadAll.
package keydir

import (
	"github.com/cqkv/seqstore/model"
	"github.com/google/btree"
)

// Pos locates a record in the slice returned by ReadAll
type Pos struct {
	Index  int
	Entity model.Entity
}

// Keydir defined the keydir interface
// you can use some other data structure once you implement this interface
type Keydir interface {
	Put(id uint64, pos *Pos) bool
	Get(id uint64) *Pos
	Delete(id uint64) bool
}

type Iterator interface {
	Rewind()
	Next()
	Valid() bool
	Key() uint64
	Value() *Pos
	Close()
}

// Item implement the btree.Item interface
type Item struct {
	id  uint64
	pos *Pos
}

func (i *Item) Less(than btree.Item) bool {
	return i.id < than.(*Item).id
}

// Build indexes records in append order: a later record replaces an
// earlier one with the same identifier, and a tombstoned record removes it.
func Build[P model.Entity](records []P) *BTree {
	bt := NewBTree(defaultDegree)
	for i, rec := range records {
		id := rec.EntityID()
		if rec.IsTombstoned() {
			bt.Delete(id)
			continue
		}
		bt.Put(id, &Pos{Index: i, Entity: rec})
	}
	return bt
}
