package keydir

import (
	"sync"

	"github.com/google/btree"
)

var _ Keydir = (*BTree)(nil)

const defaultDegree = 32

// BTree implement the keydir
type BTree struct {
	tree *btree.BTree
	lock *sync.RWMutex
}

func NewBTree(degree int) *BTree {
	if degree <= 0 {
		degree = defaultDegree
	}
	return &BTree{
		tree: btree.New(degree),
		lock: &sync.RWMutex{},
	}
}

// Put return true if the id was not present before
func (bt *BTree) Put(id uint64, pos *Pos) bool {
	item := &Item{
		id:  id,
		pos: pos,
	}
	bt.lock.Lock()
	defer bt.lock.Unlock()
	return bt.tree.ReplaceOrInsert(item) == nil
}

func (bt *BTree) Get(id uint64) *Pos {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	btItem := bt.tree.Get(&Item{id: id})
	if btItem == nil {
		return nil
	}
	return btItem.(*Item).pos
}

func (bt *BTree) Delete(id uint64) bool {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	return bt.tree.Delete(&Item{id: id}) != nil
}

func (bt *BTree) Size() int {
	bt.lock.RLock()
	defer bt.lock.RUnlock()
	return bt.tree.Len()
}

func (bt *BTree) Close() error {
	bt.lock.Lock()
	defer bt.lock.Unlock()
	bt.tree.Clear(false)
	return nil
}

// Iterator walks a snapshot of the index in ascending id order
func (bt *BTree) Iterator() Iterator {
	return bt.newBtreeIterator()
}

type btreeIterator struct {
	values []*Item
	curIdx int
}

func (bt *BTree) newBtreeIterator() *btreeIterator {
	bt.lock.RLock()
	defer bt.lock.RUnlock()

	iterator := &btreeIterator{
		values: make([]*Item, 0, bt.tree.Len()),
	}
	bt.tree.Ascend(func(item btree.Item) bool {
		iterator.values = append(iterator.values, item.(*Item))
		return true
	})
	return iterator
}

func (bti *btreeIterator) Rewind() {
	bti.curIdx = 0
}

func (bti *btreeIterator) Next() {
	bti.curIdx++
}

func (bti *btreeIterator) Valid() bool {
	return bti.curIdx < len(bti.values)
}

func (bti *btreeIterator) Key() uint64 {
	return bti.values[bti.curIdx].id
}

func (bti *btreeIterator) Value() *Pos {
	return bti.values[bti.curIdx].pos
}

func (bti *btreeIterator) Close() {
	bti.values = nil
}
