package keydir

import (
	"testing"

	"github.com/cqkv/seqstore/model"
	"github.com/stretchr/testify/assert"
)

func TestBTree_Put(t *testing.T) {
	bt := NewBTree(32)

	res := bt.Put(1, &Pos{Index: 0})
	assert.True(t, res)

	res = bt.Put(1, &Pos{Index: 3})
	assert.False(t, res)
	assert.Equal(t, 1, bt.Size())
	assert.Equal(t, 3, bt.Get(1).Index)
}

func TestBTree_Get(t *testing.T) {
	bt := NewBTree(0)
	assert.Nil(t, bt.Get(5))

	bt.Put(5, &Pos{Index: 2})
	pos := bt.Get(5)
	assert.NotNil(t, pos)
	assert.Equal(t, 2, pos.Index)
}

func TestBTree_Delete(t *testing.T) {
	bt := NewBTree(32)
	bt.Put(1, &Pos{})
	assert.True(t, bt.Delete(1))
	assert.False(t, bt.Delete(1))
	assert.Nil(t, bt.Get(1))
	assert.Equal(t, 0, bt.Size())
}

func TestBTree_Iterator(t *testing.T) {
	bt := NewBTree(32)
	for _, id := range []uint64{30, 10, 20} {
		bt.Put(id, &Pos{Index: int(id)})
	}

	iter := bt.Iterator()
	var keys []uint64
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Key())
		assert.Equal(t, int(iter.Key()), iter.Value().Index)
	}
	iter.Close()
	assert.Equal(t, []uint64{10, 20, 30}, keys)

	assert.Nil(t, bt.Close())
	assert.Equal(t, 0, bt.Size())
}

func TestBuild(t *testing.T) {
	records := []*model.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
		{ID: 1, Username: "alice2"},
		{ID: 2, Tombstone: true},
		{ID: 3, Username: "carol"},
	}

	bt := Build(records)
	assert.Equal(t, 2, bt.Size())

	pos := bt.Get(1)
	assert.NotNil(t, pos)
	assert.Equal(t, 2, pos.Index)
	assert.Equal(t, "alice2", pos.Entity.(*model.User).Username)

	assert.Nil(t, bt.Get(2))
	assert.Equal(t, 4, bt.Get(3).Index)
}
