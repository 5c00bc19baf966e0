package model

import (
	"fmt"

	"github.com/cqkv/seqstore/utils"
)

var (
	_ Entity     = (*Item)(nil)
	_ IDAssigner = (*Item)(nil)
)

/*
item payload, little-endian:
	tombstone(1) | id(8) | contentLen(4) | content(N) | createdAt(8) | price(16)
price is lo | mid | hi | flags, four 32-bit words
*/

const itemFixedSize = 1 + 8 + 4 + 8 + 16

// Item is a general item with free-text content and an exact price
type Item struct {
	ID        uint64
	Tombstone bool
	Content   string
	CreatedAt Ticks
	Price     Decimal
}

func (it *Item) Kind() string { return KindItem }
func (it *Item) EntityID() uint64 { return it.ID }
func (it *Item) IsTombstoned() bool { return it.Tombstone }

func (it *Item) AssignID(seq uint64) error {
	it.ID = seq
	return nil
}

func (it *Item) MarshalBinary() ([]byte, error) {
	w := utils.NewWriter(itemFixedSize + len(it.Content))
	w.Bool(it.Tombstone)
	w.Uint64(it.ID)
	if err := w.String32(it.Content); err != nil {
		return nil, fmt.Errorf("%w: content is %d bytes", ErrFieldTooLong, len(it.Content))
	}
	w.Int64(int64(it.CreatedAt))
	w.Uint32(it.Price.Lo)
	w.Uint32(it.Price.Mid)
	w.Uint32(it.Price.Hi)
	w.Uint32(it.Price.Flags)
	return w.Bytes(), nil
}

func (it *Item) UnmarshalBinary(data []byte) error {
	r := utils.NewReader(data)
	tombstone, err := readTombstone(r)
	if err != nil {
		return corrupt(KindItem, err)
	}

	var v Item
	v.Tombstone = tombstone
	v.ID = r.Uint64()
	v.Content = r.String32()
	v.CreatedAt = Ticks(r.Int64())
	v.Price.Lo = r.Uint32()
	v.Price.Mid = r.Uint32()
	v.Price.Hi = r.Uint32()
	v.Price.Flags = r.Uint32()
	if err = r.Done(); err != nil {
		return corrupt(KindItem, err)
	}
	if err = v.Price.Valid(); err != nil {
		return corrupt(KindItem, err)
	}

	*it = v
	return nil
}
