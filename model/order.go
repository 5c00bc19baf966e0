package model

import (
	"fmt"
	"math"

	"github.com/cqkv/seqstore/utils"
)

var (
	_ Entity     = (*Order)(nil)
	_ IDAssigner = (*Order)(nil)
)

/*
order payload, fixed 9 bytes, little-endian:
	tombstone(1) | id(2) | itemId(2) | totalPrice(4, float32)
*/

const OrderSize = 1 + 2 + 2 + 4

// Order is a compact order referencing an item
type Order struct {
	ID         uint16
	Tombstone  bool
	ItemID     uint16
	TotalPrice float32
}

func (o *Order) Kind() string { return KindOrder }
func (o *Order) EntityID() uint64 { return uint64(o.ID) }
func (o *Order) IsTombstoned() bool { return o.Tombstone }

func (o *Order) AssignID(seq uint64) error {
	if seq > math.MaxUint16 {
		return fmt.Errorf("%w: order id %d", ErrIDOverflow, seq)
	}
	o.ID = uint16(seq)
	return nil
}

func (o *Order) MarshalBinary() ([]byte, error) {
	w := utils.NewWriter(OrderSize)
	w.Bool(o.Tombstone)
	w.Uint16(o.ID)
	w.Uint16(o.ItemID)
	w.Float32(o.TotalPrice)
	return w.Bytes(), nil
}

func (o *Order) UnmarshalBinary(data []byte) error {
	if len(data) != OrderSize {
		return corrupt(KindOrder, fmt.Errorf("payload is %d bytes, want %d", len(data), OrderSize))
	}

	r := utils.NewReader(data)
	tombstone, err := readTombstone(r)
	if err != nil {
		return corrupt(KindOrder, err)
	}

	o.Tombstone = tombstone
	o.ID = r.Uint16()
	o.ItemID = r.Uint16()
	o.TotalPrice = r.Float32()
	return nil
}
