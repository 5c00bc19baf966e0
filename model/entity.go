package model

// Entity is a record kind the sequential store can persist.
// MarshalBinary produces the payload of one frame, UnmarshalBinary
// reconstructs the entity from exactly that payload.
type Entity interface {
	Kind() string
	EntityID() uint64
	IsTombstoned() bool
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}

// IDAssigner is implemented by kinds that accept a store-assigned
// sequential identifier. The store calls AssignID with the new record
// count before the record is written.
type IDAssigner interface {
	AssignID(seq uint64) error
}

const (
	KindItem  = "item"
	KindOrder = "order"
	KindUser  = "user"
)
