package model

import (
	"fmt"
	"math"

	"github.com/cqkv/seqstore/utils"
)

var (
	_ Entity     = (*User)(nil)
	_ IDAssigner = (*User)(nil)
)

/*
user payload, little-endian:
	tombstone(1) | id(2) | usernameLen(2) | username(U) | passwordLen(2) | password(P) | role(1)
*/

const userFixedSize = 1 + 2 + 2 + 2 + 1

type Role uint8

const (
	RoleStandard Role = iota
	RoleAdministrator
)

func (r Role) String() string {
	switch r {
	case RoleStandard:
		return "standard"
	case RoleAdministrator:
		return "administrator"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// User is a user account
type User struct {
	ID        uint16
	Tombstone bool
	Username  string
	Password  string
	Role      Role
}

func (u *User) Kind() string { return KindUser }
func (u *User) EntityID() uint64 { return uint64(u.ID) }
func (u *User) IsTombstoned() bool { return u.Tombstone }

func (u *User) AssignID(seq uint64) error {
	if seq > math.MaxUint16 {
		return fmt.Errorf("%w: user id %d", ErrIDOverflow, seq)
	}
	u.ID = uint16(seq)
	return nil
}

func (u *User) MarshalBinary() ([]byte, error) {
	w := utils.NewWriter(userFixedSize + len(u.Username) + len(u.Password))
	w.Bool(u.Tombstone)
	w.Uint16(u.ID)
	if err := w.String16(u.Username); err != nil {
		return nil, fmt.Errorf("%w: username is %d bytes", ErrFieldTooLong, len(u.Username))
	}
	if err := w.String16(u.Password); err != nil {
		return nil, fmt.Errorf("%w: password is %d bytes", ErrFieldTooLong, len(u.Password))
	}
	w.Uint8(uint8(u.Role))
	return w.Bytes(), nil
}

func (u *User) UnmarshalBinary(data []byte) error {
	r := utils.NewReader(data)
	tombstone, err := readTombstone(r)
	if err != nil {
		return corrupt(KindUser, err)
	}

	var v User
	v.Tombstone = tombstone
	v.ID = r.Uint16()
	v.Username = r.String16()
	v.Password = r.String16()
	v.Role = Role(r.Uint8())
	if err = r.Done(); err != nil {
		return corrupt(KindUser, err)
	}
	if v.Role > RoleAdministrator {
		return corrupt(KindUser, fmt.Errorf("unknown role %d", uint8(v.Role)))
	}

	*u = v
	return nil
}
