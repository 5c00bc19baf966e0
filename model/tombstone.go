package model

import (
	"fmt"

	"github.com/cqkv/seqstore/utils"
)

func readTombstone(r *utils.Reader) (bool, error) {
	b := r.Uint8()
	if err := r.Err(); err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("tombstone byte %#02x", b)
}
