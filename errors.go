package seqstore

import (
	"fmt"

	"github.com/cqkv/seqstore/model"
)

var (
	ErrEmptyPath         = addPrefix("the store path is empty")
	ErrNilEntity         = addPrefix("nil entity")
	ErrStoreClosed       = addPrefix("store is closed")
	ErrStoreFull         = addPrefix("record count overflows the header")
	ErrExceedMaxBatchNum = addPrefix("exceed the max batch num")

	ErrTruncatedHeader = addPrefix("truncated header")
	ErrCorruptRecord   = model.ErrCorruptRecord

	ErrDirIsUsing  = addPrefix("directory is using")
	ErrUnknownKind = addPrefix("unknown entity kind")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("seqstore err: %s", errStr)
}
