package model

import "fmt"

var (
	ErrCorruptRecord  = addPrefix("corrupt record")
	ErrFieldTooLong   = addPrefix("field too long")
	ErrIDOverflow     = addPrefix("identifier overflows its field width")
	ErrInvalidDecimal = addPrefix("invalid decimal")
)

func addPrefix(errStr string) error {
	return fmt.Errorf("seqstore err: %s", errStr)
}

func corrupt(kind string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorruptRecord, kind, err)
}
