package model

import "time"

// HeaderSize is the on-disk size of the header block at offset 0
const HeaderSize = 4

// Header is the metadata block of a store file.
// Only Count is persisted.
type Header struct {
	Count int32

	// LastUpdated is the time of the last append made through this
	// process. It is never written to disk.
	LastUpdated time.Time
}
