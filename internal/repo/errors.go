package repo

import "errors"

var (
	// ErrStorage marks any failure of the embedded store: write, read or
	// decoding a stored row.
	ErrStorage  = errors.New("storage fault")
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
