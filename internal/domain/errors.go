package domain

import "errors"

// ErrDuplicate is returned by stores when an insert hits a unique index.
var ErrDuplicate = errors.New("duplicate record")
