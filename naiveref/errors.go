package naiveref

import "errors"

// ErrLengthMismatch indicates ws does not have one entry per column of X.
var ErrLengthMismatch = errors.New("naiveref: len(ws) does not match X's column count")
