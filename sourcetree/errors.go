package sourcetree

import "errors"

// ErrLengthMismatch indicates ws does not have one weight per point in
// the decorated kdtree.Tree.
var ErrLengthMismatch = errors.New("sourcetree: weights length does not match tree size")
