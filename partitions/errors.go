package partitions

import "errors"

var (
	// ErrEmptyBatch indicates a Solve call with nothing to solve.
	ErrEmptyBatch = errors.New("partitions: empty batch")
	// ErrInvalidConfig indicates a Config outside its documented range.
	ErrInvalidConfig = errors.New("partitions: invalid configuration")
)
