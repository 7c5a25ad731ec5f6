package matrix

import "github.com/pkg/errors"

// Matrix is the common interface of the count tables
type Matrix interface {
	Shape() (uint32, uint32)
	Get(uint32, uint32) uint32
	Set(uint32, uint32, uint32)
	Incr(uint32, uint32, uint32)
	GetRow(uint32) []uint32
}

var (
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	ErrBadShape        = errors.New("matrix: zero dimension not allowed")
)
