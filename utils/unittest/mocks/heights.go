package mocks

import (
	"go.uber.org/atomic"

	"github.com/onflow/flow-governance/module"
)

// Heights is a height provider whose height only changes when told to.
type Heights struct {
	height *atomic.Uint64
}

var _ module.HeightProvider = (*Heights)(nil)

func NewHeights(start uint64) *Heights {
	return &Heights{height: atomic.NewUint64(start)}
}

func (h *Heights) CurrentHeight() (uint64, error) {
	return h.height.Load(), nil
}

// Advance increments the height by one and returns the new height.
func (h *Heights) Advance() uint64 {
	return h.height.Inc()
}
