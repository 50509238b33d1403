package organization

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/onflow/flow-governance/module"
)

// Callee is a target that an organization can deliver generic calls to.
type Callee interface {
	// Call executes data on behalf of caller. An error means the target
	// rejected the call.
	Call(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error)
}

// Controller is an in-process organization. It delivers generic calls to
// registered callees and reports unknown targets or rejected calls as
// unsuccessful, never as errors.
type Controller struct {
	log     zerolog.Logger
	address common.Address

	mu      sync.RWMutex
	callees map[common.Address]Callee
}

var _ module.Organization = (*Controller)(nil)

func NewController(log zerolog.Logger, address common.Address) *Controller {
	return &Controller{
		log:     log.With().Str("component", "organization").Str("organization", address.Hex()).Logger(),
		address: address,
		callees: make(map[common.Address]Callee),
	}
}

// Register makes callee reachable under addr.
// No errors are expected during normal operation.
func (c *Controller) Register(addr common.Address, callee Callee) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.callees[addr]; ok {
		return fmt.Errorf("callee %s already registered", addr.Hex())
	}
	c.callees[addr] = callee
	return nil
}

func (c *Controller) Address() common.Address {
	return c.address
}

// GenericCall delivers data to target. The registry lock is not held while
// the callee runs, so callees may re-enter the controller.
func (c *Controller) GenericCall(ctx context.Context, target common.Address, data []byte, value *big.Int) (bool, []byte, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, fmt.Errorf("could not deliver call to %s: %w", target.Hex(), err)
	}

	c.mu.RLock()
	callee, ok := c.callees[target]
	c.mu.RUnlock()

	lg := c.log.With().
		Str("target", target.Hex()).
		Int("data_size", len(data)).
		Logger()

	if !ok {
		lg.Warn().Msg("generic call to unknown target")
		return false, nil, nil
	}

	ret, err := callee.Call(ctx, c.address, data, value)
	if err != nil {
		lg.Warn().Err(err).Msg("generic call rejected by target")
		return false, nil, nil
	}

	lg.Debug().Int("return_size", len(ret)).Msg("generic call succeeded")
	return true, ret, nil
}
