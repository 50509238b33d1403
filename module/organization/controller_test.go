package organization

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-governance/utils/unittest"
)

type calleeFunc func(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error)

func (f calleeFunc) Call(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error) {
	return f(ctx, caller, data, value)
}

func TestController_GenericCall(t *testing.T) {
	orgAddr := unittest.AddressFixture()
	target := unittest.AddressFixture()
	controller := NewController(unittest.Logger(), orgAddr)
	assert.Equal(t, orgAddr, controller.Address())

	var received []byte
	var receivedCaller common.Address
	err := controller.Register(target, calleeFunc(func(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error) {
		receivedCaller = caller
		received = data
		return []byte{0x01}, nil
	}))
	require.NoError(t, err)

	t.Run("delivers to registered callee", func(t *testing.T) {
		ok, ret, err := controller.GenericCall(context.Background(), target, []byte{0xaa, 0xbb}, big.NewInt(0))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte{0x01}, ret)
		assert.Equal(t, []byte{0xaa, 0xbb}, received)
		assert.Equal(t, orgAddr, receivedCaller)
	})

	t.Run("unknown target is an unsuccessful call", func(t *testing.T) {
		ok, ret, err := controller.GenericCall(context.Background(), unittest.AddressFixture(), nil, nil)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, ret)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		err := controller.Register(target, calleeFunc(nil))
		require.Error(t, err)
	})

	t.Run("cancelled context is a transport error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ok, _, err := controller.GenericCall(ctx, target, nil, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})
}

func TestController_RejectedCall(t *testing.T) {
	controller := NewController(unittest.Logger(), unittest.AddressFixture())
	target := unittest.AddressFixture()
	err := controller.Register(target, calleeFunc(func(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error) {
		return nil, fmt.Errorf("revert")
	}))
	require.NoError(t, err)

	ok, ret, err := controller.GenericCall(context.Background(), target, []byte{0x01}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, ret)
}

// Callees may call back into the controller while their call is in flight.
func TestController_ReentrantCall(t *testing.T) {
	controller := NewController(unittest.Logger(), unittest.AddressFixture())
	outer := unittest.AddressFixture()
	inner := unittest.AddressFixture()

	require.NoError(t, controller.Register(inner, calleeFunc(func(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error) {
		return []byte("inner"), nil
	})))
	require.NoError(t, controller.Register(outer, calleeFunc(func(ctx context.Context, caller common.Address, data []byte, value *big.Int) ([]byte, error) {
		ok, ret, err := controller.GenericCall(ctx, inner, data, value)
		if err != nil || !ok {
			return nil, fmt.Errorf("nested call failed")
		}
		return ret, nil
	})))

	ok, ret, err := controller.GenericCall(context.Background(), outer, nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("inner"), ret)
}
