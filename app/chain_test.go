package app

import (
	"context"
	"testing"

	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest"
	"github.com/safehold/safehold/x/utils"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	c1 := &safeholdtest.Decorator{}
	c2 := &safeholdtest.Decorator{}
	h := &safeholdtest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		nil,
		c2,
	).WithHandler(h)

	bg := context.Background()
	tx := &safeholdtest.Tx{Msg: &safeholdtest.Msg{RoutePath: "test/chain"}}

	_, err := stack.Check(bg, nil, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(bg, nil, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, h.CallCount())
	assert.Equal(t, []string{"test/chain"}, c2.DeliveredPaths())

	// a panic below the recovery is returned as an error and does
	// not reach the outer decorator as a panic
	stack = ChainDecorators(c1, utils.NewRecovery(), c2).
		WithHandler(safeholdtest.PanicHandler{Value: "boom"})
	_, err = stack.Deliver(bg, nil, tx)
	assert.True(t, errors.ErrPanic.Is(err), "%+v", err)
	assert.Equal(t, 3, c1.CallCount())
	assert.Equal(t, 3, c2.CallCount())
}

func TestChainAppend(t *testing.T) {
	c1 := &safeholdtest.Decorator{}
	c2 := &safeholdtest.Decorator{DeliverErr: errors.ErrHuman}
	h := &safeholdtest.Handler{}

	base := ChainDecorators(c1)
	stack := base.Chain(c2).WithHandler(h)

	_, err := stack.Deliver(context.Background(), nil, &safeholdtest.Tx{})
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, 1, c1.DeliverCallCount())
	assert.Equal(t, 0, h.DeliverCallCount())

	// extending a chain does not modify the original one
	_, err = base.WithHandler(h).Deliver(context.Background(), nil, &safeholdtest.Tx{})
	assert.NoError(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestChainSkipsNil(t *testing.T) {
	var missing *safeholdtest.Decorator
	c := &safeholdtest.Decorator{}
	h := &safeholdtest.Handler{}

	d := ChainDecorators(nil, missing, c)
	assert.Len(t, d.chain, 1)

	_, err := d.WithHandler(h).Check(context.Background(), nil, &safeholdtest.Tx{})
	assert.NoError(t, err)
	assert.Equal(t, 1, c.CallCount())
	assert.Equal(t, 1, h.CallCount())
}
