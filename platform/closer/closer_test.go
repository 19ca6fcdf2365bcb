package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		c.AddNamed(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestCloseAllJoinsErrorsAndRunsOnce(t *testing.T) {
	t.Parallel()

	c := New()
	calls := 0
	boom := errors.New("boom")
	c.AddNamed("failing", func(context.Context) error {
		calls++
		return boom
	})
	c.Add(func(context.Context) error {
		calls++
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "failing")

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestCloseAllStopsOnExpiredContext(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.Add(func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
