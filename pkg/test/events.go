package test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

const receiveTimeout = 3 * time.Second

func receive[T any](ctx context.Context, ch <-chan T) (T, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, receiveTimeout)
	defer cancel()

	select {
	case <-ctx.Done():
		var zero T
		return zero, false, errors.WithStack(ctx.Err())
	case v, ok := <-ch:
		return v, ok, nil
	}
}

// AssertForefrontEvents asserts that the expected values are the next ones received from the channel.
func AssertForefrontEvents[T any](ctx context.Context, t *testing.T, ch <-chan T, expected ...T) bool {
	ok := true
	for i, e := range expected {
		val, valOK, err := receive(ctx, ch)
		//nolint:testifylint
		if !assert.NoErrorf(t, err, "timeout, index: %d", i) {
			return false
		}
		if !assert.Truef(t, valOK, "channel closed, index: %d", i) {
			return false
		}
		ok = assert.Equal(t, e, val) && ok
	}
	return ok
}

// AssertEvents asserts that the expected values are received from the channel and nothing else is buffered there.
func AssertEvents[T any](ctx context.Context, t *testing.T, ch <-chan T, expected ...T) bool {
	if !AssertForefrontEvents(ctx, t, ch, expected...) {
		return false
	}

	ok := true
	for len(ch) > 0 {
		val, valOK := <-ch
		if !valOK {
			break
		}
		assert.Fail(t, "unexpected event", "%#v", val)
		ok = false
	}
	return ok
}
