package test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventsEmptyOk(t *testing.T) {
	test := &testing.T{}
	assert.True(t, AssertForefrontEvents[int](Context(t), test, make(chan int)))
	assert.False(t, test.Failed())
}

func TestEventsOK(t *testing.T) {
	test := &testing.T{}
	events := make(chan int, 1)
	events <- 1
	assert.True(t, AssertForefrontEvents[int](Context(t), test, events, 1))
	assert.False(t, test.Failed())
}

func TestEventsNotExpected(t *testing.T) {
	test := &testing.T{}
	events := make(chan int, 1)
	events <- 1
	assert.False(t, AssertForefrontEvents[int](Context(t), test, events, 2))
	assert.True(t, test.Failed())
}

func TestEventsClosed(t *testing.T) {
	test := &testing.T{}
	events := make(chan int, 1)
	events <- 1
	close(events)
	assert.False(t, AssertForefrontEvents[int](Context(t), test, events, 1, 1))
	assert.True(t, test.Failed())
}

func TestEventsUnexpectedOK(t *testing.T) {
	test := &testing.T{}
	events := make(chan int, 2)
	events <- 1
	events <- 2
	assert.True(t, AssertForefrontEvents[int](Context(t), test, events, 1))
	assert.False(t, test.Failed())
}

func TestEventsUnexpectedFail(t *testing.T) {
	test := &testing.T{}
	events := make(chan int, 2)
	events <- 1
	events <- 2
	assert.False(t, AssertEvents[int](Context(t), test, events, 1))
	assert.True(t, test.Failed())
}

func TestEventsSequence(t *testing.T) {
	test := &testing.T{}
	events := make(chan int, 2)
	events <- 1
	events <- 2
	assert.True(t, AssertEvents[int](Context(t), test, events, 1, 2))
	assert.False(t, test.Failed())
}
