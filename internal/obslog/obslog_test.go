package obslog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNeverReturnsNil(t *testing.T) {
	require.NotNil(t, New(false))
	require.NotNil(t, New(true))
}

func TestErrorsCombinedNilWhenEmpty(t *testing.T) {
	var e Errors
	assert.Nil(t, e.Combined())
	assert.Nil(t, e.First())
}

func TestErrorsAddIgnoresNil(t *testing.T) {
	var e Errors
	e.Add(nil)
	assert.Nil(t, e.Combined())
}

func TestErrorsFirstReturnsEarliestAdded(t *testing.T) {
	var e Errors
	errA := errors.New("a")
	errB := errors.New("b")
	e.Add(errA)
	e.Add(errB)
	assert.Same(t, errA, e.First())
}

func TestErrorsCombinedJoinsAllNonNil(t *testing.T) {
	var e Errors
	errA := errors.New("worker 0 failed")
	errB := errors.New("worker 1 failed")
	e.Add(errA)
	e.Add(nil)
	e.Add(errB)

	combined := e.Combined()
	require.Error(t, combined)
	assert.Contains(t, combined.Error(), "worker 0 failed")
	assert.Contains(t, combined.Error(), "worker 1 failed")
	assert.True(t, errors.Is(combined, errA))
	assert.True(t, errors.Is(combined, errB))
}
