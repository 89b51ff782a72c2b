package mapping

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	r, err := NewRule(52, 50, 48)
	require.NoError(t, err)

	assert.Equal(t, span(t, 50, 98), r.Source())
	assert.Equal(t, int64(2), r.Offset())
	assert.Equal(t, span(t, 52, 100), r.Destination())
	assert.Equal(t, "[50, 98) -> [52, 100)", r.String())
}

func TestNewRule_NegativeOffset(t *testing.T) {
	r, err := NewRule(39, 0, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(39), r.Offset())

	r, err = NewRule(0, 15, 37)
	require.NoError(t, err)
	assert.Equal(t, int64(-15), r.Offset())
	assert.Equal(t, span(t, 0, 37), r.Destination())
}

func TestNewRule_Overflow(t *testing.T) {
	_, err := NewRule(0, math.MaxUint64-1, 5)
	assert.ErrorIs(t, err, ErrSourceOverflow)

	_, err = NewRule(math.MaxUint64-1, 0, 5)
	assert.ErrorIs(t, err, ErrDestinationOverflow)

	_, err = NewRule(math.MaxUint64-10, 0, 5)
	assert.ErrorIs(t, err, ErrOffsetOverflow)
}

func TestNewRule_LargestNegativeOffset(t *testing.T) {
	r, err := NewRule(0, 1<<63, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), r.Offset())
	assert.Equal(t, span(t, 0, 1), r.Destination())
}

func TestNewRuleWithOffset(t *testing.T) {
	r, err := NewRuleWithOffset(span(t, 10, 20), -10)
	require.NoError(t, err)
	assert.Equal(t, span(t, 0, 10), r.Destination())

	_, err = NewRuleWithOffset(span(t, 10, 20), -11)
	assert.ErrorIs(t, err, ErrNegativeDestination)

	_, err = NewRuleWithOffset(span(t, 10, math.MaxUint64-1), 2)
	assert.ErrorIs(t, err, ErrDestinationOverflow)
}
