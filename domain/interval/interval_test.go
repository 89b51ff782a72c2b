package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, start, end uint64) Interval {
	t.Helper()
	iv, err := New(start, end)
	require.NoError(t, err)
	return iv
}

func TestNew(t *testing.T) {
	iv, err := New(3, 8)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), iv.Start())
	assert.Equal(t, uint64(8), iv.End())
	assert.Equal(t, uint64(5), iv.Len())
	assert.False(t, iv.IsEmpty())
	assert.Equal(t, "[3, 8)", iv.String())
}

func TestNew_Inverted(t *testing.T) {
	_, err := New(8, 3)
	assert.ErrorIs(t, err, ErrInverted)
}

func TestNew_Empty(t *testing.T) {
	iv, err := New(4, 4)
	require.NoError(t, err)
	assert.True(t, iv.IsEmpty())
	assert.Equal(t, uint64(0), iv.Len())
}

func TestFromLength(t *testing.T) {
	iv, err := FromLength(79, 14)
	require.NoError(t, err)
	assert.Equal(t, uint64(79), iv.Start())
	assert.Equal(t, uint64(93), iv.End())

	_, err = FromLength(math.MaxUint64-1, 2)
	assert.ErrorIs(t, err, ErrOverflow)

	iv, err = FromLength(math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), iv.End())
}

func TestPoint(t *testing.T) {
	iv, err := Point(13)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), iv.Len())
	assert.True(t, iv.Contains(13))
	assert.False(t, iv.Contains(14))

	_, err = Point(math.MaxUint64)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestInterval_Contains(t *testing.T) {
	iv := mustNew(t, 10, 20)

	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(19))
	assert.False(t, iv.Contains(20))
	assert.False(t, iv.Contains(9))
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", mustNew(t, 0, 5), mustNew(t, 10, 15), false},
		{"touching", mustNew(t, 0, 5), mustNew(t, 5, 10), false},
		{"partial", mustNew(t, 0, 6), mustNew(t, 5, 10), true},
		{"nested", mustNew(t, 0, 20), mustNew(t, 5, 10), true},
		{"empty", mustNew(t, 5, 5), mustNew(t, 0, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_Intersect(t *testing.T) {
	got := mustNew(t, 0, 10).Intersect(mustNew(t, 5, 15))
	assert.Equal(t, mustNew(t, 5, 10), got)

	got = mustNew(t, 0, 5).Intersect(mustNew(t, 10, 15))
	assert.True(t, got.IsEmpty())
}
