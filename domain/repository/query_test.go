package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	q := Build(
		WithID(7),
		WithCondition("mode", "ranges"),
		WithOrderDesc("created_at"),
		WithLimit(5),
		WithOffset(10),
	)

	conds := q.Conditions()
	assert.Len(t, conds, 2)
	assert.Equal(t, "id", conds[0].Field())
	assert.Equal(t, int64(7), conds[0].Value())
	assert.Equal(t, "mode = ranges", conds[1].String())

	orders := q.Orders()
	assert.Len(t, orders, 1)
	assert.Equal(t, "created_at", orders[0].Field())
	assert.False(t, orders[0].Ascending())

	assert.Equal(t, 5, q.LimitValue())
	assert.Equal(t, 10, q.OffsetValue())
}

func TestBuild_Empty(t *testing.T) {
	q := Build()

	assert.Empty(t, q.Conditions())
	assert.Empty(t, q.Orders())
	assert.Equal(t, 0, q.LimitValue())
}
