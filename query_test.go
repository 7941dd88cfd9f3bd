package vptree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vptree/bitmap"
)

func TestQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q := NewQuery()
		require.NoError(t, q.Err())
		assert.Equal(t, math.MaxInt, q.Limit())
		assert.True(t, math.IsInf(q.Radius(), 1))
		assert.False(t, q.IsExclusive())
		assert.False(t, q.IsSorted())
	})

	t.Run("Constructors", func(t *testing.T) {
		q := KNearest(5)
		assert.Equal(t, 5, q.Limit())
		assert.True(t, math.IsInf(q.Radius(), 1))

		q = WithinRadius(2.5)
		assert.Equal(t, math.MaxInt, q.Limit())
		assert.Equal(t, 2.5, q.Radius())

		q = KNearestWithinRadius(3, 0)
		require.NoError(t, q.Err())
		assert.Equal(t, 3, q.Limit())
		assert.Equal(t, 0.0, q.Radius())
	})

	t.Run("ModifiersCopy", func(t *testing.T) {
		base := KNearest(4)
		sorted := base.Sorted()
		excl := base.Exclusive()
		filtered := base.Filter(bitmap.Of(1))

		assert.False(t, base.IsSorted())
		assert.False(t, base.IsExclusive())
		assert.True(t, sorted.IsSorted())
		assert.True(t, excl.IsExclusive())
		assert.Nil(t, base.allow)
		assert.NotNil(t, filtered.allow)

		wider := base.MaxItems(10).WithinRadius(1)
		assert.Equal(t, 4, base.Limit())
		assert.Equal(t, 10, wider.Limit())
		assert.Equal(t, 1.0, wider.Radius())
	})

	t.Run("Invalid", func(t *testing.T) {
		tests := []struct {
			name string
			q    Query
			want error
		}{
			{"ZeroItems", KNearest(0), &InvalidMaxItemsError{MaxItems: 0}},
			{"NegativeItems", NewQuery().MaxItems(-1), &InvalidMaxItemsError{MaxItems: -1}},
			{"NegativeRadius", WithinRadius(-0.5), &InvalidMaxDistanceError{MaxDistance: -0.5}},
			{"NegativeInfRadius", WithinRadius(math.Inf(-1)), &InvalidMaxDistanceError{MaxDistance: math.Inf(-1)}},
			{"FirstErrorWins", KNearestWithinRadius(0, -1), &InvalidMaxItemsError{MaxItems: 0}},
			{"LaterFixDoesNotClear", KNearest(0).MaxItems(3), &InvalidMaxItemsError{MaxItems: 0}},
			{"ZeroValue", Query{}, &InvalidMaxItemsError{MaxItems: 0}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.q.Err()
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.Equal(t, tt.want, err)
			})
		}

		err := WithinRadius(math.NaN()).Err()
		var distErr *InvalidMaxDistanceError
		require.ErrorAs(t, err, &distErr)
		assert.True(t, math.IsNaN(distErr.MaxDistance))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Query{limit: 3, radius: 1.5, exclusive: true, sorted: false, filtered: false}",
			KNearestWithinRadius(3, 1.5).Exclusive().String())
	})
}
