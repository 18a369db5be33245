package ain

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	x := Must(New(0, 10, 2))

	data, err := sonic.Marshal(x)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lower":0,"upper":10,"expected":2}`, string(data))

	var back AIN
	require.NoError(t, sonic.Unmarshal(data, &back))
	assert.True(t, back.Equal(x))
	assert.InDelta(t, x.Alpha(), back.Alpha(), 1e-12)
}

func TestUnmarshalDefaultsToMidpoint(t *testing.T) {
	var x AIN
	require.NoError(t, sonic.Unmarshal([]byte(`{"lower":0,"upper":10}`), &x))
	assert.Equal(t, 5.0, x.Expected())
}

func TestUnmarshalRejectsInvalid(t *testing.T) {
	var x AIN

	err := x.UnmarshalJSON([]byte(`{"lower":5,"upper":1}`))
	require.ErrorIs(t, err, ErrValidation)

	err = sonic.Unmarshal([]byte(`{"lower":`), &x)
	require.Error(t, err)
}

func TestSlice(t *testing.T) {
	x := Must(New(1, 3, 2))
	assert.Equal(t, [3]float64{1, 3, 2}, x.Slice())
}

func TestFromSlice(t *testing.T) {
	t.Run("three values", func(t *testing.T) {
		x, err := FromSlice([]float64{1, 3, 2})
		require.NoError(t, err)
		assertAIN(t, x, 1, 3, 2)
	})

	t.Run("two values pick the midpoint", func(t *testing.T) {
		x, err := FromSlice([]float64{2, 6})
		require.NoError(t, err)
		assertAIN(t, x, 2, 6, 4)
	})

	t.Run("wrong lengths", func(t *testing.T) {
		for _, vals := range [][]float64{nil, {1}, {1, 2, 3, 4}} {
			_, err := FromSlice(vals)
			require.ErrorIs(t, err, ErrValidation)
		}
	})
}
