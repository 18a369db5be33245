package fit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/asymintervals/ain"
)

func TestFromSample(t *testing.T) {
	t.Run("bounds and mean", func(t *testing.T) {
		x, err := FromSample([]float64{1, 2, 3, 4, 10})
		require.NoError(t, err)
		assert.Equal(t, 1.0, x.Lower())
		assert.Equal(t, 10.0, x.Upper())
		assert.InDelta(t, 4.0, x.Expected(), 1e-12)
	})

	t.Run("constant sample collapses", func(t *testing.T) {
		x, err := FromSample([]float64{3, 3, 3})
		require.NoError(t, err)
		assert.True(t, x.IsDegenerate())
		assert.Equal(t, 3.0, x.Expected())
	})

	t.Run("empty sample", func(t *testing.T) {
		_, err := FromSample(nil)
		require.ErrorIs(t, err, ain.ErrValidation)
	})
}

func TestFromSampleRoundTrip(t *testing.T) {
	src := ain.Must(ain.New(0, 10, 3))
	rng := rand.New(rand.NewSource(11))
	xs, err := src.Sample(4000, rng)
	require.NoError(t, err)

	got, err := FromSample(xs)
	require.NoError(t, err)
	assert.InDelta(t, 0, got.Lower(), 0.1)
	assert.InDelta(t, 10, got.Upper(), 0.1)
	assert.InDelta(t, 3, got.Expected(), 0.3)
}

func TestFromQuantiles(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	t.Run("empirical bounds", func(t *testing.T) {
		x, err := FromQuantiles(xs, 0.1, 0.9)
		require.NoError(t, err)
		assert.Equal(t, 10.0, x.Lower())
		assert.Equal(t, 90.0, x.Upper())
		assert.InDelta(t, 50.5, x.Expected(), 1e-9)
	})

	t.Run("mean outside bounds is clamped", func(t *testing.T) {
		x, err := FromQuantiles([]float64{1, 2, 3, 1000}, 0.25, 0.75)
		require.NoError(t, err)
		assert.Equal(t, 1.0, x.Lower())
		assert.Equal(t, 3.0, x.Upper())
		assert.Less(t, x.Expected(), 3.0)
		assert.InDelta(t, 3.0, x.Expected(), 1e-6)
	})

	t.Run("constant data collapses", func(t *testing.T) {
		x, err := FromQuantiles([]float64{5, 5, 5, 5}, 0.1, 0.9)
		require.NoError(t, err)
		assert.True(t, x.IsDegenerate())
	})

	t.Run("too few observations", func(t *testing.T) {
		_, err := FromQuantiles([]float64{1}, 0.1, 0.9)
		require.ErrorIs(t, err, ain.ErrValidation)
	})

	t.Run("bad quantile bounds", func(t *testing.T) {
		for _, b := range [][2]float64{{-0.1, 0.9}, {0.1, 1.1}, {0.9, 0.1}, {0.5, 0.5}} {
			_, err := FromQuantiles(xs, b[0], b[1])
			require.ErrorIs(t, err, ain.ErrRange, "bounds %v", b)
		}
	})
}
