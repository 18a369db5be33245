package ain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	t.Run("closed form", func(t *testing.T) {
		got, err := Must(New(1, 10, 4)).Log()
		require.NoError(t, err)
		assertAIN(t, got, 0, 2.302585092994046, 1.2034101812988414)
	})

	t.Run("degenerate collapses pointwise", func(t *testing.T) {
		got, err := Must(New(math.E, math.E, math.E)).Log()
		require.NoError(t, err)
		assertAIN(t, got, 1, 1, 1)
	})

	t.Run("lower bound at zero", func(t *testing.T) {
		_, err := Must(New(0, 10, 4)).Log()
		require.ErrorIs(t, err, ErrDomain)
	})

	t.Run("negative lower bound", func(t *testing.T) {
		_, err := Must(New(-1, 10, 4)).Log()
		require.ErrorIs(t, err, ErrDomain)
	})
}

func TestLogBases(t *testing.T) {
	x := Must(New(1, 10, 4))

	got2, err := x.Log2()
	require.NoError(t, err)
	assertAIN(t, got2, 0, 3.3219280948873626, 1.7361539007151268)

	got10, err := x.Log10()
	require.NoError(t, err)
	assertAIN(t, got10, 0, 1, 0.5226344012042786)
}

func TestExp(t *testing.T) {
	t.Run("closed form", func(t *testing.T) {
		got, err := Must(New(0, 2, 0.5)).Exp()
		require.NoError(t, err)
		assertAIN(t, got, 1, 7.38905609893065, 1.929804377421946)
	})

	t.Run("degenerate input", func(t *testing.T) {
		_, err := Must(New(1, 1, 1)).Exp()
		require.ErrorIs(t, err, ErrDomain)
	})
}

func TestSin(t *testing.T) {
	t.Run("monotonic stretch", func(t *testing.T) {
		got, err := Must(New(0, 1, 0.3)).Sin()
		require.NoError(t, err)
		assertAIN(t, got, 0, 0.8414709848078965, 0.28208665153154777)
	})

	t.Run("interior peak and trough", func(t *testing.T) {
		got, err := Must(New(0, 7, 3)).Sin()
		require.NoError(t, err)
		assertAIN(t, got, -1, 1, 0.19220032365611162)
	})

	t.Run("degenerate collapses pointwise", func(t *testing.T) {
		got, err := Must(New(2, 2, 2)).Sin()
		require.NoError(t, err)
		assertAIN(t, got, math.Sin(2), math.Sin(2), math.Sin(2))
	})
}

func TestCos(t *testing.T) {
	t.Run("interior peak and trough", func(t *testing.T) {
		got, err := Must(New(0, 7, 3)).Cos()
		require.NoError(t, err)
		assertAIN(t, got, -1, 1, 0.08215142196295443)
	})

	t.Run("decreasing stretch swaps endpoint images", func(t *testing.T) {
		got, err := Must(New(0.5, 1, 0.7)).Cos()
		require.NoError(t, err)
		assertAIN(t, got, 0.5403023058681398, 0.8775825618903728, 0.7573808426607381)
	})
}

func TestTan(t *testing.T) {
	t.Run("closed form", func(t *testing.T) {
		got, err := Must(New(-0.5, 0.5, 0.1)).Tan()
		require.NoError(t, err)
		assertAIN(t, got, -0.5463024898437905, 0.5463024898437905, 0.10464657068373945)
	})

	t.Run("asymptote inside interval", func(t *testing.T) {
		_, err := Must(New(0, 2, 1)).Tan()
		require.ErrorIs(t, err, ErrDomain)
	})

	t.Run("asymptote touching bound", func(t *testing.T) {
		_, err := Must(New(math.Pi/2, 2, 1.7)).Tan()
		require.ErrorIs(t, err, ErrDomain)
	})

	t.Run("between asymptotes", func(t *testing.T) {
		got, err := Must(New(3, 4, 3.5)).Tan()
		require.NoError(t, err)
		assert.InDelta(t, math.Tan(3), got.Lower(), 1e-9)
		assert.InDelta(t, math.Tan(4), got.Upper(), 1e-9)
	})
}

func TestRpow(t *testing.T) {
	t.Run("base two", func(t *testing.T) {
		got, err := Rpow(2, Must(New(1, 3, 2)))
		require.NoError(t, err)
		assertAIN(t, got, 2, 8, 4.328085122666891)
	})

	t.Run("base below one flips bounds", func(t *testing.T) {
		got, err := Rpow(0.5, Must(New(1, 3, 2)))
		require.NoError(t, err)
		assertAIN(t, got, 0.125, 0.5, 0.27050532016668066)
	})

	t.Run("degenerate exponent", func(t *testing.T) {
		got, err := Rpow(2, Must(New(3, 3, 3)))
		require.NoError(t, err)
		assertAIN(t, got, 8, 8, 8)
	})

	t.Run("invalid bases", func(t *testing.T) {
		x := Must(New(1, 3, 2))
		for _, base := range []float64{0, 1, -2} {
			_, err := Rpow(base, x)
			require.ErrorIs(t, err, ErrDomain, "base %g", base)
		}
	})
}
