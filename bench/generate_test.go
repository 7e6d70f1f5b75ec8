package bench

import (
	"errors"
	"math"
	"testing"

	"github.com/colorfulnotion/branchcost/bencherrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(10_000, 0, 100, 1337)
	require.NoError(t, err)
	b, err := Generate(10_000, 0, 100, 1337)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(10_000, 0, 100, 1338)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should give different samples")
}

func TestGenerateRange(t *testing.T) {
	cases := []struct {
		name      string
		low, high int32
	}{
		{"default", 0, 100},
		{"negative", -50, -10},
		{"single value", 7, 7},
		{"full int32", math.MinInt32, math.MaxInt32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Generate(5_000, tc.low, tc.high, 42)
			require.NoError(t, err)
			require.Len(t, s, 5_000)
			for i, v := range s {
				if v < tc.low || v > tc.high {
					t.Fatalf("sample[%d] = %d outside [%d, %d]", i, v, tc.low, tc.high)
				}
			}
		})
	}
}

func TestGenerateHitsBothBounds(t *testing.T) {
	s, err := Generate(10_000, 0, 3, 1)
	require.NoError(t, err)
	seen := map[int32]bool{}
	for _, v := range s {
		seen[v] = true
	}
	assert.Len(t, seen, 4, "inclusive range [0,3] should produce every value")
}

func TestGenerateEmpty(t *testing.T) {
	s, err := Generate(0, 0, 100, 1337)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestGenerateRejectsInvalid(t *testing.T) {
	_, err := Generate(-1, 0, 100, 1)
	assert.True(t, errors.Is(err, bencherrors.ErrCNegativeLength), err)

	_, err = Generate(10, 5, 4, 1)
	assert.True(t, errors.Is(err, bencherrors.ErrCInvalidBounds), err)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Length = 0
	assert.NoError(t, cfg.Validate())

	if math.MaxInt > MaxLength {
		tooLong := uint64(MaxLength) + 1
		cfg.Length = int(tooLong)
		assert.ErrorIs(t, cfg.Validate(), bencherrors.ErrCLengthOverflow)
	}

	cfg = DefaultConfig()
	cfg.Low, cfg.High = 10, 0
	assert.ErrorIs(t, cfg.Validate(), bencherrors.ErrCInvalidBounds)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1_000_000, cfg.Length)
	assert.Equal(t, int32(0), cfg.Low)
	assert.Equal(t, int32(100), cfg.High)
	assert.Equal(t, uint64(1337), cfg.Seed)
	assert.Equal(t, int32(50), cfg.Threshold)
	assert.Equal(t, "length=1000000 range=[0,100] seed=1337 threshold=50", cfg.String())
}
