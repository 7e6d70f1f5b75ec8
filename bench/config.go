package bench

import (
	"fmt"

	"github.com/colorfulnotion/branchcost/bencherrors"
)

// MaxLength bounds the sample length so that n * 2^31 stays below 2^63 and the int64
// accumulators cannot overflow for any int32 input.
const MaxLength = 1 << 32

const (
	DefaultLength    = 1_000_000
	DefaultLow       = 0
	DefaultHigh      = 100
	DefaultSeed      = 1337
	DefaultThreshold = 50
)

// Config holds the parameters of one benchmark run.
type Config struct {
	Length    int    `json:"length"`
	Low       int32  `json:"low"`
	High      int32  `json:"high"`
	Seed      uint64 `json:"seed"`
	Threshold int32  `json:"threshold"`
}

// DefaultConfig returns the fixed parameters the benchmark binary runs with.
func DefaultConfig() Config {
	return Config{
		Length:    DefaultLength,
		Low:       DefaultLow,
		High:      DefaultHigh,
		Seed:      DefaultSeed,
		Threshold: DefaultThreshold,
	}
}

// Validate rejects parameters before any work begins. Length 0 is valid.
func (c Config) Validate() error {
	return validateShape(c.Length, c.Low, c.High)
}

func validateShape(n int, low, high int32) error {
	if n < 0 {
		return fmt.Errorf("%w: length=%d", bencherrors.ErrCNegativeLength, n)
	}
	if uint64(n) > MaxLength {
		return fmt.Errorf("%w: length=%d max=%d", bencherrors.ErrCLengthOverflow, n, uint64(MaxLength))
	}
	if low > high {
		return fmt.Errorf("%w: low=%d high=%d", bencherrors.ErrCInvalidBounds, low, high)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("length=%d range=[%d,%d] seed=%d threshold=%d", c.Length, c.Low, c.High, c.Seed, c.Threshold)
}
