package bench

import "time"

// Measurement is one accumulator and the time its loop took.
type Measurement struct {
	Sum     int64
	Elapsed time.Duration
}

// SumBranching adds every value strictly below threshold, deciding per element with a
// conditional jump.
func SumBranching(sample Sample, threshold int32) int64 {
	var sum int64
	for _, v := range sample {
		if v < threshold {
			sum += int64(v)
		}
	}
	return sum
}

// SumBranchless computes the same total as SumBranching without control flow in the loop
// body: the sign of v-threshold becomes an all-ones or all-zeros mask.
func SumBranchless(sample Sample, threshold int32) int64 {
	var sum int64
	t := int64(threshold)
	for _, v := range sample {
		x := int64(v)
		mask := (x - t) >> 63 // -1 when x < t, else 0; no overflow for int32 operands
		sum += x & mask
	}
	return sum
}

// RunBranching times one pass of SumBranching.
func RunBranching(sample Sample, threshold int32) Measurement {
	start := time.Now()
	sum := SumBranching(sample, threshold)
	return Measurement{Sum: sum, Elapsed: time.Since(start)}
}

// RunBranchless times one pass of SumBranchless.
func RunBranchless(sample Sample, threshold int32) Measurement {
	start := time.Now()
	sum := SumBranchless(sample, threshold)
	return Measurement{Sum: sum, Elapsed: time.Since(start)}
}
