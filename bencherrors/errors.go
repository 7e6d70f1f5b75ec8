package bencherrors

import (
	"errors"
	"strings"
)

// Configuration (C) Errors
var (
	ErrCNegativeLength = errors.New("C1|NegativeLength: Sample length must not be negative.")
	ErrCLengthOverflow = errors.New("C2|LengthOverflow: Sample length would let the int64 accumulator overflow.")
	ErrCInvalidBounds  = errors.New("C3|InvalidBounds: Lower bound is greater than the upper bound.")
)

// Report (R) Errors
var (
	ErrRReportWrite = errors.New("R1|ReportWrite: Benchmark report could not be written.")
	ErrRChartWrite  = errors.New("R2|ChartWrite: Benchmark chart could not be written.")
)

// GetErrorName extracts the error name, e.g. "InvalidBounds", from a coded error.
// Wrapped errors are unwrapped down to the first coded sentinel.
func GetErrorName(err error) string {
	if err == nil {
		return "No Error"
	}
	errStr := codedMessage(err)
	if !strings.Contains(errStr, "|") || !strings.Contains(errStr, ":") {
		return errStr
	}
	parts := strings.SplitN(errStr, "|", 2)
	nameParts := strings.SplitN(parts[1], ":", 2)
	return strings.TrimSpace(nameParts[0])
}

func GetErrorNames(errs []error) []string {
	errStrs := make([]string, len(errs))
	for i, err := range errs {
		errStrs[i] = GetErrorName(err)
	}
	return errStrs
}

// GetErrorCode extracts the error code from the error message.
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	errStr := codedMessage(err)
	if !strings.Contains(errStr, "|") {
		return ""
	}
	parts := strings.SplitN(errStr, "|", 2)
	return strings.TrimSpace(parts[0])
}

// GetErrorCodeWithName returns the error code and name in the format "Code_ErrorName".
func GetErrorCodeWithName(err error) string {
	code := GetErrorCode(err)
	name := GetErrorName(err)
	if code == "" || name == "" {
		return ""
	}
	return code + "_" + name
}

// GetErrorDesc extracts the error description from the error message.
func GetErrorDesc(err error) string {
	if err == nil {
		return ""
	}
	errStr := codedMessage(err)
	parts := strings.SplitN(errStr, ":", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

var sentinels = []error{
	ErrCNegativeLength,
	ErrCLengthOverflow,
	ErrCInvalidBounds,
	ErrRReportWrite,
	ErrRChartWrite,
}

func codedMessage(err error) string {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return err.Error()
}
