package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/colorfulnotion/branchcost/bencherrors"
	"github.com/colorfulnotion/branchcost/log"
)

// Report writes the four result lines. Printing both sums keeps both loops observable.
func Report(w io.Writer, o *Outcome) error {
	_, err := fmt.Fprintf(w, "Sum1: %d, Sum2: %d\nBranch-heavy Time: %d ns\nBranch-free Time:  %d ns\nSpeedup:           %sx\n",
		o.Branching.Sum, o.Branchless.Sum,
		o.Branching.Elapsed.Nanoseconds(),
		o.Branchless.Elapsed.Nanoseconds(),
		FormatSpeedup(o.Speedup()),
	)
	return err
}

// FormatSpeedup prints a ratio with 6 significant digits, "inf" or "nan".
func FormatSpeedup(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

type MeasurementReport struct {
	Sum       int64   `json:"sum"`
	ElapsedNs int64   `json:"elapsed_ns"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

type JSONReport struct {
	Generated  string            `json:"generated"`
	Version    string            `json:"version"`
	Config     Config            `json:"config"`
	Branching  MeasurementReport `json:"branching"`
	Branchless MeasurementReport `json:"branchless"`
	// nil when the ratio is not finite
	Speedup    *float64 `json:"speedup,omitempty"`
	Consistent bool     `json:"consistent"`
}

func newMeasurementReport(m Measurement) MeasurementReport {
	return MeasurementReport{
		Sum:       m.Sum,
		ElapsedNs: m.Elapsed.Nanoseconds(),
		ElapsedMs: float64(m.Elapsed.Nanoseconds()) / 1e6,
	}
}

func NewJSONReport(o *Outcome, version string, now time.Time) *JSONReport {
	r := &JSONReport{
		Generated:  now.Format(time.RFC3339),
		Version:    version,
		Config:     o.Config,
		Branching:  newMeasurementReport(o.Branching),
		Branchless: newMeasurementReport(o.Branchless),
		Consistent: o.Consistent(),
	}
	if s := o.Speedup(); !math.IsInf(s, 0) && !math.IsNaN(s) {
		r.Speedup = &s
	}
	return r
}

// TextReport renders the human readable report file.
func TextReport(o *Outcome, version string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Branch Bench Report\nGenerated: %s\nVersion: %s\nConfig: %s\n\n",
		now.Format(time.RFC3339), version, o.Config.String())
	_ = Report(&b, o) // strings.Builder writes never fail
	if !o.Consistent() {
		b.WriteString("\nWARNING: sums differ\n")
	}
	return b.String()
}

// WriteReports writes report_<unix>.json and report_<unix>.txt into dir and returns
// their paths.
func WriteReports(dir string, o *Outcome, version string, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", bencherrors.ErrRReportWrite, err)
	}
	base := fmt.Sprintf("report_%d", now.Unix())

	jsonBytes, err := json.MarshalIndent(NewJSONReport(o, version, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", bencherrors.ErrRReportWrite, err)
	}
	jsonPath := filepath.Join(dir, base+".json")
	if err := os.WriteFile(jsonPath, jsonBytes, 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", bencherrors.ErrRReportWrite, err)
	}

	textPath := filepath.Join(dir, base+".txt")
	if err := os.WriteFile(textPath, []byte(TextReport(o, version, now)), 0644); err != nil {
		return nil, fmt.Errorf("%w: %v", bencherrors.ErrRReportWrite, err)
	}

	log.Info(log.ReportMonitoring, "reports saved", "json", jsonPath, "text", textPath)
	return []string{jsonPath, textPath}, nil
}
