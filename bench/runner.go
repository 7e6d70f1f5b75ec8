package bench

import (
	"context"
	"math"
	"strconv"

	"github.com/colorfulnotion/branchcost/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Outcome is the result of one run: a single trial per strategy.
type Outcome struct {
	Config     Config
	Branching  Measurement
	Branchless Measurement
}

// Speedup is the branching time divided by the branchless time. It is +Inf when only
// the branchless time is zero and NaN when both are zero.
func (o *Outcome) Speedup() float64 {
	t1 := float64(o.Branching.Elapsed)
	t2 := float64(o.Branchless.Elapsed)
	if t2 == 0 {
		if t1 == 0 {
			return math.NaN()
		}
		return math.Inf(1)
	}
	return t1 / t2
}

// Consistent reports whether both strategies produced the same total.
func (o *Outcome) Consistent() bool {
	return o.Branching.Sum == o.Branchless.Sum
}

// Runner executes generate -> branching -> branchless for a Config.
type Runner struct {
	cfg    Config
	tracer trace.Tracer
}

type Option func(*Runner)

// WithTracer records one span per stage.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

func NewRunner(cfg Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:    cfg,
		tracer: noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates the config and then runs the stages in order. Spans wrap each stage but
// the elapsed times cover the summation loops only.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	ctx, span := r.tracer.Start(ctx, "run")
	defer span.End()

	log.Debug(log.BenchMonitoring, "generating sample", "config", r.cfg.String())
	_, genSpan := r.tracer.Start(ctx, "generate", trace.WithAttributes(
		attribute.Int("length", r.cfg.Length),
		attribute.String("seed", strconv.FormatUint(r.cfg.Seed, 10)),
	))
	sample, err := Generate(r.cfg.Length, r.cfg.Low, r.cfg.High, r.cfg.Seed)
	genSpan.End()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	log.Trace(log.BenchMonitoring, "stage done", "stage", "generate", "length", len(sample))

	out := &Outcome{Config: r.cfg}

	_, brSpan := r.tracer.Start(ctx, "branching")
	out.Branching = RunBranching(sample, r.cfg.Threshold)
	brSpan.SetAttributes(measurementAttrs(out.Branching)...)
	brSpan.End()
	log.Trace(log.BenchMonitoring, "stage done", "stage", "branching", "sum", out.Branching.Sum, "elapsed", out.Branching.Elapsed)

	_, blSpan := r.tracer.Start(ctx, "branchless")
	out.Branchless = RunBranchless(sample, r.cfg.Threshold)
	blSpan.SetAttributes(measurementAttrs(out.Branchless)...)
	blSpan.End()
	log.Trace(log.BenchMonitoring, "stage done", "stage", "branchless", "sum", out.Branchless.Sum, "elapsed", out.Branchless.Elapsed)

	if !out.Consistent() {
		log.Warn(log.BenchMonitoring, "strategies disagree", "sum1", out.Branching.Sum, "sum2", out.Branchless.Sum)
	}
	span.SetAttributes(attribute.Float64("speedup", finiteOrZero(out.Speedup())))
	return out, nil
}

func measurementAttrs(m Measurement) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("sum", m.Sum),
		attribute.Int64("elapsed_ns", m.Elapsed.Nanoseconds()),
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}
