// branch_bench measures the cost of branch misprediction: it sums the values below a
// threshold over a pseudo-random sample once with a conditional branch and once with a
// branch-free mask, then prints both sums, both times and their ratio.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/colorfulnotion/branchcost/bench"
	"github.com/colorfulnotion/branchcost/common"
	"github.com/colorfulnotion/branchcost/log"
	"github.com/colorfulnotion/branchcost/telemetry"
	"github.com/spf13/cobra"
)

// Version can be set at build time via -ldflags "-X main.Version=v1.0.0"
var Version = "dev"

type options struct {
	logLevel     string
	debugModules string
	noColor      bool
	verbose      bool
	reportDir    string
	chartPath    string
	otlpEndpoint string
	version      bool
}

func versionString() string {
	return fmt.Sprintf("%s-%s", Version, common.GetCommitHash())
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opt := &options{}
	rootCmd := &cobra.Command{
		Use:   "branch_bench",
		Short: "Measure the cost of CPU branch misprediction",
		Long: `branch_bench sums the values below 50 in 1,000,000 pseudo-random integers from
[0, 100] (seed 1337) twice: once with an if statement and once with a branch-free
mask. It prints both sums, both elapsed times and the speedup of the branch-free loop.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opt, stdout, stderr)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.StringVar(&opt.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, crit)")
	flags.StringVar(&opt.debugModules, "debug", "", "Comma separated modules with debug logging (bench_mod,report_mod,telemetry_mod,cli_mod)")
	flags.BoolVar(&opt.noColor, "no-color", false, "Disable terminal colors")
	flags.BoolVar(&opt.verbose, "verbose", false, "Print a summary tree to stderr")
	flags.StringVar(&opt.reportDir, "report-dir", "", "Write JSON and text reports into this directory")
	flags.StringVar(&opt.chartPath, "chart", "", "Write an HTML bar chart of both timings to this path")
	flags.StringVar(&opt.otlpEndpoint, "otlp-endpoint", "", "Export stage spans via OTLP/HTTP to host:port")
	flags.BoolVarP(&opt.version, "version", "v", false, "Display version information")
	return rootCmd
}

func run(ctx context.Context, opt *options, stdout, stderr io.Writer) error {
	if opt.version {
		fmt.Fprintf(stdout, "branch_bench %s\n", versionString())
		return nil
	}
	if opt.noColor {
		common.DisableColors()
	}
	if err := log.InitLoggerTo(stderr, opt.logLevel, common.ColorsEnabled()); err != nil {
		return err
	}
	log.EnableModules(opt.debugModules)

	tp, err := telemetry.NewTracerProvider(ctx, opt.otlpEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn(log.TelemetryMonitoring, "span export failed", "err", err)
		}
	}()

	cfg := bench.DefaultConfig()
	log.Debug(log.CLIMonitoring, "starting benchmark", "config", cfg.String(), "version", versionString())

	outcome, err := bench.NewRunner(cfg, bench.WithTracer(tp.Tracer())).Run(ctx)
	if err != nil {
		return err
	}
	if err := bench.Report(stdout, outcome); err != nil {
		return err
	}

	if opt.verbose {
		fmt.Fprint(stderr, bench.SummaryTree(outcome))
	}
	now := time.Now()
	if opt.reportDir != "" {
		if _, err := bench.WriteReports(opt.reportDir, outcome, versionString(), now); err != nil {
			return err
		}
	}
	if opt.chartPath != "" {
		if err := bench.WriteChart(opt.chartPath, outcome); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
