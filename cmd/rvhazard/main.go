// Package main provides the entry point for rvhazard.
// rvhazard classifies RISC-V instructions and pads read-after-write hazards
// with stalls for pipelines with and without forwarding.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/rvhazard/config"
	"github.com/sarchlab/rvhazard/fetch"
	"github.com/sarchlab/rvhazard/hazard"
	"github.com/sarchlab/rvhazard/loader"
	"github.com/sarchlab/rvhazard/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options are the command line settings layered over the config file.
type options struct {
	configPath  string
	noForwardTo string
	forwardTo   string
	jsonOutput  bool
	listing     bool
	noICache    bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	opts := &options{}

	fs := flag.NewFlagSet("rvhazard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration JSON file")
	fs.StringVar(&opts.noForwardTo, "o-noforward", "", "Result file for the pipeline without forwarding")
	fs.StringVar(&opts.forwardTo, "o-forward", "", "Result file for the pipeline with forwarding")
	fs.BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	fs.BoolVar(&opts.listing, "list", false, "Print numbered listings of both result streams")
	fs.BoolVar(&opts.noICache, "no-icache", false, "Disable instruction fetch replay")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: rvhazard [options] [program.hex]\n")
		_, _ = fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return opts, fs.Args(), nil
}

// loadConfig applies the config file and flag overrides.
func loadConfig(opts *options, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if opts.noForwardTo != "" {
		cfg.NoForwardingOutput = opts.noForwardTo
	}
	if opts.forwardTo != "" {
		cfg.ForwardingOutput = opts.forwardTo
	}
	if opts.noICache {
		cfg.EnableICache = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// replayFetches replays each rewritten stream through a cold L1I.
func replayFetches(cfg *config.Config, result *hazard.Result) *[hazard.NumPolicies]fetch.Statistics {
	if !cfg.EnableICache {
		return nil
	}

	icache := fetch.Config{
		Size:          cfg.ICache.Size,
		Associativity: cfg.ICache.Associativity,
		BlockSize:     cfg.ICache.BlockSize,
		HitLatency:    cfg.ICache.HitLatency,
		MissLatency:   cfg.ICache.MissLatency,
	}

	var stats [hazard.NumPolicies]fetch.Statistics
	for _, p := range hazard.Policies {
		stats[p] = fetch.Replay(icache, cfg.FetchBase, len(result.Stream(p)))
	}
	return &stats
}

// run executes one analyzer invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(opts, rest)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	prog, err := loader.Load(cfg.InputPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return 1
	}

	if opts.verbose {
		_, _ = fmt.Fprintf(stderr, "Loaded: %s\n", prog.Path)
		_, _ = fmt.Fprintf(stderr, "Instructions: %d\n", len(prog.Words))
	}

	result := hazard.AnalyzeWords(prog.Words)

	outputs := [hazard.NumPolicies]string{
		hazard.PolicyNoForwarding: cfg.NoForwardingOutput,
		hazard.PolicyForwarding:   cfg.ForwardingOutput,
	}

	summary := report.Run{
		Input:   prog.Path,
		Result:  result,
		Outputs: outputs,
		Fetch:   replayFetches(cfg, result),
	}

	reporter := report.New(stdout)
	if opts.jsonOutput {
		if err := reporter.WriteJSON(summary); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error writing report: %v\n", err)
			return 1
		}
	} else {
		reporter.PrintRun(summary)
		if opts.listing {
			_, _ = fmt.Fprintln(stdout, "")
			for _, p := range hazard.Policies {
				reporter.PrintListing("Instructions "+p.String(), result.Stream(p))
			}
		}
	}

	for _, p := range hazard.Policies {
		if err := loader.WriteFile(outputs[p], result.Stream(p).Words()); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error writing results: %v\n", err)
			return 1
		}

		if opts.verbose {
			_, _ = fmt.Fprintf(stderr, "Wrote: %s (%d lines)\n", outputs[p], len(result.Stream(p)))
		}
	}

	return 0
}
