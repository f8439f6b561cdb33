package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/adrianroos/advent-of-code-2022/config"
	"github.com/adrianroos/advent-of-code-2022/logging"
	"github.com/adrianroos/advent-of-code-2022/nodetable"
	"github.com/adrianroos/advent-of-code-2022/puzzle"
)

type rootFlags struct {
	configPath string
	start      string
	horizon    int
	headStart  int
	dedup      string
	frontier   string
	format     string
	logLevel   string
	logFormat  string
	cpuProfile string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "valves [input]",
		Short: "Maximise pressure released from a valve network",
		Long: "valves explores every way of walking a valve network and opening valves\n" +
			"within a time horizon, then prints the best single-agent total (part1)\n" +
			"and the best total for two agents on disjoint valves (part2).",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, &flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "Path to run configuration (YAML/JSON)")
	f.StringVar(&flags.start, "start", config.DefaultStart, "Start valve")
	f.IntVar(&flags.horizon, "horizon", config.DefaultHorizon, "Single-agent time budget")
	f.IntVar(&flags.headStart, "head-start", config.DefaultHeadStart, "Steps taken from the horizon in part2")
	f.StringVar(&flags.dedup, "dedup", "keep-best", "Dedup policy: keep-best or first-seen")
	f.StringVar(&flags.frontier, "frontier", "fifo", "Frontier order: fifo or lifo")
	f.StringVar(&flags.format, "format", "auto", "Input format: auto, text or hcl")
	f.StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")
	f.StringVar(&flags.cpuProfile, "cpuprofile", "", "Write a CPU profile into this directory")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	logger := logging.New("valves")
	ctx := logging.WithLogger(cmd.Context(), logger)

	if flags.cpuProfile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(flags.cpuProfile),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop()
	}

	t, err := readTable(cmd, args, flags.format, puzzle.WithStart(cfg.Start))
	if err != nil {
		return err
	}
	nodes, activatable := t.Reachable(0)
	logger.Debug("network loaded",
		"valves", t.Len(),
		"activatable", t.Activatable(),
		"reachable", nodes,
		"reachable_activatable", activatable,
	)

	ans, err := puzzle.NewSolver(cfg).Solve(ctx, t)
	if err != nil {
		return err
	}
	return ans.Format(cmd.OutOrStdout())
}

// resolveConfig layers defaults, the optional config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("start") {
		cfg.Start = flags.start
	}
	if f.Changed("horizon") {
		cfg.Horizon = flags.horizon
	}
	if f.Changed("head-start") {
		cfg.HeadStart = flags.headStart
	}
	if f.Changed("dedup") {
		cfg.Dedup = flags.dedup
	}
	if f.Changed("frontier") {
		cfg.Frontier = flags.frontier
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	return cfg, cfg.Validate()
}

// readTable loads the network from args[0] or, without arguments, from stdin.
func readTable(cmd *cobra.Command, args []string, format string, opts ...puzzle.ParseOption) (*nodetable.Table, error) {
	switch format {
	case "auto", "text", "hcl":
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	if len(args) == 0 {
		if format == "hcl" {
			src, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			return puzzle.ParseHCL("<stdin>", src, opts...)
		}
		return puzzle.Parse(cmd.InOrStdin(), opts...)
	}

	path := args[0]
	if format == "auto" {
		return puzzle.Load(path, opts...)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if format == "hcl" {
		return puzzle.ParseHCL(path, src, opts...)
	}
	return puzzle.Parse(bytes.NewReader(src), opts...)
}
