package puzzle

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/adrianroos/advent-of-code-2022/combine"
	"github.com/adrianroos/advent-of-code-2022/config"
	"github.com/adrianroos/advent-of-code-2022/explore"
	"github.com/adrianroos/advent-of-code-2022/logging"
	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// Answer holds the two puzzle answers.
type Answer struct {
	Part1 int64
	Part2 int64
}

// Format writes the answers as "part1: N" and "part2: M" lines.
func (a Answer) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w, "part1: %d\npart2: %d\n", a.Part1, a.Part2)
	return err
}

// Solver answers both parts for a validated configuration.
type Solver struct {
	cfg     config.Config
	printer *message.Printer
}

// NewSolver returns a Solver for cfg. cfg must have passed Validate.
// Searches start at node 0 of the table they are given, which Parse, ParseHCL
// and Load reserve for the configured start.
func NewSolver(cfg config.Config) *Solver {
	return &Solver{cfg: cfg, printer: message.NewPrinter(language.English)}
}

// Part1 returns the best value a single agent collects within the horizon.
func (s *Solver) Part1(ctx context.Context, t *nodetable.Table) (int64, error) {
	res, err := s.search(ctx, t, "part1", s.cfg.Horizon)
	if err != nil {
		return 0, err
	}
	_, best := res.Table.Best()
	return best, nil
}

// Part2 returns the best value two agents collect on disjoint nodes, each
// with the horizon shortened by the head start.
func (s *Solver) Part2(ctx context.Context, t *nodetable.Table) (int64, error) {
	res, err := s.search(ctx, t, "part2", s.cfg.Horizon-s.cfg.HeadStart)
	if err != nil {
		return 0, err
	}
	pair, err := combine.CombineDisjoint(res.Table)
	if err != nil {
		return 0, fmt.Errorf("part2: %w", err)
	}
	logging.FromContext(ctx).Debug("agents combined",
		"part", "part2",
		"agent_a", t.Names(pair.A),
		"agent_b", t.Names(pair.B),
		"value", pair.Value,
	)
	return pair.Value, nil
}

// Solve runs both parts concurrently.
func (s *Solver) Solve(ctx context.Context, t *nodetable.Table) (Answer, error) {
	var ans Answer
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.Part1(gctx, t)
		ans.Part1 = v
		return err
	})
	g.Go(func() error {
		v, err := s.Part2(gctx, t)
		ans.Part2 = v
		return err
	})
	if err := g.Wait(); err != nil {
		return Answer{}, err
	}
	return ans, nil
}

func (s *Solver) search(ctx context.Context, t *nodetable.Table, part string, horizon int) (*explore.Result, error) {
	if t == nil || t.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", part, explore.ErrTableNil)
	}
	logger := logging.FromContext(ctx).With(slog.String("part", part))
	opts := append(s.cfg.ExploreOptions(),
		explore.WithContext(ctx),
		explore.WithLogger(logger),
	)
	// parsers reserve index 0 for the start node
	res, err := explore.Explore(t, t.Name(0), horizon, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", part, err)
	}
	logger.Info("search complete",
		"horizon", horizon,
		"masks", len(res.Table),
		"produced", s.printer.Sprintf("%d", res.Stats.Produced),
		"expanded", s.printer.Sprintf("%d", res.Stats.Expanded),
		"skipped", s.printer.Sprintf("%d", res.Stats.Skipped),
	)
	return res, nil
}
