package puzzle_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianroos/advent-of-code-2022/config"
	"github.com/adrianroos/advent-of-code-2022/explore"
	"github.com/adrianroos/advent-of-code-2022/nodetable"
	"github.com/adrianroos/advent-of-code-2022/puzzle"
)

func loadSample(t *testing.T, name string) *nodetable.Table {
	t.Helper()
	tbl, err := puzzle.Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return tbl
}

func TestParse_Sample(t *testing.T) {
	tbl := loadSample(t, "sample.txt")
	require.Equal(t, 10, tbl.Len())
	assert.Equal(t, "AA", tbl.Name(0))
	assert.Equal(t, 6, tbl.Activatable())

	hh, ok := tbl.Index("HH")
	require.True(t, ok)
	assert.Equal(t, int64(22), tbl.Weight(hh))
	gg, _ := tbl.Index("GG")
	assert.Equal(t, []nodetable.Node{gg}, tbl.Adjacent(hh))
}

func TestParse_TextAndHCLAgree(t *testing.T) {
	text := loadSample(t, "sample.txt")
	hcl := loadSample(t, "sample.hcl")
	require.Equal(t, text.Len(), hcl.Len())
	for i := 0; i < text.Len(); i++ {
		if diff := cmp.Diff(text.Node(i), hcl.Node(i)); diff != "" {
			t.Errorf("node %d differs (-text +hcl):\n%s", i, diff)
		}
	}
}

func TestParse_StartOption(t *testing.T) {
	src := "Valve AA has flow rate=0; tunnel leads to valve BB\nValve BB has flow rate=5; tunnel leads to valve AA\n"
	tbl, err := puzzle.Parse(strings.NewReader(src), puzzle.WithStart("BB"))
	require.NoError(t, err)
	assert.Equal(t, "BB", tbl.Name(0))
}

func TestParse_Errors(t *testing.T) {
	for name, tc := range map[string]struct {
		src  string
		want error
	}{
		"garbage": {
			src:  "Valve AA has flow rate=0; tunnels lead to valves BB\nthis is not a valve\n",
			want: puzzle.ErrMalformedLine,
		},
		"negative rate": {
			src:  "Valve AA has flow rate=-3; tunnels lead to valves BB\n",
			want: puzzle.ErrMalformedLine,
		},
		"empty": {
			src:  "\n\n",
			want: puzzle.ErrNoValves,
		},
		"dangling tunnel": {
			src:  "Valve AA has flow rate=0; tunnel leads to valve ZZ\n",
			want: nodetable.ErrUnknownNeighbor,
		},
		"duplicate": {
			src:  "Valve AA has flow rate=0; tunnel leads to valve AA\nValve AA has flow rate=1; tunnel leads to valve AA\n",
			want: nodetable.ErrDuplicateNode,
		},
		"no start": {
			src:  "Valve BB has flow rate=0; tunnel leads to valve BB\n",
			want: nodetable.ErrStartNotFound,
		},
	} {
		_, err := puzzle.Parse(strings.NewReader(tc.src))
		require.ErrorIs(t, err, tc.want, name)
	}
}

func TestParse_MaskOverflow(t *testing.T) {
	_, err := puzzle.Load(filepath.Join("testdata", "sample.txt"), puzzle.WithMaskWidth(5))
	require.ErrorIs(t, err, nodetable.ErrMaskOverflow)
}

func TestParseHCL_Errors(t *testing.T) {
	_, err := puzzle.ParseHCL("bad.hcl", []byte(`valve "AA" {`))
	require.ErrorIs(t, err, puzzle.ErrMalformedHCL)

	_, err = puzzle.ParseHCL("norate.hcl", []byte(`valve "AA" { tunnels = [] }`))
	require.ErrorIs(t, err, puzzle.ErrMalformedHCL)

	_, err = puzzle.ParseHCL("empty.hcl", []byte(`start = "AA"`))
	require.ErrorIs(t, err, puzzle.ErrNoValves)
}

func TestParseHCL_FileStartWins(t *testing.T) {
	src := []byte(`
start = "XX"
valve "AA" {
  rate = 1
  tunnels = ["XX"]
}
valve "XX" {
  rate = 0
  tunnels = ["AA"]
}
`)
	tbl, err := puzzle.ParseHCL("start.hcl", src, puzzle.WithStart("AA"))
	require.NoError(t, err)
	assert.Equal(t, "XX", tbl.Name(0))
}

func TestLoad_Missing(t *testing.T) {
	_, err := puzzle.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = puzzle.Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolver_Sample(t *testing.T) {
	for _, file := range []string{"sample.txt", "sample.hcl"} {
		tbl := loadSample(t, file)
		ans, err := puzzle.NewSolver(config.Default()).Solve(context.Background(), tbl)
		require.NoError(t, err, file)
		assert.Equal(t, puzzle.Answer{Part1: 1651, Part2: 1707}, ans, file)
	}
}

func TestSolver_LIFOAgrees(t *testing.T) {
	cfg := config.Default()
	cfg.Frontier = "lifo"
	ans, err := puzzle.NewSolver(cfg).Solve(context.Background(), loadSample(t, "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 1651, Part2: 1707}, ans)
}

func TestSolver_HeadStartConsumesHorizon(t *testing.T) {
	cfg := config.Default()
	cfg.Horizon = 3
	cfg.HeadStart = 3
	ans, err := puzzle.NewSolver(cfg).Solve(context.Background(), loadSample(t, "sample.txt"))
	require.NoError(t, err)
	// part 1: DD or BB opened at t=1 with one step left: max(20, 13)·1
	assert.Equal(t, int64(20), ans.Part1)
	// part 2: horizon 0 leaves only the empty mask
	assert.Equal(t, int64(0), ans.Part2)
}

func TestSolver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := puzzle.NewSolver(config.Default()).Solve(ctx, loadSample(t, "sample.txt"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolver_NilTable(t *testing.T) {
	_, err := puzzle.NewSolver(config.Default()).Part1(context.Background(), nil)
	require.ErrorIs(t, err, explore.ErrTableNil)
}

func TestAnswer_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, puzzle.Answer{Part1: 1651, Part2: 1707}.Format(&buf))
	assert.Equal(t, "part1: 1651\npart2: 1707\n", buf.String())
}
