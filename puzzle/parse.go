package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/adrianroos/advent-of-code-2022/config"
	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// Sentinel errors for puzzle input.
var (
	// ErrMalformedLine is returned for a text line that is not a valve description.
	ErrMalformedLine = errors.New("puzzle: malformed line")

	// ErrMalformedHCL is returned when an HCL description fails to parse or decode.
	ErrMalformedHCL = errors.New("puzzle: malformed HCL")

	// ErrNoValves is returned for input without any valve.
	ErrNoValves = errors.New("puzzle: no valves")
)

// ParseOption configures how a description is turned into a Table.
type ParseOption func(*parseConfig)

type parseConfig struct {
	start string
	width int
}

// WithStart names the node reserved as index 0. Default "AA".
func WithStart(name string) ParseOption {
	return func(c *parseConfig) {
		if name != "" {
			c.start = name
		}
	}
}

// WithMaskWidth limits the mask width passed to nodetable.WithMaskWidth.
func WithMaskWidth(bits int) ParseOption {
	return func(c *parseConfig) { c.width = bits }
}

func newParseConfig(opts []ParseOption) parseConfig {
	c := parseConfig{start: config.DefaultStart, width: nodetable.MaxMaskWidth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c parseConfig) builder() *nodetable.Builder {
	return nodetable.NewBuilder(nodetable.WithStart(c.start), nodetable.WithMaskWidth(c.width))
}

var valveLine = regexp.MustCompile(`^Valve (\S+) has flow rate=(\d+); tunnels? leads? to valves? (.+)$`)

// Parse reads the text format from r. Blank lines are skipped; any other line
// must describe exactly one valve.
func Parse(r io.Reader, opts ...ParseOption) (*nodetable.Table, error) {
	c := newParseConfig(opts)
	b := c.builder()

	var (
		scanner = bufio.NewScanner(r)
		lineNo  int
		valves  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		m := valveLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		rate, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rate: %v", ErrMalformedLine, lineNo, err)
		}
		tunnels := strings.Split(m[3], ", ")
		if err := b.AddNode(m[1], rate, tunnels...); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		valves++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read input: %w", err)
	}
	if valves == 0 {
		return nil, ErrNoValves
	}
	return b.Build()
}

// Load reads path and parses it as HCL when its extension is ".hcl",
// otherwise as text.
func Load(path string, opts ...ParseOption) (*nodetable.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("puzzle: read input: %w", err)
		}
		return ParseHCL(path, src, opts...)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: read input: %w", err)
	}
	defer f.Close()
	return Parse(f, opts...)
}
