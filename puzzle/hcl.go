package puzzle

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// hclFile is the decoding schema of an HCL valve description.
type hclFile struct {
	Start  *string    `hcl:"start,optional"`
	Valves []hclValve `hcl:"valve,block"`
}

type hclValve struct {
	Name    string   `hcl:"name,label"`
	Rate    int64    `hcl:"rate"`
	Tunnels []string `hcl:"tunnels,optional"`
}

// ParseHCL decodes an HCL valve description. filename is used in diagnostics
// only. A "start" attribute in the file takes precedence over WithStart.
func ParseHCL(filename string, src []byte, opts ...ParseOption) (*nodetable.Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedHCL, diags.Error())
	}

	var decoded hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedHCL, diags.Error())
	}
	if len(decoded.Valves) == 0 {
		return nil, ErrNoValves
	}

	if decoded.Start != nil {
		opts = append(opts[:len(opts):len(opts)], WithStart(*decoded.Start))
	}
	b := newParseConfig(opts).builder()
	for _, v := range decoded.Valves {
		if err := b.AddNode(v.Name, v.Rate, v.Tunnels...); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}
	return b.Build()
}
