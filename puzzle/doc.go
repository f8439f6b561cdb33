// Package puzzle turns valve descriptions into a nodetable.Table and answers
// both parts of the valve puzzle with the explore and combine packages.
//
// Input formats
//
//	Text, one valve per line:
//
//	    Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	    Valve HH has flow rate=22; tunnel leads to valve GG
//
//	HCL:
//
//	    start = "AA"
//	    valve "AA" {
//	      rate    = 0
//	      tunnels = ["DD", "II", "BB"]
//	    }
//
// Load picks the format from the file extension (".hcl" or anything else for
// text). Malformed input is fatal and is reported before any search runs.
//
// Solving
//
//	Part 1: best single-agent value within the configured horizon.
//	Part 2: explore once with horizon - head_start, then combine two agents
//	over disjoint masks.
//
// Solver.Solve runs both parts concurrently and returns the first error.
package puzzle
