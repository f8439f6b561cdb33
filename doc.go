// Package aoc2022 is the home of a bounded state-space search engine for
// "collect value before time runs out" puzzles on small graphs.
//
// What is in here?
//
//	nodetable/   named nodes, weights, adjacency and 64-bit activation masks
//	explore/     exhaustive search over (node, mask, elapsed) with pluggable
//	             dedup policy and frontier order; returns best value per mask
//	combine/     pairs disjoint masks for the two-agent variant
//	puzzle/      text and HCL valve parsers, part 1 / part 2 solver
//	config/      YAML/JSON run configuration
//	logging/     slog setup and context-carried loggers
//	cmd/valves   the command-line entry point
//	examples/    a runnable two-agent demonstration
//
// Quick ASCII example:
//
//	    AA───BB(13)
//	    │
//	    CC(2)
//
// Starting at AA with a horizon of 30, opening BB at minute 1 is worth
// 13·28, and CC is then opened at minute 4 for 2·25.
//
//	go run ./cmd/valves input.txt
package aoc2022
