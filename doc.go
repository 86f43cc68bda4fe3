// Package breach is the puzzle engine behind a grid-based code-breaching
// minigame — from value types to sequence synthesis, path placement,
// difficulty-tiered filling and an exhaustive verification solver.
//
// 🚀 What is breach?
//
//	A deterministic, dependency-light library that brings together:
//		• Value types: codes, positions, cells, square grids
//		• Sequence chains: randomized target sequences with controlled overlap
//		• Path layout: row/column-alternating solution placement
//		• Grid filling: forgiving, moderate and deceptive strategies
//		• Verification: a capped, multi-sequence backtracking solver
//		• Orchestration: quality-gated generation with a guaranteed fallback
//
// ✨ Why choose breach?
//
//   - Deterministic – every entry point takes a seedable *rand.Rand
//   - Pure computation – no I/O, no goroutines, no hidden shared state
//   - Total – Generate never fails; exhaustion falls back to a trivial puzzle
//   - Verifiable – every invariant is re-checkable via puzzle.Validate
//
// Everything is organized under six subpackages:
//
//	grid/   — Code, Position, Cell, CellKind and the square Grid
//	chain/  — target sequences, overlap chains and prefix-progress matching
//	layout/ — placing a merged code path under the alternation rule
//	fill/   — populating non-path cells per difficulty strategy
//	solver/ — enumerating solutions, par and false starts
//	puzzle/ — difficulty tiers, quality gate, orchestrator and validation
//
// Quick ASCII example (3×3 grid, merged path 1C→BD→55):
//
//	    1C  ..  ..
//	    BD  55  ..
//	    ..  ..  ..
//
//	selection starts in row 0, then alternates column/row moves.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and sentinel errors.
//
//	go get github.com/lowpolyghost/breach
package breach
