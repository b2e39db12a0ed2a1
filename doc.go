// Package statesearch is a generic, domain-agnostic state-space search
// engine: describe a problem as an immutable State with successor
// generation and a goal test, and solve it with one of eight
// interchangeable traversal strategies.
//
// 🚀 What is statesearch?
//
//	A small library that brings together:
//		• A minimal State contract: Key, NextStates, IsEndState (+ optional AttractiveRate)
//		• Traversals: BFS, DFS, randomized DFS, depth-limited DFS,
//		  iterative deepening, and greedy best-first DFS
//		• Ready-made domains: mazes, a grid pursuit game, toy puzzles
//		• A CLI for solving YAML-described maze scenarios
//
// ✨ Why choose statesearch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seeded randomness, reproducible searches
//   - Pure Go engine – no cgo, no hidden global state
//   - Extensible – any type satisfying search.State is searchable
//
// Everything is organized under four subpackages:
//
//	search/  — the engine: State/Node model, Graph, the eight strategies
//	maze/    — rectangular grid mazes with blocked cells and a single exit
//	pursuit/ — a multi-agent grid pursuit game (reach the target, evade pursuers)
//	puzzle/  — tiny example domains (toggle light bulb, modular counter)
//
// Quick example:
//
//	m, _ := maze.New(5, 5, maze.Pos{Row: 4, Col: 4}, nil, maze.Pos{})
//	g, _ := search.New(m)
//	path, err := g.Solve(search.BFS)
//
// See each package's doc.go for strategy guarantees, options, and errors.
package statesearch
