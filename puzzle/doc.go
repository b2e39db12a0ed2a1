// Package puzzle provides two tiny example domains for the search
// engine, useful in tests and as templates for new State
// implementations.
//
// What:
//
//   - LightBulb — a single toggle: off ↔ on, goal = on. The smallest
//     possible searchable domain (two states, one transition each).
//   - ModN — a modular counter: val ← (val + inc) mod n, goal = 0.
//     A one-successor chain that may or may not reach the goal
//     depending on gcd(inc, n).
//
// LightBulb implements search.Rated; ModN deliberately does not,
// exercising the engine's default rate for unrated states.
package puzzle
