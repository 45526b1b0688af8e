// Package match3 implements the rules of a tile-matching puzzle: run detection,
// swaps, gravity, spawning and cascade resolution on a fixed-size grid.
//
// The package is UI-agnostic and deterministic given a deterministic Rand.
// Callers drive it through Engine.AttemptSwap and consume the returned
// CascadeTrace; the engine never calls back into presentation code.
package match3
