// Package gnsolver implements the Girvan-Newman betweenness solver: a
// punter that plans a handful of source-to-target goals at setup (from
// its declared futures, or by linking mines pairwise when futures are off
// or none pay off), then each turn advances the highest-betweenness
// segment it does not yet own along whichever goal it can still complete,
// spending an Option when that segment is held by a single enemy, and
// falling back to growing some mine's frontier or a random claim once
// every goal is exhausted.
package gnsolver
