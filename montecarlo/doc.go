// Package montecarlo estimates how likely a punter is to complete a
// journey of rivers before an opponent blocks it, and uses that estimate
// to pick which future to declare at setup.
//
// JourneySuccessProbability replays a journey over gamesCount randomized
// games, each starting at turn 0 with the punter's own moves held back
// until startTurn, replaying enemy turns as weighted-random claims (weighted by edge
// betweenness, so adversaries preferentially grab contested rivers) and
// the punter's own turns via a caller-supplied move function, then reports
// the fraction of replays that complete the journey before an opponent
// claims one of its rivers.
//
// EstimateBestFuture walks the map outward from a mine with
// graph.GenericBFS, simulating the journey to every candidate target and
// comparing its expected reward (targetCost^3 times success probability)
// against the reward of simply playing for the shortest path
// (targetCost^2), tracking the single best candidate seen before a time
// budget runs out.
package montecarlo
