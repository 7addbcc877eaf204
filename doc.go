// Package lambdapunter is the root of a Lambda Punter client: a decision
// engine for the ICFPC 2017 graph-claiming game, plus the graph machinery
// it is built on.
//
// Under the hood, everything is organized into focused subpackages:
//
//	boardmap/   — site/punter ids, the canonical River, Map, Setup, Move, and ClaimedRivers
//	graph/      — the thread-safe site adjacency, generic best-first traversal,
//	              shortest/longest path, and Girvan-Newman betweenness
//	montecarlo/ — journey-success simulation and best-future estimation
//	protocol/   — the JSON request/response wire shapes
//	session/    — the GameState contract and the online/offline drivers
//	solver/     — the trivial baselines and the Girvan-Newman solver
//
// A punter process wires a solver's builder into session.Run (or, for the
// offline harness, session.RunOfflineStep) alongside whatever transport
// reads and writes protocol.Req/protocol.Rep — that transport is
// deliberately outside this module's concern.
package lambdapunter
