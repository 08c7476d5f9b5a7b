// Package board is the external interface: it decodes a
// declarative board-construction record into a BIG, a cell grid, and a
// set of constraints, wires the Latin-square region exclusions every
// N×N puzzle needs as weak links, and exposes the five core operations
// (findSolution, countSolutions, calcTrueCandidates, logicalStep,
// logicalSolve) over the result. Everything below package board
// (bitset through steps) is a pure library with no notion of "a puzzle
// description" or "a log line"; this package is where that ambient
// layer lives: everything a full puzzle needs assembled from the
// smaller per-package pieces below it.
package board
