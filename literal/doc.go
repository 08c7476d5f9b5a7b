// Package literal implements the variable/literal algebra that every other
// package in this module builds on.
//
// A Variable is a non-negative integer identifying an atomic proposition.
// A Literal is a signed integer: a non-negative value is the positive
// literal of a variable; its bitwise complement (^v) is the negative
// literal of the same variable. This mirrors the classic DIMACS/2-SAT
// encoding used throughout the retrieved SAT-adjacent corpus, adapted here
// to the module's own Variable/Literal types rather than int.
//
// What:
//
//   - Variable, Literal types and conversions (Var, Pos, Neg, Negate).
//   - Sign test (IsPositive) and the four-way polarity selector
//     (PolarityIndex) used to pick one of the implication table's four
//     adjacency maps by the signs of two literals.
package literal
