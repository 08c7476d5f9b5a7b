// Package constraint defines the abstract Constraint interface: the one vtable the propagation core (packages propagate,
// search, preprocess) uses to consult arbitrary puzzle-specific rules
// (killer cages, arrows, thermometers, ...) without knowing anything
// about their semantics. The core treats every Constraint as an opaque
// oracle; implementing concrete constraints is explicitly out of scope.
//
// Follows a narrow, stable method-set-over-class-hierarchy shape,
// generalized with the init/clone/release lifecycle a per-board,
// copy-on-write constraint needs.
package constraint
