// Package solver classifies free-form math queries and produces explained,
// step-by-step results.
//
// A query is trimmed, lower-cased and offered to a fixed, ordered registry of
// classifiers. Each classifier is a recognizer (query to typed parameters)
// paired with a solver (parameters to Result). The first classifier whose
// recognizer matches owns the query: if its solver then declines (factorial
// above 20, an arithmetic expression that fails to evaluate), the query has
// no result and later classifiers are not consulted.
//
// Registry order:
//
//	arithmetic, sqrt, exponent, percentage, quadratic, arithmetic_sequence,
//	geometric_sequence, circle_area, sphere_volume, pythagorean, mean, factorial
//
// Order is part of the contract because patterns overlap; a query made only
// of digits, operators, parentheses and whitespace always takes the
// arithmetic branch.
//
// Exact integer results (powers, sequence terms, factorials) are computed
// with integer arithmetic; roots and geometry use float64.
//
// Every Result carries a Speech sentence for a caller-side text-to-speech
// pass. The package performs no I/O and holds no mutable state.
package solver
