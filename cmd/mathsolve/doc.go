// Command mathsolve runs the MathSearch solver from the command line.
//
// Queries come from the arguments (joined into one query) or, when no
// arguments are given, one per line from stdin:
//
//	mathsolve 'sqrt(144)'
//	echo '20% of 150' | mathsolve -format json
//	mathsolve -eval '(2 + 3) * 4'
//	mathsolve -examples
//
// The exit status is 1 when any query had no result and 2 on usage errors.
package main
