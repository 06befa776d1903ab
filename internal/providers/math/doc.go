// Package math registers the expression evaluator and the problem solver
// with the service registry.
//
// Tools:
//   - math.evaluate: {expression} -> {result, expression}; failures carry {kind}
//   - math.solve: {query} -> {matched, classifier, result, steps, ...}
//   - math.classifiers, math.examples
//   - math.mean, math.median, math.stdev (gonum)
package math
