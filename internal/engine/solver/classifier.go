package solver

import "strings"

// Classifier pairs a recognizer with a solver for one problem shape.
// Use newClassifier to build one with typed parameters.
type Classifier struct {
	name  string
	match func(query string) (any, bool)
	solve func(params any) (*Result, bool)
}

func newClassifier[P any](name string, match func(string) (P, bool), solve func(P) (*Result, bool)) Classifier {
	return Classifier{
		name: name,
		match: func(query string) (any, bool) {
			return match(query)
		},
		solve: func(params any) (*Result, bool) {
			res, ok := solve(params.(P))
			if !ok {
				return nil, false
			}
			res.Classifier = name
			return res, true
		},
	}
}

// Name returns the classifier's stable identifier.
func (c Classifier) Name() string { return c.name }

// Match reports whether the normalized query has this classifier's shape and
// returns the extracted parameters.
func (c Classifier) Match(query string) (any, bool) { return c.match(query) }

// Solve computes the result for parameters returned by Match. It declines
// with false when the parameters are out of the supported domain.
func (c Classifier) Solve(params any) (*Result, bool) { return c.solve(params) }

// Registry is an ordered, immutable set of classifiers.
type Registry struct {
	classifiers []Classifier
}

// NewRegistry creates a registry that consults classifiers in the given order.
func NewRegistry(classifiers ...Classifier) *Registry {
	cs := make([]Classifier, len(classifiers))
	copy(cs, classifiers)
	return &Registry{classifiers: cs}
}

var defaultRegistry = NewRegistry(
	Arithmetic,
	SquareRoot,
	Exponent,
	Percentage,
	Quadratic,
	ArithmeticSequence,
	GeometricSequence,
	CircleArea,
	SphereVolume,
	Pythagorean,
	Mean,
	Factorial,
)

// DefaultRegistry returns the registry used by Solve.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Names returns classifier names in dispatch order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.classifiers))
	for i, c := range r.classifiers {
		names[i] = c.name
	}
	return names
}

// Lookup finds a classifier by name.
func (r *Registry) Lookup(name string) (Classifier, bool) {
	for _, c := range r.classifiers {
		if c.name == name {
			return c, true
		}
	}
	return Classifier{}, false
}

// Solve dispatches the query to the first classifier whose recognizer
// matches. It returns false when nothing matched or the owning classifier
// declined.
func (r *Registry) Solve(query string) (*Result, bool) {
	q := Normalize(query)
	if q == "" {
		return nil, false
	}

	for _, c := range r.classifiers {
		params, ok := c.match(q)
		if !ok {
			continue
		}
		return c.solve(params)
	}
	return nil, false
}

// Solve runs the default registry.
func Solve(query string) (*Result, bool) {
	return defaultRegistry.Solve(query)
}

// Normalize trims and lower-cases a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
