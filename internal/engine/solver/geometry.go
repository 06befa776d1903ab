package solver

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	radiusPattern      = regexp.MustCompile(`radius\s*=?\s*(\d+)`)
	pythagoreanPattern = regexp.MustCompile(`a\s*=\s*(\d+).*b\s*=\s*(\d+)`)
)

// CircleArea handles "area ... circle ... radius r".
var CircleArea = newClassifier("circle_area", matchCircleArea, solveCircleArea)

// SphereVolume handles "volume ... sphere ... radius r".
var SphereVolume = newClassifier("sphere_volume", matchSphereVolume, solveSphereVolume)

// Pythagorean finds the hypotenuse from "a=.. b=..".
var Pythagorean = newClassifier("pythagorean", matchPythagorean, solvePythagorean)

func matchRadius(q string) (int64, bool) {
	m := radiusPattern.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	return parseInt(m[1])
}

func matchCircleArea(q string) (int64, bool) {
	if !strings.Contains(q, "area") || !strings.Contains(q, "circle") {
		return 0, false
	}
	return matchRadius(q)
}

func matchSphereVolume(q string) (int64, bool) {
	if !strings.Contains(q, "volume") || !strings.Contains(q, "sphere") {
		return 0, false
	}
	return matchRadius(q)
}

func solveCircleArea(radius int64) (*Result, bool) {
	r := float64(radius)
	squared := r * r
	area := math.Pi * squared

	return &Result{
		Expression: fmt.Sprintf("Area of circle with radius %d", radius),
		Result:     fixed4(area),
		Steps: []string{
			"Formula: A = πr²",
			fmt.Sprintf("Given: r = %d", radius),
			fmt.Sprintf("A = π × %d²", radius),
			fmt.Sprintf("A = π × %s", formatNumber(squared)),
			fmt.Sprintf("A = %s × %s", fixed4(math.Pi), formatNumber(squared)),
			fmt.Sprintf("A ≈ %s square units", fixed4(area)),
		},
		Explanation: "The area of a circle is calculated using the formula A = πr², where r is the radius. This formula is derived from calculus and represents the space enclosed by the circle.",
		Speech:      fmt.Sprintf("The area of a circle with radius %d is approximately %s square units", radius, fixed2(area)),
	}, true
}

func solveSphereVolume(radius int64) (*Result, bool) {
	r := float64(radius)
	cubed := r * r * r
	volume := 4.0 / 3.0 * math.Pi * cubed

	return &Result{
		Expression: fmt.Sprintf("Volume of sphere with radius %d", radius),
		Result:     fixed4(volume),
		Steps: []string{
			"Formula: V = (4/3)πr³",
			fmt.Sprintf("Given: r = %d", radius),
			fmt.Sprintf("V = (4/3) × π × %d³", radius),
			fmt.Sprintf("V = (4/3) × π × %s", formatNumber(cubed)),
			fmt.Sprintf("V = %s × %s", fixed4(4.0/3.0*math.Pi), formatNumber(cubed)),
			fmt.Sprintf("V ≈ %s cubic units", fixed4(volume)),
		},
		Explanation: "The volume of a sphere is calculated using V = (4/3)πr³. This three-dimensional measurement represents the space enclosed by the sphere.",
		Speech:      fmt.Sprintf("The volume of a sphere with radius %d is approximately %s cubic units", radius, fixed2(volume)),
	}, true
}

type legs struct {
	a, b int64
}

func matchPythagorean(q string) (legs, bool) {
	hinted := strings.Contains(q, "pythagorean") ||
		(strings.Contains(q, "a") && strings.Contains(q, "b") && strings.Contains(q, "c"))
	if !hinted {
		return legs{}, false
	}
	m := pythagoreanPattern.FindStringSubmatch(q)
	if m == nil {
		return legs{}, false
	}
	a, ok1 := parseInt(m[1])
	b, ok2 := parseInt(m[2])
	if !ok1 || !ok2 {
		return legs{}, false
	}
	return legs{a: a, b: b}, true
}

func solvePythagorean(p legs) (*Result, bool) {
	a, b := float64(p.a), float64(p.b)
	aa, bb := a*a, b*b
	sum := aa + bb
	c := math.Sqrt(sum)

	return &Result{
		Expression: fmt.Sprintf("Pythagorean theorem: a=%d, b=%d", p.a, p.b),
		Result:     "c = " + fixed4(c),
		Steps: []string{
			"Formula: a² + b² = c²",
			fmt.Sprintf("Given: a=%d, b=%d", p.a, p.b),
			fmt.Sprintf("%d² + %d² = c²", p.a, p.b),
			fmt.Sprintf("%s + %s = c²", formatNumber(aa), formatNumber(bb)),
			fmt.Sprintf("%s = c²", formatNumber(sum)),
			"c = √" + formatNumber(sum),
			"c = " + fixed4(c),
		},
		Explanation: "The Pythagorean theorem relates the sides of a right triangle: the square of the hypotenuse equals the sum of squares of the other two sides.",
		Speech:      "Using the Pythagorean theorem, c equals " + fixed2(c),
	}, true
}
