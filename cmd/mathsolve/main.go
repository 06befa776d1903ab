package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/MathSearch/backend/internal/domain/examples"
	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/expr"
	"github.com/GriffinCanCode/MathSearch/backend/internal/engine/solver"
)

const (
	exitOK       = 0
	exitNoResult = 1
	exitUsage    = 2
)

var errFormat = errors.New("format must be one of text, json, yaml")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// outcome is what a single query produced, in the shape printed by the
// json and yaml formats.
type outcome struct {
	Query   string         `json:"query" yaml:"query"`
	Matched bool           `json:"matched" yaml:"matched"`
	Result  *solver.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Value   *float64       `json:"value,omitempty" yaml:"value,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
	Kind    string         `json:"kind,omitempty" yaml:"kind,omitempty"`
	Speech  string         `json:"speech,omitempty" yaml:"speech,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mathsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "Output format: text, json or yaml")
	evalOnly := fs.Bool("eval", false, "Evaluate queries as plain expressions")
	listExamples := fs.Bool("examples", false, "Print the example catalog and exit")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	switch *format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintln(stderr, errFormat)
		return exitUsage
	}

	if *listExamples {
		return printExamples(stdout, stderr)
	}

	queries := fs.Args()
	if len(queries) > 0 {
		queries = []string{strings.Join(queries, " ")}
	} else {
		var err error
		if queries, err = readLines(stdin); err != nil {
			fmt.Fprintf(stderr, "read input: %v\n", err)
			return exitUsage
		}
	}

	code := exitOK
	for _, q := range queries {
		var out outcome
		if *evalOnly {
			out = evaluate(q)
		} else {
			out = solve(q)
		}
		if !out.Matched {
			code = exitNoResult
		}
		if err := write(stdout, *format, out); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return exitUsage
		}
	}
	return code
}

func solve(q string) outcome {
	res, ok := solver.Solve(q)
	if !ok {
		return outcome{Query: q, Speech: solver.FallbackSpeech(q)}
	}
	return outcome{Query: q, Matched: true, Result: res}
}

func evaluate(q string) outcome {
	v, err := expr.Evaluate(q)
	if err != nil {
		return outcome{Query: q, Error: err.Error(), Kind: expr.Kind(err)}
	}
	return outcome{Query: q, Matched: true, Value: &v}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func write(w io.Writer, format string, out outcome) error {
	switch format {
	case "json":
		data, err := sonic.Marshal(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "---\n%s", data)
		return err
	}
	return writeText(w, out)
}

func writeText(w io.Writer, out outcome) error {
	var b strings.Builder
	switch {
	case out.Result != nil:
		fmt.Fprintf(&b, "%s = %s\n", out.Result.Expression, out.Result.Result)
		for i, step := range out.Result.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
		if out.Result.Explanation != "" {
			fmt.Fprintf(&b, "  %s\n", out.Result.Explanation)
		}
	case out.Value != nil:
		fmt.Fprintf(&b, "%s = %s\n", out.Query, strconv.FormatFloat(*out.Value, 'g', -1, 64))
	case out.Error != "":
		fmt.Fprintf(&b, "%s: error: %s\n", out.Query, out.Error)
	default:
		fmt.Fprintln(&b, out.Speech)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func printExamples(stdout, stderr io.Writer) int {
	catalog, err := examples.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load examples: %v\n", err)
		return exitUsage
	}
	for _, ex := range catalog.All() {
		fmt.Fprintf(stdout, "%-12s %s\n", ex.Category, ex.Query)
	}
	return exitOK
}
