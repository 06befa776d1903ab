package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSolveText(t *testing.T) {
	code, out, _ := runCLI(t, "", "sqrt(144)")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "√144 = 12.0000")
	assert.Contains(t, out, "  1. Find the square root of 144")
}

func TestArgsJoined(t *testing.T) {
	code, out, _ := runCLI(t, "", "20%", "of", "150")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "= 30")
}

func TestSolveJSON(t *testing.T) {
	code, out, _ := runCLI(t, "", "-format", "json", "5^3")
	require.Equal(t, exitOK, code)

	var got map[string]interface{}
	require.NoError(t, sonic.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["matched"])
	result := got["result"].(map[string]interface{})
	assert.Equal(t, "125", result["result"])
	assert.Equal(t, "exponent", result["classifier"])
}

func TestSolveYAML(t *testing.T) {
	code, out, _ := runCLI(t, "", "-format", "yaml", "10!")
	require.Equal(t, exitOK, code)

	var got outcome
	require.NoError(t, yaml.Unmarshal([]byte(strings.TrimPrefix(out, "---\n")), &got))
	assert.True(t, got.Matched)
	require.NotNil(t, got.Result)
	assert.Equal(t, "3628800", got.Result.Result)
}

func TestNoMatchPrintsFallback(t *testing.T) {
	code, out, _ := runCLI(t, "", "weather tomorrow")
	assert.Equal(t, exitNoResult, code)
	assert.Contains(t, out, `I couldn't find results for "weather tomorrow"`)
}

func TestStdinLines(t *testing.T) {
	code, out, _ := runCLI(t, "5^3\n\n10!\n")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "= 125")
	assert.Contains(t, out, "= 3628800")
}

func TestStdinMixedResults(t *testing.T) {
	code, out, _ := runCLI(t, "5^3\nhello\n")
	assert.Equal(t, exitNoResult, code)
	assert.Contains(t, out, "= 125")
	assert.Contains(t, out, `"hello"`)
}

func TestEvaluate(t *testing.T) {
	code, out, _ := runCLI(t, "", "-eval", "(2 + 3) * 4")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "(2 + 3) * 4 = 20\n", out)
}

func TestEvaluateError(t *testing.T) {
	code, out, _ := runCLI(t, "", "-eval", "-format", "json", "1/0")
	assert.Equal(t, exitNoResult, code)

	var got map[string]interface{}
	require.NoError(t, sonic.Unmarshal([]byte(out), &got))
	assert.Equal(t, "division_by_zero", got["kind"])
	assert.Equal(t, false, got["matched"])
}

func TestExamples(t *testing.T) {
	code, out, _ := runCLI(t, "", "-examples")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "sqrt(144)")
	assert.Contains(t, out, "geometry")
}

func TestUsageErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-format", "xml", "1+1")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "format must be one of")

	code, _, _ = runCLI(t, "", "-bogus")
	assert.Equal(t, exitUsage, code)
}
