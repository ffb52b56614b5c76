// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/betapert/internal/cli"
	"github.com/katalvlaran/betapert/internal/config"
	"github.com/katalvlaran/betapert/pert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var defaults = config.Config{Lambda: pert.DefaultLambda, Output: config.OutputPretty}

// symmetricArgs is the reference case (0, 5, 10).
var symmetricArgs = []string{"--min", "0", "--mode", "5", "--max", "10"}

// run executes the command tree with args and captures both streams.
func run(t *testing.T, cfg config.Config, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmd(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func with(args ...string) []string {
	return append(append([]string{}, args...), symmetricArgs...)
}

func TestDescribe_JSON(t *testing.T) {
	out, _, err := run(t, defaults, with("describe", "-o", "json")...)
	require.NoError(t, err)

	var got struct {
		Alpha, Beta, Median float64
		Stats               pert.Stats
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.InDelta(t, 3.0, got.Alpha, 1e-12)
	assert.InDelta(t, 3.0, got.Beta, 1e-12)
	assert.InDelta(t, 5.0, got.Median, 1e-9)
	assert.InDelta(t, 5.0, got.Stats.Mean, 1e-12)
	assert.InDelta(t, 25.0/7.0, got.Stats.Var, 1e-12)
}

func TestDescribe_Pretty(t *testing.T) {
	out, _, err := run(t, defaults, with("describe")...)
	require.NoError(t, err)

	for _, s := range []string{"field", "alpha", "beta", "mean", "kurtosis", "3.5714285714285716"} {
		assert.Contains(t, out, s)
	}
}

func TestDescribe_LambdaFromConfig(t *testing.T) {
	cfg := config.Config{Lambda: 2, Output: config.OutputYAML}
	out, _, err := run(t, cfg, with("describe")...)
	require.NoError(t, err)

	var got struct{ Lambda, Alpha float64 }
	require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, 2.0, got.Lambda)
	assert.Equal(t, 2.0, got.Alpha, "alpha = 1 + 2·0.5")

	// The flag wins over the configured default.
	out, _, err = run(t, cfg, with("describe", "--lambda", "8")...)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 5.0, got.Alpha)
}

func TestEval(t *testing.T) {
	out, _, err := run(t, defaults, with("eval", "cdf", "2.5", "7.5", "-o", "json")...)
	require.NoError(t, err)

	var got struct {
		Function string
		Points   []struct{ X, Value float64 }
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "cdf", got.Function)
	require.Len(t, got.Points, 2)
	assert.Equal(t, 2.5, got.Points[0].X)
	assert.InDelta(t, 0.103515625, got.Points[0].Value, 1e-12)
	assert.InDelta(t, 0.896484375, got.Points[1].Value, 1e-12)
}

func TestEval_NonFiniteEncodesAsNull(t *testing.T) {
	out, _, err := run(t, defaults, with("eval", "ppf", "1.5", "-o", "json")...)
	require.NoError(t, err)
	assert.Regexp(t, `"value":\s*null`, out)

	out, _, err = run(t, defaults, with("eval", "logpdf", "0", "-o", "yaml")...)
	require.NoError(t, err)
	assert.Contains(t, out, "-.inf")
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown function", with("eval", "mgf", "1"), `unknown function "mgf"`},
		{"not a number", with("eval", "pdf", "abc"), "argument 1"},
		{"missing arguments", with("eval", "pdf"), "requires at least 2 arg"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, defaults, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSample_SeedIsReproducible(t *testing.T) {
	args := with("sample", "-n", "25", "--seed", "42", "-o", "json")
	first, _, err := run(t, defaults, args...)
	require.NoError(t, err)
	second, _, err := run(t, defaults, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var got struct {
		Seed   *uint64
		Values []float64
	}
	require.NoError(t, json.Unmarshal([]byte(first), &got))
	require.NotNil(t, got.Seed)
	assert.Equal(t, uint64(42), *got.Seed)
	require.Len(t, got.Values, 25)
	for _, v := range got.Values {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 10.0)
	}

	d, err := pert.New(0, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, d.Sample(25, 42), got.Values)
}

func TestSample_Pretty(t *testing.T) {
	out, _, err := run(t, defaults, with("sample", "-n", "3")...)
	require.NoError(t, err)
	assert.Contains(t, out, "mean ± sd")

	_, _, err = run(t, defaults, with("sample", "-n", "-1")...)
	assert.ErrorContains(t, err, "--size")
}

func TestInterval_YAML(t *testing.T) {
	out, _, err := run(t, defaults, with("interval", "--coverage", "0.9", "-o", "yaml")...)
	require.NoError(t, err)

	var got struct {
		Coverage, Low, High float64
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, 0.9, got.Coverage)
	assert.InDelta(t, 1.8925537743777077, got.Low, 1e-9)
	assert.InDelta(t, 8.107446225622299, got.High, 1e-9)

	_, _, err = run(t, defaults, with("interval", "--coverage", "1.2")...)
	assert.ErrorContains(t, err, "--coverage")
}

func TestCI_JSON(t *testing.T) {
	out, _, err := run(t, defaults, with("ci", "--z", "1.96", "-o", "json")...)
	require.NoError(t, err)

	var got struct {
		Z                   *float64
		Coverage, Low, High float64
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	require.NotNil(t, got.Z)
	assert.Equal(t, 1.96, *got.Z)
	assert.Equal(t, pert.Coverage(1.96), got.Coverage)

	d, err := pert.New(0, 5, 10)
	require.NoError(t, err)
	low, high := d.CI(1.96)
	assert.Equal(t, low, got.Low)
	assert.Equal(t, high, got.High)

	_, _, err = run(t, defaults, with("ci", "--z=-1")...)
	assert.ErrorContains(t, err, "--z")
}

func TestRoot_InvalidParameters(t *testing.T) {
	_, _, err := run(t, defaults, "describe", "--min", "5", "--mode", "1", "--max", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, pert.ErrMinAboveMode)
	assert.ErrorIs(t, err, pert.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "build distribution")

	_, _, err = run(t, defaults, "describe", "--min", "0", "--mode", "5")
	assert.ErrorContains(t, err, "--max")

	_, _, err = run(t, defaults, with("describe", "--lambda", "0")...)
	assert.ErrorIs(t, err, pert.ErrLambda)
}

func TestRoot_UnknownOutput(t *testing.T) {
	_, _, err := run(t, defaults, with("describe", "-o", "xml")...)
	assert.ErrorIs(t, err, config.ErrUnknownOutput)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := run(t, defaults, with("describe", "-v")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "distribution built")
	assert.NotContains(t, stdout, "distribution built")

	_, stderr, err = run(t, defaults, with("describe")...)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestEval_BuildsBatchOnce(t *testing.T) {
	_, stderr, err := run(t, defaults, with("eval", "pdf", "5", "-v")...)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "distribution built"), stderr)
	assert.Contains(t, stderr, "batch")
	assert.Contains(t, stderr, "a=[0]")

	_, _, err = run(t, defaults, "eval", "pdf", "5", "--min", "0", "--mode", "5")
	assert.ErrorContains(t, err, "required flag --max not set")

	_, _, err = run(t, defaults, "eval", "pdf", "5", "--min", "5", "--mode", "1", "--max", "10")
	assert.ErrorIs(t, err, pert.ErrMinAboveMode)
	assert.ErrorContains(t, err, "build distribution")
}
