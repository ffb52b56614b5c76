// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/katalvlaran/betapert/internal/config"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// tabular is a command result. JSON and YAML encode the value itself;
// pretty output draws header and rows as a table.
type tabular interface {
	header() []string
	rows() [][]string
}

// footed results add a summary line under the pretty table.
type footed interface {
	footer() []string
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func render(w io.Writer, output string, obj tabular) error {
	switch output {
	case config.OutputJSON:
		return renderJSON(obj, w)
	case config.OutputYAML:
		return renderYAML(obj, w)
	case config.OutputPretty:
		return renderPretty(obj, w)
	}

	return errors.Wrapf(config.ErrUnknownOutput, "%q", output)
}

func renderJSON(obj interface{}, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(obj), "render json")
}

func renderYAML(obj interface{}, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(obj); err != nil {
		return errors.Wrap(err, "render yaml")
	}

	return errors.Wrap(enc.Close(), "render yaml")
}

func renderPretty(obj tabular, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(obj.header())
	table.AppendBulk(obj.rows())
	if f, ok := obj.(footed); ok {
		table.SetFooter(f.footer())
	}
	table.Render()

	return nil
}

// number is a float64 that encodes NaN and ±Inf as JSON null.
// YAML keeps them as .nan and ±.inf.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func numbers(xs []float64) []number {
	out := make([]number, len(xs))
	for i, x := range xs {
		out[i] = number(x)
	}

	return out
}
