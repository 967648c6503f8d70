// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/rational"
)

// Format selects how a Report is encoded.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json", "yaml" or "yml", case-insensitively.
// The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Variable is one entry of a solution.
type Variable struct {
	Index  int               `json:"index" yaml:"index"`
	Exact  rational.Rational `json:"exact" yaml:"exact"`
	Approx string            `json:"approx" yaml:"approx"`
}

// Report is the machine-readable outcome of one run. Empty sections are
// omitted.
type Report struct {
	RunID       string                `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Input       string                `json:"input,omitempty" yaml:"input,omitempty"`
	Size        int                   `json:"size" yaml:"size"`
	Pivoting    string                `json:"pivoting,omitempty" yaml:"pivoting,omitempty"`
	Scope       string                `json:"scope,omitempty" yaml:"scope,omitempty"`
	Variables   []Variable            `json:"variables,omitempty" yaml:"variables,omitempty"`
	Determinant *rational.Rational    `json:"determinant,omitempty" yaml:"determinant,omitempty"`
	Inverse     [][]rational.Rational `json:"inverse,omitempty" yaml:"inverse,omitempty"`
	Verified    *bool                 `json:"verified,omitempty" yaml:"verified,omitempty"`
}

// Variables numbers xs from 1 and attaches a decimal approximation with the
// given precision (see Decimal).
func Variables(xs []rational.Rational, prec int) []Variable {
	out := make([]Variable, len(xs))
	for i, x := range xs {
		out[i] = Variable{Index: i + 1, Exact: x, Approx: Decimal(x, prec)}
	}

	return out
}

// SetInverse copies inv into the report.
func (r *Report) SetInverse(inv *matrix.Dense) error {
	if err := matrix.ValidateNotNil(inv); err != nil {
		return err
	}
	r.Inverse = make([][]rational.Rational, inv.Rows())
	for i := range r.Inverse {
		row, err := inv.Row(i)
		if err != nil {
			return err
		}
		r.Inverse[i] = row
	}

	return nil
}

// Encode writes rep to w in format f.
//
// FormatText reproduces the console layout (solution lines, determinant,
// inverse, verification); FormatJSON is indented with two spaces;
// FormatYAML uses yaml.v3 with a two-space indent.
func Encode(w io.Writer, f Format, rep *Report, o Options) error {
	switch f {
	case FormatText:
		return encodeText(w, rep, o)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

func encodeText(w io.Writer, rep *Report, o Options) error {
	if len(rep.Variables) > 0 {
		xs := make([]rational.Rational, len(rep.Variables))
		for i, v := range rep.Variables {
			xs[i] = v.Exact
		}
		if err := Solution(w, xs, o); err != nil {
			return err
		}
	}
	if rep.Determinant != nil {
		if err := note(w, "Determinant: "+rep.Determinant.String(), o); err != nil {
			return err
		}
	}
	if len(rep.Inverse) > 0 {
		if err := Heading(w, "Inverse:", o); err != nil {
			return err
		}
		if err := writeRows(w, rep.Inverse); err != nil {
			return err
		}
	}
	if rep.Verified != nil {
		status := "Verified: A·x = b holds exactly."
		if !*rep.Verified {
			status = "Verified: FAILED"
		}
		if err := note(w, status, o); err != nil {
			return err
		}
	}

	return nil
}
