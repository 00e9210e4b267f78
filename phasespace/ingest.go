// SPDX-License-Identifier: MIT
// Package phasespace: plain-text particle ingestion.
//
// Line format:
//   - Six numbers x y z px py pz; separators are any run of whitespace and
//     commas. Extra trailing columns are ignored.
//   - Blank lines and lines whose first non-space rune is '#' are skipped.
//
// A source is parsed completely before any particle is appended, so a
// malformed line leaves the volume unchanged.

package phasespace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// particleFields is the number of leading columns that make up one record.
const particleFields = 6

// Inject reads particles from r. name labels the source in errors and logs.
func (v *Volume) Inject(r io.Reader, name string) error {
	batch, err := parseParticles(r, name)
	if err != nil {
		return phaseErrorf(opInject, err)
	}
	for _, rec := range batch {
		v.Add(rec[0], rec[1])
	}
	v.log.Debug("particles injected", "source", name, "count", len(batch), "total", len(v.particles))

	return nil
}

// InjectFile reads particles from the file at path.
func (v *Volume) InjectFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return phaseErrorf(opInjectFile, err)
	}
	defer f.Close()

	if err = v.Inject(f, path); err != nil {
		return phaseErrorf(opInjectFile, err)
	}

	return nil
}

func isSeparator(r rune) bool { return r == ',' || unicode.IsSpace(r) }

// parseParticles returns (position, momentum) pairs in input order.
func parseParticles(r io.Reader, name string) ([][2]Cartesian, error) {
	var out [][2]Cartesian
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, isSeparator)
		if len(fields) < particleFields {
			return nil, fmt.Errorf("%w: %s:%d: got %d columns, want %d",
				ErrMalformedLine, name, line, len(fields), particleFields)
		}
		var vals [particleFields]float64
		for k := range vals {
			f, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d: column %d: %v", ErrMalformedLine, name, line, k+1, err)
			}
			vals[k] = f
		}
		out = append(out, [2]Cartesian{
			{X: vals[0], Y: vals[1], Z: vals[2]},
			{X: vals[3], Y: vals[4], Z: vals[5]},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return out, nil
}
