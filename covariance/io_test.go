// SPDX-License-Identifier: MIT

package covariance_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamcov/covariance"
)

func smallEditable(t *testing.T) *covariance.Editable {
	t.Helper()
	e := covariance.NewEditable(covariance.Cartesian)
	require.NoError(t, e.SetSymmetric("x", "x", 1))
	require.NoError(t, e.SetSymmetric("x", "px", -0.5))
	require.NoError(t, e.SetSymmetric("E", "E", 2.25))

	return e
}

func TestEncode_UpperTriangle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, smallEditable(t).Encode(&buf))

	want := strings.Join([]string{
		"1 0 0 -0.5 0 0 0",
		"0 0 0 0 0 0",
		"0 0 0 0 0",
		"0 0 0 0",
		"0 0 0",
		"0 0",
		"2.25",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEncode_SeparatorAndOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := smallEditable(t).Encode(&buf,
		covariance.WithSeparator(","),
		covariance.WithOrder("E", "px", "x", "y", "z", "py", "pz"),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, covariance.Size)
	assert.Equal(t, "2.25,0,0,0,0,0,0", lines[0])
	assert.Equal(t, "0,-0.5,0,0,0,0", lines[1])
	assert.Equal(t, "1,0,0,0,0", lines[2])
}

func TestEncode_InvalidOrder(t *testing.T) {
	t.Parallel()

	e := smallEditable(t)
	var buf bytes.Buffer

	err := e.Encode(&buf, covariance.WithOrder("x", "y"))
	require.ErrorIs(t, err, covariance.ErrInvalidOrder)

	err = e.Encode(&buf, covariance.WithOrder("x", "x", "z", "px", "py", "pz", "E"))
	require.ErrorIs(t, err, covariance.ErrInvalidOrder)

	err = e.Encode(&buf, covariance.WithOrder("rho", "y", "z", "px", "py", "pz", "E"))
	require.ErrorIs(t, err, covariance.ErrUnknownVariable)
	assert.Zero(t, buf.Len())
}

func TestRoundTrip_Permutations(t *testing.T) {
	t.Parallel()

	m, err := covariance.New(randomSamples(250, 42))
	require.NoError(t, err)

	cases := []struct {
		name string
		opts []covariance.Option
	}{
		{"default", nil},
		{"comma", []covariance.Option{covariance.WithSeparator(",")}},
		{"reversed", []covariance.Option{covariance.WithOrder("E", "pz", "py", "px", "z", "y", "x")}},
		{"interleaved-tab", []covariance.Option{
			covariance.WithOrder("x", "px", "y", "py", "z", "pz", "E"),
			covariance.WithSeparator("\t"),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, m.Encode(&buf, tc.opts...))

			e := covariance.NewEditable(covariance.Cartesian)
			require.NoError(t, e.Decode(&buf, tc.opts...))

			for _, p := range allPairs(m.Order()) {
				want, err := m.Element(p[0], p[1])
				require.NoError(t, err)
				got, err := e.Element(p[0], p[1])
				require.NoError(t, err)
				assert.Equal(t, want, got, "Cov(%s,%s)", p[0], p[1])
			}
		})
	}
}

func TestDecode_Lenient(t *testing.T) {
	t.Parallel()

	in := "1 0 0 -0.5 0 0 0\r\n\n  \n0 0 0 0 0 0\r\n0 0 0 0 0\n0 0 0 0\n\n0 0 0\n0 0\n2.25\n\n"
	e := covariance.NewEditable(covariance.Cartesian)
	require.NoError(t, e.Decode(strings.NewReader(in)))

	v, err := e.Element("px", "x")
	require.NoError(t, err)
	assert.Equal(t, -0.5, v)
	v, err = e.Element("E", "E")
	require.NoError(t, err)
	assert.Equal(t, 2.25, v)
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	good := []string{"1 0 0 -0.5 0 0 0", "0 0 0 0 0 0", "0 0 0 0 0", "0 0 0 0", "0 0 0", "0 0", "2.25"}
	join := func(lines []string) string { return strings.Join(lines, "\n") + "\n" }
	with := func(i int, line string) []string {
		out := append([]string(nil), good...)
		out[i] = line

		return out
	}

	cases := []struct {
		name string
		in   string
	}{
		{"bad-token", join(with(2, "0 0 abc 0 0"))},
		{"short-row", join(with(0, "1 0 0 -0.5 0 0"))},
		{"long-row", join(with(6, "2.25 1"))},
		{"double-separator", join(with(5, "0  0"))},
		{"too-few-rows", join(good[:6])},
		{"too-many-rows", join(append(append([]string(nil), good...), "1"))},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := covariance.NewEditable(covariance.Cartesian)
			require.NoError(t, e.Set("y", "y", 3))

			err := e.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, covariance.ErrMalformedFile)

			// A failed decode leaves the matrix untouched.
			v, err := e.Element("y", "y")
			require.NoError(t, err)
			assert.Equal(t, 3.0, v)
			v, err = e.Element("x", "x")
			require.NoError(t, err)
			assert.Zero(t, v)
		})
	}
}

func TestDecode_TrailingSeparatorRejected(t *testing.T) {
	t.Parallel()

	for _, sep := range []string{" ", "\t", ","} {
		var buf bytes.Buffer
		require.NoError(t, smallEditable(t).Encode(&buf, covariance.WithSeparator(sep)))
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		lines[1] += sep

		e := covariance.NewEditable(covariance.Cartesian)
		err := e.Decode(strings.NewReader(strings.Join(lines, "\n")+"\n"), covariance.WithSeparator(sep))
		require.ErrorIs(t, err, covariance.ErrMalformedFile, "separator %q", sep)
		assert.Contains(t, err.Error(), "line 2", "separator %q", sep)
	}

	// Whitespace around values is still accepted with a non-blank separator.
	e := covariance.NewEditable(covariance.Cartesian)
	in := "1, 0,0, -0.5 ,0,0,0\n0,0,0,0,0,0\n0,0,0,0,0\n0,0,0,0\n0,0,0\n0,0\n 2.25\n"
	require.NoError(t, e.Decode(strings.NewReader(in), covariance.WithSeparator(",")))
	v, err := e.Element("x", "px")
	require.NoError(t, err)
	assert.Equal(t, -0.5, v)
}

func TestWriteFile_InvalidOrderKeepsExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cov.txt")
	require.NoError(t, os.WriteFile(path, []byte("precious\n"), 0o600))

	err := fixtureMatrix(t).WriteFile(path, covariance.WithOrder("x", "y"))
	require.ErrorIs(t, err, covariance.ErrInvalidOrder)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "precious\n", string(got))
}

func TestDecode_DropsCachedSubDeterminants(t *testing.T) {
	t.Parallel()

	e := smallEditable(t)
	before, err := e.SubDeterminant("x", "E")
	require.NoError(t, err)
	assert.InDelta(t, 2.25, before, 1e-12)

	var buf bytes.Buffer
	require.NoError(t, fixtureMatrix(t).Encode(&buf))
	require.NoError(t, e.Decode(&buf))

	after, err := e.SubDeterminant("x", "E")
	require.NoError(t, err)
	assert.InDelta(t, 4e-06*1.6900000000000002, after, 1e-18)
}

func TestWriteFile_ReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cov.txt")

	src := fixtureMatrix(t)
	require.NoError(t, src.WriteFile(path, covariance.WithSeparator(";")))

	dst := covariance.NewEditable(covariance.Cartesian)
	require.NoError(t, dst.ReadFile(path, covariance.WithSeparator(";")))
	for _, p := range allPairs(src.Order()) {
		want, _ := src.Element(p[0], p[1])
		got, _ := dst.Element(p[0], p[1])
		assert.Equal(t, want, got, "Cov(%s,%s)", p[0], p[1])
	}

	// Wrong separator: every row collapses into a single value.
	err := covariance.NewEditable(covariance.Cartesian).ReadFile(path)
	require.ErrorIs(t, err, covariance.ErrMalformedFile)
	assert.Contains(t, err.Error(), path)

	err = dst.ReadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	err = src.WriteFile(filepath.Join(dir, "no-such-dir", "cov.txt"))
	require.Error(t, err)
}
