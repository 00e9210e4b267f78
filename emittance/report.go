// SPDX-License-Identifier: MIT

package emittance

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/beamcov/covariance"
)

// ElectronMassMeV is the electron mass energy equivalent in MeV (CODATA 2018).
const ElectronMassMeV = 0.51099895000

// planes pairs each position label with its conjugate momentum.
var planes = [3][2]string{
	{covariance.LabelX, covariance.LabelPX},
	{covariance.LabelY, covariance.LabelPY},
	{covariance.LabelZ, covariance.LabelPZ},
}

// AxisReport holds the figures of one phase plane.
type AxisReport struct {
	Emittance     float64
	VarPosition   float64
	VarMomentum   float64
	OneMinusCorr2 float64
}

// Report is the full CSV row: three planes plus the represented particle
// count (macroparticles times electrons per macroparticle).
type Report struct {
	X, Y, Z AxisReport
	Count   int
}

// Compute derives the per-plane report from a Cartesian covariance matrix.
func Compute(m *covariance.Matrix, count int) (Report, error) {
	if m.Basis() != covariance.Cartesian {
		return Report{}, fmt.Errorf("Compute: %w (got %s)", ErrWrongBasis, m.Basis())
	}

	var axes [3]AxisReport
	for k, p := range planes {
		a, err := axis(m, p[0], p[1])
		if err != nil {
			return Report{}, fmt.Errorf("Compute: %w", err)
		}
		axes[k] = a
	}

	return Report{X: axes[0], Y: axes[1], Z: axes[2], Count: count}, nil
}

func axis(m *covariance.Matrix, q, pq string) (AxisReport, error) {
	det, err := m.SubDeterminant(q, pq)
	if err != nil {
		return AxisReport{}, err
	}
	varQ, err := m.Variance(q)
	if err != nil {
		return AxisReport{}, err
	}
	varP, err := m.Variance(pq)
	if err != nil {
		return AxisReport{}, err
	}
	cov, err := m.Element(q, pq)
	if err != nil {
		return AxisReport{}, err
	}

	return AxisReport{
		Emittance:     math.Sqrt(det) / ElectronMassMeV,
		VarPosition:   varQ,
		VarMomentum:   varP,
		OneMinusCorr2: 1 - cov*cov/(varQ*varP),
	}, nil
}

// Header returns the CSV column names. The trailing count column is unnamed.
func Header() []string {
	return []string{
		"ex", "varx", "varpx", "one_minus_cor_x",
		"ey", "vary", "varpy", "one_minus_cor_y",
		"ez", "varz", "varpz", "one_minus_cor_z",
	}
}

// Values returns the twelve per-plane figures in Header order.
func (r Report) Values() []float64 {
	out := make([]float64, 0, 12)
	for _, a := range []AxisReport{r.X, r.Y, r.Z} {
		out = append(out, a.Emittance, a.VarPosition, a.VarMomentum, a.OneMinusCorr2)
	}

	return out
}

// Record returns the CSV row: the Values followed by Count. Undefined values
// are written as nan, inf or -inf.
func (r Report) Record() []string {
	vals := r.Values()
	rec := make([]string, 0, len(vals)+1)
	for _, v := range vals {
		rec = append(rec, formatValue(v))
	}

	return append(rec, strconv.Itoa(r.Count))
}

func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV writes the report row to w, preceded by Header when header is set.
func (r Report) WriteCSV(w io.Writer, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(Header()); err != nil {
			return err
		}
	}
	if err := cw.Write(r.Record()); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}
