/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package likelihood_test

import (
	"math"
	"testing"

	"github.com/gofit-project/gofit/data"
	"github.com/gofit-project/gofit/density"
	"github.com/gofit-project/gofit/likelihood"
	"github.com/gofit-project/gofit/msg"
	"github.com/gofit-project/gofit/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var backends = []string{likelihood.BackendOff, likelihood.BackendCpu}

// expandBinned turns a histogram into the weighted point dataset a
// likelihood is built from.
func expandBinned(x *data.RealVar, h *data.BinnedData) *data.WeightedData {
	w := data.NewRealVar("w", "weight", 0, 10000)
	d := data.NewWeightedData(x, w)
	for i := 0; i < h.NumEntries(); i++ {
		d.Add(h.Coord(i), h.Weight(i))
	}
	return d
}

// For a linear density, bin sampling makes no difference because the
// integral of a linear function over a bin equals its value at the bin
// center.
func TestNLL_LinearCrossCheck(t *testing.T) {
	for _, backend := range backends {
		backend := backend
		t.Run("BatchMode"+backend, func(t *testing.T) {
			defer msg.Scoped(zapcore.WarnLevel)()
			sample.SetSeed(1337)

			x := data.NewRealVar("x", "x", 0.1, 5.1)
			x.SetBins(10)

			pdf, err := density.NewFormula("lin", "x", x)
			require.NoError(t, err)

			dataH, err := sample.GenerateBinned(pdf, x, 10000)
			require.NoError(t, err)
			d := expandBinned(x, dataH)

			nll1, err := likelihood.NewNLL(pdf, d,
				likelihood.Backend(backend))
			require.NoError(t, err)
			nll2, err := likelihood.NewNLL(pdf, d,
				likelihood.Backend(backend), likelihood.IntegrateBins(1e-3))
			require.NoError(t, err)

			assert.InEpsilon(t, nll1.GetVal(), nll2.GetVal(), 1e-6)
		})
	}
}

// Same cross-check as above, restricted to a sub-range whose binning
// is consistent with the full-range binning.
func TestNLL_LinearSubRangeCrossCheck(t *testing.T) {
	for _, backend := range backends {
		backend := backend
		t.Run("BatchMode"+backend, func(t *testing.T) {
			defer msg.Scoped(zapcore.WarnLevel)()
			sample.SetSeed(1337)

			x := data.NewRealVar("x", "x", 0.1, 5.1)
			x.SetBins(10)
			require.NoError(t, x.SetRange("range", 0.1, 4.1))
			require.NoError(t, x.SetRangeBins("range", 8)) // consistent binning

			pdf, err := density.NewFormula("lin", "x", x)
			require.NoError(t, err)

			dataH, err := sample.GenerateBinned(pdf, x, 10000)
			require.NoError(t, err)
			d := expandBinned(x, dataH)

			nll1, err := likelihood.NewNLL(pdf, d,
				likelihood.Backend(backend), likelihood.Range("range"))
			require.NoError(t, err)
			nll2, err := likelihood.NewNLL(pdf, d,
				likelihood.Backend(backend), likelihood.Range("range"),
				likelihood.IntegrateBins(1e-3))
			require.NoError(t, err)

			assert.InEpsilon(t, nll1.GetVal(), nll2.GetVal(), 1e-6)
		})
	}
}

func TestNLL_BackendsAgree(t *testing.T) {
	defer msg.Scoped(zapcore.WarnLevel)()
	sample.SetSeed(1337)

	x := data.NewRealVar("x", "x", 0.1, 5.1)
	x.SetBins(10)
	pdf, err := density.NewFormula("lin", "x", x)
	require.NoError(t, err)

	dataH, err := sample.GenerateBinned(pdf, x, 10000)
	require.NoError(t, err)
	d := expandBinned(x, dataH)

	off, err := likelihood.NewNLL(pdf, d, likelihood.Backend(likelihood.BackendOff))
	require.NoError(t, err)
	cpu, err := likelihood.NewNLL(pdf, d, likelihood.Backend(likelihood.BackendCpu))
	require.NoError(t, err)

	assert.InEpsilon(t, off.GetVal(), cpu.GetVal(), 1e-12)
}

func TestNLL_HandComputedValue(t *testing.T) {
	x := data.NewRealVar("x", "x", 1, 3)
	w := data.NewRealVar("w", "weight", 0, 10)

	pdf, err := density.NewFormula("lin", "x", x)
	require.NoError(t, err)

	d := data.NewWeightedData(x, w)
	d.Add(1.5, 2)
	d.Add(2.5, 1)

	nll, err := likelihood.NewNLL(pdf, d)
	require.NoError(t, err)

	// norm = integral of x over [1, 3] = 4
	want := 2*(math.Log(4)-math.Log(1.5)) + 1*(math.Log(4)-math.Log(2.5))
	assert.InDelta(t, want, nll.GetVal(), 1e-9)
}

func TestNLL_RangeFiltersEntries(t *testing.T) {
	x := data.NewRealVar("x", "x", 0.1, 5.1)
	require.NoError(t, x.SetRange("fit", 0.1, 4.1))
	w := data.NewRealVar("w", "weight", 0, 10)

	pdf, err := density.NewFormula("lin", "x", x)
	require.NoError(t, err)

	d := data.NewWeightedData(x, w)
	d.Add(2.0, 1)
	d.Add(4.85, 1) // outside the fit range

	full, err := likelihood.NewNLL(pdf, d)
	require.NoError(t, err)
	ranged, err := likelihood.NewNLL(pdf, d, likelihood.Range("fit"))
	require.NoError(t, err)

	// norm over [0.1, 4.1] is 8.4; only the first entry contributes
	want := math.Log(8.4) - math.Log(2.0)
	assert.InDelta(t, want, ranged.GetVal(), 1e-9)
	assert.NotEqual(t, full.GetVal(), ranged.GetVal())
}

func TestNLL_UnknownBackend(t *testing.T) {
	x := data.NewRealVar("x", "x", 0, 1)
	w := data.NewRealVar("w", "weight", 0, 10)
	pdf, err := density.NewFormula("flat", "1.0", x)
	require.NoError(t, err)

	_, err = likelihood.NewNLL(pdf, data.NewWeightedData(x, w),
		likelihood.Backend("Gpu"))
	assert.Error(t, err)
}

func TestNLL_UnknownRange(t *testing.T) {
	x := data.NewRealVar("x", "x", 0, 1)
	w := data.NewRealVar("w", "weight", 0, 10)
	pdf, err := density.NewFormula("flat", "1.0", x)
	require.NoError(t, err)

	_, err = likelihood.NewNLL(pdf, data.NewWeightedData(x, w),
		likelihood.Range("missing"))
	assert.Error(t, err)
}

func TestNLL_MismatchedDatasetVariable(t *testing.T) {
	x := data.NewRealVar("x", "x", 0, 1)
	y := data.NewRealVar("y", "y", 0, 1)
	w := data.NewRealVar("w", "weight", 0, 10)

	pdf, err := density.NewFormula("flat", "1.0", x)
	require.NoError(t, err)

	_, err = likelihood.NewNLL(pdf, data.NewWeightedData(y, w))
	assert.Error(t, err)
}
