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

package density

import (
	"math"

	"github.com/gofit-project/gofit/data"
	"github.com/gofit-project/gofit/internal/quadrature"
)

// DefaultEpsilon is the relative integration tolerance a BinSampling
// adapter uses when none is given.
const DefaultEpsilon = 1e-4

// BinSampling wraps a density so that Value(x) returns the average of
// the wrapped density over the bin containing x instead of its value
// at x. Likelihoods built over binned data use it to remove the bias
// of evaluating a curved density at bin centers.
type BinSampling struct {
	name    string
	x       *data.RealVar
	inner   Density
	tol     float64
	binning data.Binning

	selfNorm      float64
	selfNormValid bool
}

// NewBinSampling wraps inner with bin averaging over the full-range
// binning of x. A non-positive tol selects DefaultEpsilon.
func NewBinSampling(name string, x *data.RealVar, inner Density, tol float64) (*BinSampling, error) {
	return NewBinSamplingRange(name, x, inner, tol, "")
}

// NewBinSamplingRange wraps inner with bin averaging over the binning
// of a named range of x. The binning is resolved at construction and
// does not track later changes to the variable.
func NewBinSamplingRange(name string, x *data.RealVar, inner Density, tol float64, rangeName string) (*BinSampling, error) {
	binning, err := x.GetBinning(rangeName)
	if err != nil {
		return nil, err
	}
	if tol <= 0 {
		tol = DefaultEpsilon
	}
	return &BinSampling{
		name:    name,
		x:       x,
		inner:   inner,
		tol:     tol,
		binning: binning,
	}, nil
}

// Name returns the adapter's name.
func (b *BinSampling) Name() string { return b.name }

// Var returns the domain variable.
func (b *BinSampling) Var() *data.RealVar { return b.x }

// Inner returns the wrapped density.
func (b *BinSampling) Inner() Density { return b.inner }

// Value returns the average of the wrapped density over the bin
// containing x.
func (b *BinSampling) Value(x float64) float64 {
	return b.binAverage(b.binning.Index(x))
}

// ValueBatch evaluates the adapter at every coordinate of xs. Each
// bin's average is integrated once and reused for all coordinates
// falling into it.
func (b *BinSampling) ValueBatch(xs, out []float64) {
	averages := make(map[int]float64, b.binning.N)
	for i, x := range xs {
		bin := b.binning.Index(x)
		avg, ok := averages[bin]
		if !ok {
			avg = b.binAverage(bin)
			averages[bin] = avg
		}
		out[i] = avg
	}
}

// Norm integrates the adapter over [lo, hi]. Within a bin the adapter
// is constant, so the integral is an exact sum of bin averages times
// overlap widths. Norm computes from scratch on every call; it never
// reads or writes the cached self-normalization.
func (b *BinSampling) Norm(lo, hi float64) float64 {
	total := 0.0
	for i := 0; i < b.binning.N; i++ {
		blo, bhi := b.binning.Edges(i)
		olo := math.Max(lo, blo)
		ohi := math.Min(hi, bhi)
		if ohi <= olo {
			continue
		}
		total += b.binAverage(i) * (ohi - olo)
	}
	return total
}

// NormalizedValue returns Value(x) divided by the adapter's integral
// over its own binning range. The self-normalization is computed once
// and cached.
func (b *BinSampling) NormalizedValue(x float64) float64 {
	if !b.selfNormValid {
		b.selfNorm = b.Norm(b.binning.Lo, b.binning.Hi)
		b.selfNormValid = true
	}
	return b.Value(x) / b.selfNorm
}

func (b *BinSampling) binAverage(i int) float64 {
	lo, hi := b.binning.Edges(i)
	return quadrature.Integrate(b.inner.Value, lo, hi, b.tol) / (hi - lo)
}
