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

package sample

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gofit-project/gofit/data"
	"github.com/gofit-project/gofit/density"
	"github.com/gofit-project/gofit/internal"
	"github.com/gofit-project/gofit/msg"
)

// GenerateBinned draws n events from d and fills them into a histogram
// over the full-range binning of v. Bin contents are multinomially
// distributed with probabilities proportional to the density's
// integral over each bin, drawn as a chain of conditional binomials
// from the process-wide generator.
func GenerateBinned(d density.Density, v *data.RealVar, n int) (*data.BinnedData, error) {
	if d.Var() != v {
		return nil, errors.Wrapf(internal.MalformedDensity,
			"density %q does not observe variable %q", d.Name(), v.Name())
	}
	if n < 0 {
		return nil, errors.Wrapf(internal.MalformedDataset, "negative event count %d", n)
	}

	binning, err := v.GetBinning("")
	if err != nil {
		return nil, err
	}

	probs := make([]float64, binning.N)
	total := 0.0
	for i := range probs {
		lo, hi := binning.Edges(i)
		probs[i] = density.Norm(d, lo, hi)
		if probs[i] < 0 {
			return nil, errors.Wrapf(internal.MalformedDensity,
				"density %q is negative over bin %d", d.Name(), i)
		}
		total += probs[i]
	}
	if total <= 0 {
		return nil, errors.Wrapf(internal.MalformedDensity,
			"density %q vanishes over the range of %q", d.Name(), v.Name())
	}

	weights := make([]float64, binning.N)
	remaining := n
	left := total
	for i := range weights {
		if i == binning.N-1 {
			weights[i] = float64(remaining)
			break
		}
		if remaining == 0 || probs[i] == 0 {
			left -= probs[i]
			continue
		}
		// conditional probability of this bin among those left;
		// clamped against rounding drift in the running remainder
		p := probs[i] / left
		if p > 1 || left <= 0 {
			p = 1
		}
		if p < 0 {
			p = 0
		}
		b := distuv.Binomial{N: float64(remaining), P: p, Src: Generator()}
		k := int(b.Rand())
		weights[i] = float64(k)
		remaining -= k
		left -= probs[i]
	}

	msg.Logger().Debug("generated binned dataset",
		zap.String("density", d.Name()), zap.String("variable", v.Name()),
		zap.Int("events", n), zap.Int("bins", binning.N))

	return data.NewBinnedData(binning, weights)
}
