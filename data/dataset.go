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

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/gofit-project/gofit/internal"
)

// BinnedData is a histogram: one weight per bin of a binning, with the
// bin center as the coordinate of each entry. It is produced by binned
// generation and read-only afterwards.
type BinnedData struct {
	binning Binning
	weights []float64
}

// NewBinnedData wraps per-bin weights over the given binning. The
// number of weights must match the bin count.
func NewBinnedData(binning Binning, weights []float64) (*BinnedData, error) {
	if len(weights) != binning.N {
		return nil, errors.Wrapf(internal.MalformedDataset,
			"%d weights for %d bins", len(weights), binning.N)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return &BinnedData{binning: binning, weights: w}, nil
}

// NumEntries returns the number of bins.
func (h *BinnedData) NumEntries() int { return len(h.weights) }

// Coord returns the bin center of entry i.
func (h *BinnedData) Coord(i int) float64 { return h.binning.Center(i) }

// Weight returns the weight of entry i.
func (h *BinnedData) Weight(i int) float64 { return h.weights[i] }

// SumWeights returns the total weight of the histogram.
func (h *BinnedData) SumWeights() float64 { return floats.Sum(h.weights) }

// GetBinning returns the binning the histogram was filled over.
func (h *BinnedData) GetBinning() Binning { return h.binning }

// WeightedData is a flat collection of (coordinate, weight)
// observations of one variable, the input sample of a likelihood.
type WeightedData struct {
	v       *RealVar
	w       *RealVar
	coords  []float64
	weights []float64
}

// NewWeightedData returns an empty dataset over variable v with
// weights tracked by the weight variable w.
func NewWeightedData(v, w *RealVar) *WeightedData {
	return &WeightedData{v: v, w: w}
}

// Add appends one weighted observation.
func (d *WeightedData) Add(coord, weight float64) {
	d.coords = append(d.coords, coord)
	d.weights = append(d.weights, weight)
}

// NumEntries returns the number of observations.
func (d *WeightedData) NumEntries() int { return len(d.coords) }

// Coord returns the coordinate of entry i.
func (d *WeightedData) Coord(i int) float64 { return d.coords[i] }

// Weight returns the weight of entry i.
func (d *WeightedData) Weight(i int) float64 { return d.weights[i] }

// SumWeights returns the total weight of the dataset.
func (d *WeightedData) SumWeights() float64 { return floats.Sum(d.weights) }

// Var returns the observed variable.
func (d *WeightedData) Var() *RealVar { return d.v }

// WeightVar returns the weight variable.
func (d *WeightedData) WeightVar() *RealVar { return d.w }
