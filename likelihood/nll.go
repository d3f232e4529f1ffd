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

// Package likelihood builds scalar likelihood objectives from a
// density and a weighted dataset.
package likelihood

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/gofit-project/gofit/data"
	"github.com/gofit-project/gofit/density"
	"github.com/gofit-project/gofit/internal"
	"github.com/gofit-project/gofit/msg"
)

// Evaluation backend labels.
const (
	BackendOff = "Off"
	BackendCpu = "Cpu"
)

type config struct {
	rangeName    string
	integrateTol float64
	backend      string
}

// Option configures an NLL at construction.
type Option func(*config)

// Range restricts the likelihood to a named sub-range of the domain
// variable: only entries inside it contribute, and the density is
// normalized over it.
func Range(name string) Option {
	return func(c *config) { c.rangeName = name }
}

// IntegrateBins replaces point evaluation of the density by its
// bin-averaged value, computed by numeric integration with the given
// relative tolerance over the binning of the fitted range.
func IntegrateBins(tol float64) Option {
	return func(c *config) { c.integrateTol = tol }
}

// Backend selects the evaluation backend, BackendOff or BackendCpu.
func Backend(label string) Option {
	return func(c *config) { c.backend = label }
}

// NLL is the negative log-likelihood of a density given a weighted
// dataset,
//
//	-Σ wᵢ·( log d(xᵢ) − log ∫ d )
//
// with the integral taken over the fitted range.
type NLL struct {
	d       density.Density
	eff     density.Density
	lo, hi  float64
	coords  []float64
	weights []float64
	backend string
}

// NewNLL builds the negative log-likelihood of d given ds.
func NewNLL(d density.Density, ds *data.WeightedData, opts ...Option) (*NLL, error) {
	cfg := config{backend: BackendOff}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.backend != BackendOff && cfg.backend != BackendCpu {
		return nil, errors.Wrapf(internal.MalformedOption, "unknown backend %q", cfg.backend)
	}

	v := d.Var()
	if ds.Var() != v {
		return nil, errors.Wrapf(internal.MalformedDataset,
			"dataset observes %q, density %q observes %q",
			ds.Var().Name(), d.Name(), v.Name())
	}

	lo, hi, err := v.Range(cfg.rangeName)
	if err != nil {
		return nil, err
	}

	eff := d
	if cfg.integrateTol > 0 {
		eff, err = density.NewBinSamplingRange(d.Name()+"_binSampling", v, d,
			cfg.integrateTol, cfg.rangeName)
		if err != nil {
			return nil, err
		}
	}

	nll := &NLL{d: d, eff: eff, lo: lo, hi: hi, backend: cfg.backend}
	for i := 0; i < ds.NumEntries(); i++ {
		x := ds.Coord(i)
		if x < lo || x > hi {
			continue
		}
		nll.coords = append(nll.coords, x)
		nll.weights = append(nll.weights, ds.Weight(i))
	}

	msg.Logger().Debug("constructed likelihood",
		zap.String("density", d.Name()), zap.String("backend", cfg.backend),
		zap.Int("entries", len(nll.coords)), zap.Float64("lo", lo), zap.Float64("hi", hi))
	return nll, nil
}

// GetVal evaluates the objective with the current parameter values.
// A dataset entry where the density is not positive makes the
// likelihood undefined; the value is then +Inf and a warning is
// emitted.
func (n *NLL) GetVal() float64 {
	norm := density.Norm(n.eff, n.lo, n.hi)
	if norm <= 0 {
		msg.Logger().Warn("density normalization is not positive",
			zap.String("density", n.eff.Name()), zap.Float64("norm", norm))
		return math.Inf(1)
	}
	logNorm := math.Log(norm)

	if n.backend == BackendCpu {
		return n.evaluateBatch(logNorm)
	}
	return n.evaluateScalar(logNorm)
}

func (n *NLL) evaluateScalar(logNorm float64) float64 {
	sum := 0.0
	for i, x := range n.coords {
		v := n.eff.Value(x)
		if v <= 0 {
			n.warnNonPositive(x, v)
			return math.Inf(1)
		}
		sum += n.weights[i] * (logNorm - math.Log(v))
	}
	return sum
}

func (n *NLL) evaluateBatch(logNorm float64) float64 {
	vals := make([]float64, len(n.coords))
	density.ValueBatch(n.eff, n.coords, vals)

	terms := make([]float64, len(vals))
	for i, v := range vals {
		if v <= 0 {
			n.warnNonPositive(n.coords[i], v)
			return math.Inf(1)
		}
		terms[i] = n.weights[i] * (logNorm - math.Log(v))
	}
	return floats.Sum(terms)
}

func (n *NLL) warnNonPositive(x, v float64) {
	msg.Logger().Warn("density is not positive at dataset entry",
		zap.String("density", n.eff.Name()), zap.Float64("x", x), zap.Float64("value", v))
}
